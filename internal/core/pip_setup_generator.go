package core

import (
	"fmt"

	"uipcup/internal/ports"
)

// PipSetupGenerator writes the pip-installable package files into the
// current source tree: a scikit-build-core pyproject, a CMake wrapper that
// forces the binding options, and the install instructions.
type PipSetupGenerator struct {
	templater  ports.Templater
	fileSystem ports.FileSystem
}

func ProvidePipSetupGenerator(templater ports.Templater, fileSystem ports.FileSystem) PipSetupGenerator {
	return PipSetupGenerator{
		templater:  templater,
		fileSystem: fileSystem,
	}
}

// Generate renders the three files and returns their names in write order.
func (g *PipSetupGenerator) Generate(toolchainDir string, toolchainFile string) ([]string, error) {
	values := map[string]interface{}{
		"ToolchainDir":  toolchainDir,
		"ToolchainFile": toolchainFile,
	}

	files := []struct {
		name     string
		template string
	}{
		{"pyproject_pip.toml", pyprojectTemplate},
		{"CMakeLists_pip.txt", cmakeWrapperTemplate},
		{"PIP_INSTALL.md", pipInstructionsTemplate},
	}

	written := make([]string, 0, len(files))
	for _, file := range files {
		content, err := g.templater.Render(file.template, file.name, values)
		if err != nil {
			return written, fmt.Errorf("failed to render %s: %v", file.name, err)
		}
		if err := g.fileSystem.WriteFile(file.name, []byte(content), ports.ReadAllWriteOwner); err != nil {
			return written, fmt.Errorf("failed to write %s: %v", file.name, err)
		}
		written = append(written, file.name)
	}
	return written, nil
}
