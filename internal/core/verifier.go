package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"uipcup/internal/ports"
)

const infoScriptPath = "python/uipc_info.py"

// basicSceneScript exercises the installed bindings beyond a bare import.
const basicSceneScript = `import uipc
scene = uipc.Scene()
print("scene created")
try:
    from uipc.geometry import ground
    ground()
    print("ground geometry created")
except ImportError:
    print("ground geometry not available")
`

// Verifier checks that the installed bindings actually work: the package
// imports, the bundled info script runs and a basic scene can be built.
type Verifier struct {
	commandRunner ports.CommandRunner
	fileSystem    ports.FileSystem
	platform      ports.Platform
}

func ProvideVerifier(
	commandRunner ports.CommandRunner,
	fileSystem ports.FileSystem,
	platform ports.Platform,
) Verifier {
	return Verifier{
		commandRunner: commandRunner,
		fileSystem:    fileSystem,
		platform:      platform,
	}
}

// ImportCheck verifies that the uipc package imports in the active
// interpreter and reports its version.
func (v *Verifier) ImportCheck() (string, error) {
	result, err := v.commandRunner.Run(
		ports.Argv(
			v.platform.PythonCommand(), "-c",
			`import uipc; print(getattr(uipc, "__version__", "unknown"))`,
		),
		ports.RunOptions{},
	)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("uipc import failed:\n%s", result.Combined())
	}
	return strings.TrimSpace(result.Combined()), nil
}

// RunInfoScript runs the library's diagnostic script when the source tree
// ships one. A missing script is not a failure.
func (v *Verifier) RunInfoScript(sourceDir string) (bool, error) {
	script := filepath.Join(sourceDir, infoScriptPath)
	exists, err := v.fileSystem.FileExists(script)
	if err != nil || !exists {
		return false, err
	}

	_, err = v.commandRunner.Run(
		ports.Argv(v.platform.PythonCommand(), script),
		ports.RunOptions{Stream: true},
	)
	if err != nil {
		return true, err
	}
	return true, nil
}

// BasicSceneCheck writes the scene exercise to a temporary script and runs
// it with the active interpreter.
func (v *Verifier) BasicSceneCheck() error {
	scriptFile, err := os.CreateTemp("", "uipcup-scene-*.py")
	if err != nil {
		return fmt.Errorf("failed to create verification script: %w", err)
	}
	scriptPath := scriptFile.Name()
	defer os.Remove(scriptPath)

	if _, err := scriptFile.WriteString(basicSceneScript); err != nil {
		scriptFile.Close()
		return fmt.Errorf("failed to write verification script: %w", err)
	}
	if err := scriptFile.Close(); err != nil {
		return err
	}

	result, err := v.commandRunner.Run(
		ports.Argv(v.platform.PythonCommand(), filepath.Clean(scriptPath)),
		ports.RunOptions{},
	)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("basic scene check failed:\n%s", result.Combined())
	}
	return nil
}
