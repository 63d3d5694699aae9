package handler

import (
	"fmt"
	"strings"

	"uipcup/internal/cli/output"
	"uipcup/internal/cli/stage"
	"uipcup/internal/core"
	"uipcup/internal/ports"
)

type PipSetupCommandHandler struct {
	configRepository  core.ConfigRepository
	dependencyChecker *core.DependencyChecker
	pipSetupGenerator core.PipSetupGenerator
	envVarPersister   core.EnvVarPersister
	toolchain         ports.Toolchain
}

func ProvidePipSetupCommandHandler(
	configRepository core.ConfigRepository,
	dependencyChecker *core.DependencyChecker,
	pipSetupGenerator core.PipSetupGenerator,
	envVarPersister core.EnvVarPersister,
	toolchain ports.Toolchain,
) PipSetupCommandHandler {
	return PipSetupCommandHandler{
		configRepository:  configRepository,
		dependencyChecker: dependencyChecker,
		pipSetupGenerator: pipSetupGenerator,
		envVarPersister:   envVarPersister,
		toolchain:         toolchain,
	}
}

// Handle prepares the source tree for a pip-driven installation: it makes
// sure vcpkg is available, writes the pip package files and persists
// CMAKE_TOOLCHAIN_FILE so scikit-build-core finds the toolchain in future
// shells.
func (h *PipSetupCommandHandler) Handle(opts InstallOptions) error {
	config, err := resolveConfig(h.configRepository, opts)
	if err != nil {
		return err
	}

	output.PrintHeader("LibUIPC pip installation setup")
	fmt.Println()

	tracker := stage.NewTracker()

	err = tracker.Run("Dependency check", func() error {
		statuses := h.dependencyChecker.Check()
		missing := core.MissingMandatory(statuses)
		if len(missing) > 0 {
			names := make([]string, len(missing))
			for i, status := range missing {
				names[i] = status.Name
			}
			return fmt.Errorf("missing required dependencies: %s", strings.Join(names, ", "))
		}
		return nil
	})
	if err == nil {
		err = tracker.Run("vcpkg toolchain", func() error {
			return h.toolchain.Ensure(config.ToolchainDir)
		})
	}

	toolchainFile := h.toolchain.DescriptorPath(config.ToolchainDir)
	var written []string
	if err == nil {
		err = tracker.Run("Generate package files", func() error {
			files, genErr := h.pipSetupGenerator.Generate(config.ToolchainDir, toolchainFile)
			written = files
			return genErr
		})
	}
	if err == nil {
		err = tracker.Run("Persist CMAKE_TOOLCHAIN_FILE", func() error {
			return h.envVarPersister.Persist("CMAKE_TOOLCHAIN_FILE", toolchainFile)
		})
	}

	tracker.Report()
	if err != nil {
		return err
	}

	for _, file := range written {
		output.PrintStep(fmt.Sprintf("Created %s", file))
	}
	fmt.Println()
	output.PrintSuccess("Setup completed")
	output.PrintInfo("To install with pip: pip install . -v (see PIP_INSTALL.md)")
	return nil
}
