package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"uipcup/internal/cli/output"
	"uipcup/internal/cli/stage"
	"uipcup/internal/core"
	"uipcup/internal/core/domain"
	"uipcup/internal/ports"
)

type InstallCommandHandler struct {
	configRepository    core.ConfigRepository
	dependencyChecker   *core.DependencyChecker
	environmentPreparer core.EnvironmentPreparer
	verifier            core.Verifier
	toolchain           ports.Toolchain
	buildSystem         ports.BuildSystem
	pythonInstaller     ports.PythonInstaller
	scm                 ports.Scm
	fileSystem          ports.FileSystem
	terminalInput       ports.TerminalInput
}

func ProvideInstallCommandHandler(
	configRepository core.ConfigRepository,
	dependencyChecker *core.DependencyChecker,
	environmentPreparer core.EnvironmentPreparer,
	verifier core.Verifier,
	toolchain ports.Toolchain,
	buildSystem ports.BuildSystem,
	pythonInstaller ports.PythonInstaller,
	scm ports.Scm,
	fileSystem ports.FileSystem,
	terminalInput ports.TerminalInput,
) InstallCommandHandler {
	return InstallCommandHandler{
		configRepository:    configRepository,
		dependencyChecker:   dependencyChecker,
		environmentPreparer: environmentPreparer,
		verifier:            verifier,
		toolchain:           toolchain,
		buildSystem:         buildSystem,
		pythonInstaller:     pythonInstaller,
		scm:                 scm,
		fileSystem:          fileSystem,
		terminalInput:       terminalInput,
	}
}

// Handle runs the manual installation flow: dependency check, vcpkg
// bootstrap, optional conda environment, CMake configure and build, pip
// install of the bindings and a final verification. A failed mandatory
// stage aborts the remainder; only the verification stage is optional.
func (h *InstallCommandHandler) Handle(opts InstallOptions) error {
	config, err := resolveConfig(h.configRepository, opts)
	if err != nil {
		return err
	}

	sourceDir, err := h.resolveSourceDir(opts.Source, config)
	if err != nil {
		return err
	}
	buildDir := config.BuildDir
	if sourceDir != "." && !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(sourceDir, buildDir)
	}

	output.PrintHeader("LibUIPC installation")
	output.PrintStep(fmt.Sprintf("Toolchain dir: %s", config.ToolchainDir))
	output.PrintStep(fmt.Sprintf("Build dir:     %s", buildDir))
	output.PrintStep(fmt.Sprintf("Jobs:          %d", config.Jobs))
	fmt.Println()

	if !opts.Yes && h.terminalInput.IsTerminal() {
		output.PrintWarning("A cold installation compiles all vcpkg dependencies and can take 30+ minutes.")
		response, err := h.terminalInput.ReadLine("Continue? [y/N] ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			output.PrintInfo("Installation cancelled")
			return nil
		}
		fmt.Println()
	}

	tracker := stage.NewTracker()
	var python string

	err = tracker.Run("Dependency check", func() error {
		return h.checkDependencies(config)
	})
	if err == nil {
		err = tracker.Run("vcpkg toolchain", func() error {
			return h.toolchain.Ensure(config.ToolchainDir)
		})
	}
	if err == nil {
		if config.UseConda {
			err = tracker.Run("Conda environment", func() error {
				activated, envPython, prepErr := h.environmentPreparer.Prepare(config)
				if prepErr != nil {
					return prepErr
				}
				if !activated {
					output.PrintWarning("conda not found, continuing without a named environment")
					return nil
				}
				python = envPython
				if python != "" {
					output.PrintStep(fmt.Sprintf("Using Python: %s", python))
				}
				return nil
			})
		} else {
			tracker.Skip("Conda environment", "--no-conda")
		}
	}

	plan := domain.BuildPlan{
		SourceDir:        sourceDir,
		BuildDir:         buildDir,
		ToolchainFile:    h.toolchain.DescriptorPath(config.ToolchainDir),
		PythonExecutable: python,
		Jobs:             config.Jobs,
		Defines:          config.Defines,
	}

	if err == nil {
		err = tracker.Run("CMake configure", func() error {
			return h.buildSystem.Configure(plan)
		})
	}
	if err == nil {
		err = tracker.Run("CMake build", func() error {
			return h.buildSystem.Build(plan)
		})
	}
	if err == nil {
		err = tracker.Run("Install Python package", func() error {
			return h.installPackage(buildDir)
		})
	}

	verificationFailed := false
	if err == nil {
		if opts.SkipVerify {
			tracker.Skip("Verification", "--skip-verify")
		} else if verifyErr := tracker.Run("Verification", func() error {
			return h.verify(sourceDir)
		}); verifyErr != nil {
			verificationFailed = true
		}
	}

	tracker.Report()

	if err != nil {
		return err
	}
	if verificationFailed {
		return fmt.Errorf("installation completed but verification failed")
	}

	output.PrintSuccess("Installation completed successfully")
	output.PrintInfo("To use LibUIPC: import uipc")
	return nil
}

// resolveSourceDir locates the LibUIPC source tree. Without --source the
// current directory must be the source root. With --source the directory is
// used as-is, cloning the configured repository into it when there is no
// checkout yet.
func (h *InstallCommandHandler) resolveSourceDir(source string, config *domain.Config) (string, error) {
	if source == "" {
		inSourceRoot, err := h.fileSystem.FileExists("CMakeLists.txt")
		if err != nil {
			return "", err
		}
		if !inSourceRoot {
			return "", fmt.Errorf("no CMakeLists.txt found: run uipcup from the LibUIPC source root or pass --source")
		}
		return ".", nil
	}

	present, err := h.fileSystem.FileExists(filepath.Join(source, "CMakeLists.txt"))
	if err != nil {
		return "", err
	}
	if !present {
		output.PrintStep(fmt.Sprintf("Fetching %s (%s) into %s", config.SourceRepo, config.SourceRef, source))
		if err := h.scm.EnsureCheckout(config.SourceRepo, config.SourceRef, source); err != nil {
			return "", fmt.Errorf("failed to fetch the LibUIPC sources: %v", err)
		}
	}
	return source, nil
}

func (h *InstallCommandHandler) checkDependencies(config *domain.Config) error {
	statuses := h.dependencyChecker.Check()
	for _, status := range statuses {
		if status.Available {
			output.PrintStep(fmt.Sprintf("%s: %s", status.Name, output.Dim(status.Detail)))
		} else if status.Mandatory {
			output.PrintStep(fmt.Sprintf("%s: %s", status.Name, output.Error(status.Detail)))
		} else {
			output.PrintStep(fmt.Sprintf("%s: %s", status.Name, output.Dim(status.Detail)))
		}
	}

	missing := core.MissingMandatory(statuses)
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, status := range missing {
			names[i] = status.Name
		}
		return fmt.Errorf(
			"missing required %s: %s",
			output.Plural(len(missing), "dependency", "dependencies"),
			strings.Join(names, ", "),
		)
	}
	return nil
}

func (h *InstallCommandHandler) installPackage(buildDir string) error {
	pythonBuildDir := filepath.Join(buildDir, "python")
	exists, err := h.fileSystem.FileExists(pythonBuildDir)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("python build directory not found: %s", pythonBuildDir)
	}
	return h.pythonInstaller.InstallDirectory(pythonBuildDir)
}

func (h *InstallCommandHandler) verify(sourceDir string) error {
	version, err := h.verifier.ImportCheck()
	if err != nil {
		return err
	}
	output.PrintStep(fmt.Sprintf("uipc version: %s", strings.TrimSpace(version)))

	// The info script is diagnostic; a failure there is reported but does
	// not fail the verification.
	if ran, err := h.verifier.RunInfoScript(sourceDir); ran && err != nil {
		output.PrintWarning(fmt.Sprintf("info script failed: %v", err))
	}
	return nil
}
