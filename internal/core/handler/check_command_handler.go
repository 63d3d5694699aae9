package handler

import (
	"fmt"

	"uipcup/internal/cli/output"
	"uipcup/internal/core"
	"uipcup/internal/ports"
)

type CheckCommandHandler struct {
	dependencyChecker *core.DependencyChecker
	verifier          core.Verifier
	fileSystem        ports.FileSystem
}

func ProvideCheckCommandHandler(
	dependencyChecker *core.DependencyChecker,
	verifier core.Verifier,
	fileSystem ports.FileSystem,
) CheckCommandHandler {
	return CheckCommandHandler{
		dependencyChecker: dependencyChecker,
		verifier:          verifier,
		fileSystem:        fileSystem,
	}
}

// Handle reports the state of the host without changing anything: which
// tools are available, whether the current directory looks like a source
// checkout, and whether a uipc build is already importable.
func (h *CheckCommandHandler) Handle() error {
	output.PrintHeader("Environment check")
	fmt.Println()

	failed := false

	statuses := h.dependencyChecker.Check()
	for _, status := range statuses {
		if status.Available {
			output.PrintSuccess(fmt.Sprintf("%s: %s", status.Name, status.Detail))
			continue
		}
		if status.Mandatory {
			output.PrintError(fmt.Sprintf("%s: %s", status.Name, status.Detail))
			failed = true
		} else {
			output.PrintWarning(fmt.Sprintf("%s: %s", status.Name, status.Detail))
		}
	}
	fmt.Println()

	exists, err := h.fileSystem.FileExists("CMakeLists.txt")
	if err != nil {
		return err
	}
	if exists {
		output.PrintSuccess("CMakeLists.txt found, current directory is a source checkout")
	} else {
		output.PrintWarning("no CMakeLists.txt here, run uipcup from the LibUIPC source root to install")
	}

	// Informational only: an importable uipc means a previous installation
	// is still active, its absence is not a failure.
	if version, importErr := h.verifier.ImportCheck(); importErr == nil {
		output.PrintInfo(fmt.Sprintf("uipc %s is currently importable", version))
	} else {
		output.PrintInfo("uipc is not importable yet")
	}
	fmt.Println()

	if failed {
		output.PrintError("Check failed, install the missing dependencies above")
		return fmt.Errorf("missing required dependencies")
	}
	output.PrintSuccess("Check passed")
	return nil
}
