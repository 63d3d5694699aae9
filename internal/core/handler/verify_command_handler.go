package handler

import (
	"fmt"

	"uipcup/internal/cli/output"
	"uipcup/internal/core"
)

type VerifyCommandHandler struct {
	verifier core.Verifier
}

func ProvideVerifyCommandHandler(verifier core.Verifier) VerifyCommandHandler {
	return VerifyCommandHandler{verifier: verifier}
}

// Handle runs the post-installation verification on its own: the import
// check must pass, the info script is reported but tolerated when the
// source tree is not around, and a minimal scene exercises the bindings.
func (h *VerifyCommandHandler) Handle() error {
	output.PrintHeader("Verifying LibUIPC installation")
	fmt.Println()

	version, err := h.verifier.ImportCheck()
	if err != nil {
		output.PrintError("uipc does not import")
		return err
	}
	output.PrintSuccess(fmt.Sprintf("import uipc succeeded (version %s)", version))

	ran, err := h.verifier.RunInfoScript(".")
	switch {
	case err != nil:
		output.PrintWarning(fmt.Sprintf("info script failed: %v", err))
	case ran:
		output.PrintSuccess("info script ran")
	default:
		output.PrintInfo("info script not found, skipped")
	}

	if err := h.verifier.BasicSceneCheck(); err != nil {
		output.PrintError("basic scene check failed")
		return err
	}
	output.PrintSuccess("basic scene check passed")

	fmt.Println()
	output.PrintSuccess("Verification completed")
	return nil
}
