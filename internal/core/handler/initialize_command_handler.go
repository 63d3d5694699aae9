package handler

import (
	"fmt"

	"uipcup/internal/cli/output"
	"uipcup/internal/core"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideInitializeCommandHandler(configRepository core.ConfigRepository) InitializeCommandHandler {
	return InitializeCommandHandler{configRepository: configRepository}
}

// Handle writes a config file with the built-in defaults so the user has
// something to edit. It refuses to overwrite an existing configuration.
func (h *InitializeCommandHandler) Handle() error {
	exists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("a configuration file already exists, edit it instead")
	}

	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	if err := h.configRepository.SaveConfig(config); err != nil {
		return err
	}

	output.PrintSuccess("Wrote default configuration to ~/.uipcup.yaml")
	return nil
}
