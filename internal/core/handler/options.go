package handler

import (
	"fmt"
	"os"

	"uipcup/internal/core"
	"uipcup/internal/core/domain"
)

// InstallOptions are the command-line overrides shared by the installation
// commands. Zero values mean "use the configured default".
type InstallOptions struct {
	NoConda      bool
	ToolchainDir string
	BuildDir     string
	Jobs         int
	Source       string
	SkipVerify   bool
	Yes          bool
}

var envOverrideKeys = []string{
	"UIPCUP_TOOLCHAIN_DIR",
	"UIPCUP_BUILD_DIR",
	"UIPCUP_ENV_NAME",
	"UIPCUP_JOBS",
}

// resolveConfig layers the precedence chain: defaults and config file,
// then UIPCUP_* environment variables, then flags.
func resolveConfig(configRepository core.ConfigRepository, opts InstallOptions) (*domain.Config, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	env := make(map[string]string, len(envOverrideKeys))
	for _, key := range envOverrideKeys {
		env[key] = os.Getenv(key)
	}
	if err := config.ApplyEnvOverrides(env); err != nil {
		return nil, err
	}

	if opts.NoConda {
		config.UseConda = false
	}
	if opts.ToolchainDir != "" {
		config.ToolchainDir = opts.ToolchainDir
	}
	if opts.BuildDir != "" {
		config.BuildDir = opts.BuildDir
	}
	if opts.Jobs > 0 {
		config.Jobs = opts.Jobs
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}
	return config, nil
}
