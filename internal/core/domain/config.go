package domain

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

const (
	DefaultEnvironmentName = "uipc_env"
	DefaultEnvironmentFile = "conda/env.yaml"
)

// Config holds the installer configuration, loaded from ~/.uipcup.yaml and
// overridable through UIPCUP_* environment variables and command-line flags.
type Config struct {
	// ToolchainDir is where the vcpkg checkout lives. Default ~/Toolchain.
	ToolchainDir string `yaml:"toolchainDir"`
	// BuildDir is the CMake build tree. Default CMakeBuild.
	BuildDir string `yaml:"buildDir"`
	// Jobs is the parallel build job count. Default runtime.NumCPU().
	Jobs int `yaml:"jobs"`
	// UseConda selects the named-environment path. Default true.
	UseConda bool `yaml:"useConda"`
	// EnvName is the conda environment name.
	EnvName string `yaml:"envName"`
	// EnvFile is the declarative environment descriptor, relative to the
	// source root. When absent a minimal inline environment is created.
	EnvFile string `yaml:"envFile"`
	// SourceRepo and SourceRef identify the LibUIPC checkout to clone when
	// --source points at a directory that has no checkout yet.
	SourceRepo string `yaml:"sourceRepo"`
	SourceRef  string `yaml:"sourceRef"`
	// Defines are extra -D arguments for the CMake configure step.
	Defines []string `yaml:"defines,omitempty"`
}

func CreateDefaultConfig(homeDir string) Config {
	return Config{
		ToolchainDir: filepath.Join(homeDir, "Toolchain"),
		BuildDir:     "CMakeBuild",
		Jobs:         runtime.NumCPU(),
		UseConda:     true,
		EnvName:      DefaultEnvironmentName,
		EnvFile:      DefaultEnvironmentFile,
		SourceRepo:   "https://github.com/spiriMirror/libuipc.git",
		SourceRef:    "main",
	}
}

// ApplyEnvOverrides folds UIPCUP_* variables into the config. Unknown or
// empty values are ignored; a malformed job count is an error.
func (c *Config) ApplyEnvOverrides(env map[string]string) error {
	if v := env["UIPCUP_TOOLCHAIN_DIR"]; v != "" {
		c.ToolchainDir = v
	}
	if v := env["UIPCUP_BUILD_DIR"]; v != "" {
		c.BuildDir = v
	}
	if v := env["UIPCUP_ENV_NAME"]; v != "" {
		c.EnvName = v
	}
	if v := env["UIPCUP_JOBS"]; v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid UIPCUP_JOBS value %q: %v", v, err)
		}
		c.Jobs = jobs
	}
	return nil
}

func (c *Config) Validate() error {
	if c.ToolchainDir == "" {
		return fmt.Errorf("toolchainDir must not be empty")
	}
	if c.BuildDir == "" {
		return fmt.Errorf("buildDir must not be empty")
	}
	if c.Jobs <= 0 {
		return fmt.Errorf("jobs must be positive, got %d", c.Jobs)
	}
	if c.UseConda && c.EnvName == "" {
		return fmt.Errorf("envName must not be empty when useConda is set")
	}
	return nil
}

// BuildPlan is the resolved input to the CMake configure and build steps.
type BuildPlan struct {
	SourceDir        string
	BuildDir         string
	ToolchainFile    string
	PythonExecutable string
	Jobs             int
	Defines          []string
}
