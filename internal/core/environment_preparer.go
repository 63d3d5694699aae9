package core

import (
	"fmt"

	"uipcup/internal/core/domain"
	"uipcup/internal/ports"
)

// EnvironmentPreparer creates or updates the named conda environment and
// activates it on the command runner so every later build step runs inside
// it. When conda is not installed the preparer reports that the environment
// path is unavailable instead of failing; the installation then proceeds
// with the host interpreter.
type EnvironmentPreparer struct {
	environmentManager ports.EnvironmentManager
	fileSystem         ports.FileSystem
	commandRunner      ports.CommandRunner
}

func ProvideEnvironmentPreparer(
	environmentManager ports.EnvironmentManager,
	fileSystem ports.FileSystem,
	commandRunner ports.CommandRunner,
) EnvironmentPreparer {
	return EnvironmentPreparer{
		environmentManager: environmentManager,
		fileSystem:         fileSystem,
		commandRunner:      commandRunner,
	}
}

// Prepare returns whether the environment was activated and, if so, the
// interpreter path inside it.
func (p *EnvironmentPreparer) Prepare(config *domain.Config) (bool, string, error) {
	if !config.UseConda {
		return false, "", nil
	}
	if !p.environmentManager.Available() {
		return false, "", nil
	}

	exists, err := p.environmentManager.Exists(config.EnvName)
	if err != nil {
		return false, "", err
	}

	haveEnvFile := false
	if config.EnvFile != "" {
		haveEnvFile, err = p.fileSystem.FileExists(config.EnvFile)
		if err != nil {
			return false, "", err
		}
	}

	switch {
	case haveEnvFile && exists:
		err = p.environmentManager.UpdateFromFile(config.EnvFile)
	case haveEnvFile:
		err = p.environmentManager.CreateFromFile(config.EnvFile)
	case !exists:
		err = p.environmentManager.CreateMinimal(config.EnvName)
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to prepare environment %s: %v", config.EnvName, err)
	}

	p.commandRunner.SetEnvironment(config.EnvName)

	python, err := p.environmentManager.PythonExecutable()
	if err != nil {
		return false, "", fmt.Errorf("failed to resolve the environment interpreter: %v", err)
	}
	return true, python, nil
}
