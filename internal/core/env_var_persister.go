package core

import (
	"fmt"
	"strings"

	"uipcup/internal/ports"
)

// EnvVarPersister makes an environment variable durable across sessions,
// through whichever mechanism the host platform uses: a shell startup file
// on Linux, the setx command on Windows.
type EnvVarPersister struct {
	platform      ports.Platform
	fileSystem    ports.FileSystem
	commandRunner ports.CommandRunner
}

func ProvideEnvVarPersister(
	platform ports.Platform,
	fileSystem ports.FileSystem,
	commandRunner ports.CommandRunner,
) EnvVarPersister {
	return EnvVarPersister{
		platform:      platform,
		fileSystem:    fileSystem,
		commandRunner: commandRunner,
	}
}

func (p *EnvVarPersister) Persist(name, value string) error {
	persistence := p.platform.PersistEnvVar(name, value)

	if persistence.Command != nil {
		_, err := p.commandRunner.Run(*persistence.Command, ports.RunOptions{RequireSuccess: true})
		if err != nil {
			return fmt.Errorf("failed to persist %s: %v", name, err)
		}
		return nil
	}

	// Repeated runs must not stack duplicate lines in the startup file.
	content, err := p.fileSystem.ReadFile(persistence.File)
	if err == nil && containsLine(string(content), persistence.Line) {
		return nil
	}

	if err := p.fileSystem.AppendLine(persistence.File, persistence.Line); err != nil {
		return fmt.Errorf("failed to persist %s in %s: %v", name, persistence.File, err)
	}
	return nil
}

func containsLine(content, line string) bool {
	for _, existing := range strings.Split(content, "\n") {
		if strings.TrimSpace(existing) == line {
			return true
		}
	}
	return false
}
