package pyinstaller

import (
	"fmt"

	"uipcup/internal/ports"
)

type PipClient struct {
	commandRunner ports.CommandRunner
}

func ProvidePipClient(commandRunner ports.CommandRunner) *PipClient {
	return &PipClient{commandRunner: commandRunner}
}

func (c *PipClient) InstallDirectory(dir string) error {
	_, err := c.commandRunner.Run(
		ports.Argv("pip", "install", "."),
		ports.RunOptions{Dir: dir, RequireSuccess: true, Stream: true},
	)
	if err != nil {
		return fmt.Errorf("pip install in %s failed: %v", dir, err)
	}
	return nil
}

var _ ports.PythonInstaller = (*PipClient)(nil)
