package envmgr

import (
	"fmt"
	"strings"

	"uipcup/internal/ports"
)

// minimalEnvironmentSpec is what gets created when the source tree carries
// no declarative environment file.
var minimalEnvironmentSpec = []string{"python=3.11", "cmake", "cuda-toolkit=12.4"}

// CondaClient manages the named conda environment the build runs in.
// Activation itself happens through the command runner's environment
// rewriting; this client only creates, updates and inspects environments.
type CondaClient struct {
	commandRunner ports.CommandRunner
}

func ProvideCondaClient(commandRunner ports.CommandRunner) *CondaClient {
	return &CondaClient{commandRunner: commandRunner}
}

func (c *CondaClient) Available() bool {
	result, err := c.commandRunner.Run(
		ports.Argv("conda", "--version"),
		ports.RunOptions{},
	)
	return err == nil && result.ExitCode == 0
}

func (c *CondaClient) Exists(name string) (bool, error) {
	result, err := c.commandRunner.Run(
		ports.Argv("conda", "env", "list"),
		ports.RunOptions{RequireSuccess: true},
	)
	if err != nil {
		return false, fmt.Errorf("failed to list conda environments: %v", err)
	}
	return strings.Contains(result.Stdout, name), nil
}

func (c *CondaClient) CreateFromFile(file string) error {
	_, err := c.commandRunner.Run(
		ports.Argv("conda", "env", "create", "-f", file),
		ports.RunOptions{RequireSuccess: true, Stream: true},
	)
	if err != nil {
		return fmt.Errorf("failed to create environment from %s: %v", file, err)
	}
	return nil
}

func (c *CondaClient) UpdateFromFile(file string) error {
	_, err := c.commandRunner.Run(
		ports.Argv("conda", "env", "update", "-f", file),
		ports.RunOptions{RequireSuccess: true, Stream: true},
	)
	if err != nil {
		return fmt.Errorf("failed to update environment from %s: %v", file, err)
	}
	return nil
}

func (c *CondaClient) CreateMinimal(name string) error {
	args := append([]string{"conda", "create", "-n", name}, minimalEnvironmentSpec...)
	args = append(args, "-y")
	_, err := c.commandRunner.Run(
		ports.Argv(args...),
		ports.RunOptions{RequireSuccess: true, Stream: true},
	)
	if err != nil {
		return fmt.Errorf("failed to create environment %s: %v", name, err)
	}
	return nil
}

// PythonExecutable asks the activated environment for its interpreter path.
// The runner rewrites this command with the activation wrapper, so it must
// only be called after SetEnvironment.
func (c *CondaClient) PythonExecutable() (string, error) {
	result, err := c.commandRunner.Run(
		ports.Argv("python", "-c", "import sys; print(sys.executable)"),
		ports.RunOptions{},
	)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return "", nil
	}
	return strings.TrimSpace(result.Combined()), nil
}

var _ ports.EnvironmentManager = (*CondaClient)(nil)
