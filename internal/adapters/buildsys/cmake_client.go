package buildsys

import (
	"fmt"
	"strconv"
	"strings"

	"uipcup/internal/core/domain"
	"uipcup/internal/ports"
)

// CMakeClient drives the external CMake build: configure a build tree from
// the source tree with the project's feature flags, then build it with the
// requested parallelism. Output is streamed because configure resolves vcpkg
// dependencies and a full build can run for a very long time.
type CMakeClient struct {
	commandRunner ports.CommandRunner
	platform      ports.Platform
}

func ProvideCMakeClient(commandRunner ports.CommandRunner, platform ports.Platform) *CMakeClient {
	return &CMakeClient{
		commandRunner: commandRunner,
		platform:      platform,
	}
}

func (c *CMakeClient) VersionLine() (string, error) {
	result, err := c.commandRunner.Run(
		ports.Argv("cmake", "--version"),
		ports.RunOptions{RequireSuccess: true},
	)
	if err != nil {
		return "", fmt.Errorf("failed to query cmake version: %v", err)
	}
	line, _, _ := strings.Cut(result.Stdout, "\n")
	return strings.TrimSpace(line), nil
}

func (c *CMakeClient) Configure(plan domain.BuildPlan) error {
	args := []string{
		"cmake",
		"-S", plan.SourceDir,
		"-B", plan.BuildDir,
		"-DUIPC_BUILD_PYBIND=ON",
		"-DCMAKE_BUILD_TYPE=Release",
		fmt.Sprintf("-DCMAKE_TOOLCHAIN_FILE=%s", plan.ToolchainFile),
	}
	if plan.PythonExecutable != "" {
		args = append(args, fmt.Sprintf("-DUIPC_PYTHON_EXECUTABLE_PATH=%s", plan.PythonExecutable))
	}
	for _, define := range plan.Defines {
		args = append(args, "-D"+define)
	}
	if c.platform.Name() == "windows" {
		args = append(args, "-A", "x64")
	}

	_, err := c.commandRunner.Run(
		ports.Argv(args...),
		ports.RunOptions{RequireSuccess: true, Stream: true},
	)
	if err != nil {
		return fmt.Errorf("cmake configure failed: %v", err)
	}
	return nil
}

func (c *CMakeClient) Build(plan domain.BuildPlan) error {
	_, err := c.commandRunner.Run(
		ports.Argv(
			"cmake",
			"--build", plan.BuildDir,
			"--config", "Release",
			"--parallel", strconv.Itoa(plan.Jobs),
		),
		ports.RunOptions{RequireSuccess: true, Stream: true, Timeout: ports.BuildTimeout},
	)
	if err != nil {
		return fmt.Errorf("cmake build failed: %v", err)
	}
	return nil
}

var _ ports.BuildSystem = (*CMakeClient)(nil)
