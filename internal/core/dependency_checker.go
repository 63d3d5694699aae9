package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"uipcup/internal/ports"

	"golang.org/x/sync/errgroup"
)

// Host tool requirements for building the bindings.
const (
	minCMakeMajor  = 3
	minCMakeMinor  = 26
	minPythonMajor = 3
	minPythonMinor = 10
)

// DependencyStatus is the outcome of probing one host tool.
type DependencyStatus struct {
	Name      string
	Mandatory bool
	Available bool
	Detail    string
}

// DependencyChecker probes the host for the tools the installation needs.
// Missing mandatory tools (git, cmake, python) abort the pipeline; conda is
// optional and its absence only disables the named-environment path.
type DependencyChecker struct {
	commandRunner ports.CommandRunner
	platform      ports.Platform
	scm           ports.Scm
	buildSystem   ports.BuildSystem
}

func ProvideDependencyChecker(
	commandRunner ports.CommandRunner,
	platform ports.Platform,
	scm ports.Scm,
	buildSystem ports.BuildSystem,
) *DependencyChecker {
	return &DependencyChecker{
		commandRunner: commandRunner,
		platform:      platform,
		scm:           scm,
		buildSystem:   buildSystem,
	}
}

// Check probes all tools concurrently and returns their statuses in a
// stable order: git, cmake, python, conda. Git and cmake are probed
// through their own adapters; python and conda have none and go through
// the runner directly.
func (c *DependencyChecker) Check() []DependencyStatus {
	statuses := make([]DependencyStatus, 4)

	var g errgroup.Group
	g.Go(func() error {
		statuses[0] = probeVersion("git", true, nil, c.scm.Version)
		return nil
	})
	g.Go(func() error {
		statuses[1] = probeVersion("cmake", true, versionFloor(minCMakeMajor, minCMakeMinor), c.buildSystem.VersionLine)
		return nil
	})
	g.Go(func() error {
		status := c.checkTool(c.platform.PythonCommand(), true, versionFloor(minPythonMajor, minPythonMinor))
		status.Name = "python"
		statuses[2] = status
		return nil
	})
	g.Go(func() error {
		statuses[3] = c.checkTool("conda", false, nil)
		return nil
	})
	// The probes record their own outcome, the group only joins them.
	_ = g.Wait()

	return statuses
}

// MissingMandatory filters the statuses down to mandatory tools that are
// not usable.
func MissingMandatory(statuses []DependencyStatus) []DependencyStatus {
	var missing []DependencyStatus
	for _, status := range statuses {
		if status.Mandatory && !status.Available {
			missing = append(missing, status)
		}
	}
	return missing
}

func probeVersion(name string, mandatory bool, floor *versionRequirement, probe func() (string, error)) DependencyStatus {
	status := DependencyStatus{Name: name, Mandatory: mandatory}

	versionLine, err := probe()
	if err != nil {
		status.Detail = "not found on PATH"
		return status
	}
	return applyVersionFloor(status, versionLine, floor)
}

func (c *DependencyChecker) checkTool(binary string, mandatory bool, floor *versionRequirement) DependencyStatus {
	status := DependencyStatus{Name: binary, Mandatory: mandatory}

	result, err := c.commandRunner.Run(
		ports.Argv(binary, "--version"),
		ports.RunOptions{},
	)
	if err != nil || result.ExitCode != 0 {
		status.Detail = "not found on PATH"
		return status
	}

	versionLine, _, _ := strings.Cut(result.Combined(), "\n")
	return applyVersionFloor(status, strings.TrimSpace(versionLine), floor)
}

func applyVersionFloor(status DependencyStatus, versionLine string, floor *versionRequirement) DependencyStatus {
	status.Detail = versionLine

	if floor != nil {
		major, minor, ok := parseMajorMinor(versionLine)
		if !ok {
			status.Detail = fmt.Sprintf("could not parse version from %q", versionLine)
			return status
		}
		if major < floor.major || (major == floor.major && minor < floor.minor) {
			status.Detail = fmt.Sprintf("%s (%d.%d or newer required)", versionLine, floor.major, floor.minor)
			return status
		}
	}

	status.Available = true
	return status
}

type versionRequirement struct {
	major int
	minor int
}

func versionFloor(major, minor int) *versionRequirement {
	return &versionRequirement{major: major, minor: minor}
}

var majorMinorPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

func parseMajorMinor(s string) (int, int, bool) {
	match := majorMinorPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, 0, false
	}
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, false
	}
	minor, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
