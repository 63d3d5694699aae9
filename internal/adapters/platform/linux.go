package platform

import (
	"fmt"
	"path/filepath"

	"uipcup/internal/ports"

	"al.essio.dev/pkg/shellescape"
)

type LinuxPlatform struct{}

func (p *LinuxPlatform) Name() string {
	return "linux"
}

func (p *LinuxPlatform) ShellCommand(line string) []string {
	return []string{"bash", "-c", line}
}

// WrapWithEnvironment needs an explicit login-shell invocation on Linux:
// `conda activate` is a shell function sourced from the profile, not a
// binary, so the activation chain cannot run in the caller's shell line.
func (p *LinuxPlatform) WrapWithEnvironment(env string, line string) string {
	return fmt.Sprintf("bash -lc %s", shellescape.Quote(fmt.Sprintf("conda activate %s && %s", env, line)))
}

func (p *LinuxPlatform) BootstrapScript(dir string) (string, bool) {
	return filepath.Join(dir, "bootstrap-vcpkg.sh"), true
}

func (p *LinuxPlatform) PersistEnvVar(name, value string) ports.EnvVarPersistence {
	return ports.EnvVarPersistence{
		File: "~/.bashrc",
		Line: fmt.Sprintf("export %s=%s", name, shellescape.Quote(value)),
	}
}

func (p *LinuxPlatform) PythonCommand() string {
	return "python3"
}

var _ ports.Platform = (*LinuxPlatform)(nil)
