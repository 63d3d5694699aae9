package platform

import (
	"fmt"
	"path/filepath"

	"uipcup/internal/ports"
)

type WindowsPlatform struct{}

func (p *WindowsPlatform) Name() string {
	return "windows"
}

func (p *WindowsPlatform) ShellCommand(line string) []string {
	return []string{"cmd", "/C", line}
}

// The cmd shell chains activation natively, so no extra shell nesting is
// needed on Windows.
func (p *WindowsPlatform) WrapWithEnvironment(env string, line string) string {
	return fmt.Sprintf("conda activate %s && %s", env, line)
}

func (p *WindowsPlatform) BootstrapScript(dir string) (string, bool) {
	return filepath.Join(dir, "bootstrap-vcpkg.bat"), false
}

func (p *WindowsPlatform) PersistEnvVar(name, value string) ports.EnvVarPersistence {
	cmd := ports.Argv("setx", name, value)
	return ports.EnvVarPersistence{Command: &cmd}
}

func (p *WindowsPlatform) PythonCommand() string {
	return "python"
}

var _ ports.Platform = (*WindowsPlatform)(nil)
