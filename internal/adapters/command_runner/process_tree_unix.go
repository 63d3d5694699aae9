//go:build !windows

package command_runner

import (
	"os/exec"
	"syscall"
)

// configureProcessTree starts the child in its own process group and makes
// cancellation kill the whole group. Killing only the immediate child would
// leave grandchildren holding the output pipes open, so a timed-out build
// could block the read loop until the grandchildren exit on their own.
func configureProcessTree(child *exec.Cmd) {
	child.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	child.Cancel = func() error {
		if child.Process == nil {
			return nil
		}
		return syscall.Kill(-child.Process.Pid, syscall.SIGKILL)
	}
}
