//go:build windows

package command_runner

import "os/exec"

// configureProcessTree keeps the default cancellation, which kills the
// immediate child; WaitDelay bounds any pipe I/O left behind by
// grandchildren.
func configureProcessTree(child *exec.Cmd) {}
