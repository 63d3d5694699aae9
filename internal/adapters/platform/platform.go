package platform

import (
	"runtime"

	"uipcup/internal/ports"
)

// ProvideHostPlatform selects the adapter for the operating system the
// installer is running on. Everything that is not Windows is treated as
// Linux, the two platforms the installation flow supports.
func ProvideHostPlatform() ports.Platform {
	if runtime.GOOS == "windows" {
		return &WindowsPlatform{}
	}
	return &LinuxPlatform{}
}
