package pkgmgr

import (
	"fmt"
	"path/filepath"

	"uipcup/internal/ports"
)

const vcpkgRepositoryUrl = "https://github.com/microsoft/vcpkg.git"

// VcpkgClient provisions the vcpkg checkout under the toolchain directory
// and runs its one-time bootstrap, which compiles the vcpkg launcher.
type VcpkgClient struct {
	commandRunner ports.CommandRunner
	fileSystem    ports.FileSystem
	scm           ports.Scm
	platform      ports.Platform
}

func ProvideVcpkgClient(
	commandRunner ports.CommandRunner,
	fileSystem ports.FileSystem,
	scm ports.Scm,
	platform ports.Platform,
) *VcpkgClient {
	return &VcpkgClient{
		commandRunner: commandRunner,
		fileSystem:    fileSystem,
		scm:           scm,
		platform:      platform,
	}
}

func checkoutDir(toolchainDir string) string {
	return filepath.Join(toolchainDir, "vcpkg")
}

func (c *VcpkgClient) Ensure(toolchainDir string) error {
	if err := c.fileSystem.EnsureDirExists(toolchainDir); err != nil {
		return fmt.Errorf("failed to create toolchain directory %s: %v", toolchainDir, err)
	}

	vcpkgDir := checkoutDir(toolchainDir)
	if err := c.scm.EnsureCheckout(vcpkgRepositoryUrl, "", vcpkgDir); err != nil {
		return err
	}

	script, needsExecBit := c.platform.BootstrapScript(vcpkgDir)
	if needsExecBit {
		if err := c.fileSystem.MarkExecutable(script); err != nil {
			return err
		}
	}

	_, err := c.commandRunner.Run(
		ports.Argv(script),
		ports.RunOptions{Dir: vcpkgDir, RequireSuccess: true, Stream: true},
	)
	if err != nil {
		return fmt.Errorf("vcpkg bootstrap failed: %v", err)
	}
	return nil
}

func (c *VcpkgClient) DescriptorPath(toolchainDir string) string {
	return filepath.Join(checkoutDir(toolchainDir), "scripts", "buildsystems", "vcpkg.cmake")
}

var _ ports.Toolchain = (*VcpkgClient)(nil)
