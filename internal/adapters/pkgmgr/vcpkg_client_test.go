package pkgmgr

import (
	"errors"
	"path/filepath"
	"testing"

	"uipcup/internal/ports"
	"uipcup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVcpkgClient_Ensure_ClonesAndBootstraps(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	fileSystem := new(testutil.MockFileSystem)
	scm := new(testutil.MockScm)
	platform := new(testutil.MockPlatform)

	vcpkgDir := filepath.Join("/toolchain", "vcpkg")
	script := filepath.Join(vcpkgDir, "bootstrap-vcpkg.sh")

	fileSystem.On("EnsureDirExists", "/toolchain").Return(nil)
	scm.On("EnsureCheckout", "https://github.com/microsoft/vcpkg.git", "", vcpkgDir).Return(nil)
	platform.On("BootstrapScript", vcpkgDir).Return(script, true)
	fileSystem.On("MarkExecutable", script).Return(nil)
	commandRunner.On("Run", ports.Argv(script), ports.RunOptions{Dir: vcpkgDir, RequireSuccess: true, Stream: true}).
		Return(&ports.CommandResult{ExitCode: 0}, nil)

	sut := ProvideVcpkgClient(commandRunner, fileSystem, scm, platform)

	err := sut.Ensure("/toolchain")

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
	fileSystem.AssertExpectations(t)
	scm.AssertExpectations(t)
}

func TestVcpkgClient_Ensure_SkipsExecBitWhenNotNeeded(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	fileSystem := new(testutil.MockFileSystem)
	scm := new(testutil.MockScm)
	platform := new(testutil.MockPlatform)

	vcpkgDir := filepath.Join("/toolchain", "vcpkg")
	script := filepath.Join(vcpkgDir, "bootstrap-vcpkg.bat")

	fileSystem.On("EnsureDirExists", "/toolchain").Return(nil)
	scm.On("EnsureCheckout", "https://github.com/microsoft/vcpkg.git", "", vcpkgDir).Return(nil)
	platform.On("BootstrapScript", vcpkgDir).Return(script, false)
	commandRunner.On("Run", ports.Argv(script), ports.RunOptions{Dir: vcpkgDir, RequireSuccess: true, Stream: true}).
		Return(&ports.CommandResult{ExitCode: 0}, nil)

	sut := ProvideVcpkgClient(commandRunner, fileSystem, scm, platform)

	err := sut.Ensure("/toolchain")

	require.NoError(t, err)
	fileSystem.AssertNotCalled(t, "MarkExecutable", script)
}

func TestVcpkgClient_Ensure_PropagatesCheckoutFailure(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	fileSystem := new(testutil.MockFileSystem)
	scm := new(testutil.MockScm)
	platform := new(testutil.MockPlatform)

	fileSystem.On("EnsureDirExists", "/toolchain").Return(nil)
	scm.On("EnsureCheckout", "https://github.com/microsoft/vcpkg.git", "", filepath.Join("/toolchain", "vcpkg")).
		Return(errors.New("network unreachable"))

	sut := ProvideVcpkgClient(commandRunner, fileSystem, scm, platform)

	err := sut.Ensure("/toolchain")

	require.Error(t, err)
	commandRunner.AssertNotCalled(t, "Run")
}

func TestVcpkgClient_DescriptorPath(t *testing.T) {
	sut := ProvideVcpkgClient(nil, nil, nil, nil)

	path := sut.DescriptorPath("/toolchain")

	assert.Equal(t, filepath.Join("/toolchain", "vcpkg", "scripts", "buildsystems", "vcpkg.cmake"), path)
}
