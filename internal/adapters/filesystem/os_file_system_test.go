package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"uipcup/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsFileSystem_WriteAndReadFile(t *testing.T) {
	sut := ProvideOsFileSystem()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	err := sut.WriteFile(path, []byte("jobs: 4\n"), ports.ReadWrite)
	require.NoError(t, err)

	content, err := sut.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jobs: 4\n", string(content))
}

func TestOsFileSystem_FileExists(t *testing.T) {
	sut := ProvideOsFileSystem()
	path := filepath.Join(t.TempDir(), "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	exists, err := sut.FileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = sut.FileExists(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOsFileSystem_AppendLine_CreatesAndAppends(t *testing.T) {
	sut := ProvideOsFileSystem()
	path := filepath.Join(t.TempDir(), "bashrc")

	require.NoError(t, sut.AppendLine(path, "export A=1"))
	require.NoError(t, sut.AppendLine(path, "export B=2"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export A=1\nexport B=2\n", string(content))
}

func TestOsFileSystem_EnsureDirExists(t *testing.T) {
	sut := ProvideOsFileSystem()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, sut.EnsureDirExists(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOsFileSystem_MarkExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	sut := ProvideOsFileSystem()
	path := filepath.Join(t.TempDir(), "bootstrap.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0600))

	require.NoError(t, sut.MarkExecutable(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0100)
}

func TestExpandHome_ResolvesTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := expandHome("~/.uipcup.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".uipcup.yaml"), expanded)
}

func TestExpandHome_LeavesPlainPathsAlone(t *testing.T) {
	expanded, err := expandHome("/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, "/etc/hosts", expanded)
}
