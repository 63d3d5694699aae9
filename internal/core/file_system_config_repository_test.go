package core

import (
	"runtime"
	"testing"

	"uipcup/internal/core/domain"
	"uipcup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystemConfigRepository_LoadConfig_ReturnsDefaultsWithoutFile(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fileSystem)

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "CMakeBuild", config.BuildDir)
	assert.Equal(t, runtime.NumCPU(), config.Jobs)
	assert.True(t, config.UseConda)
	assert.Equal(t, domain.DefaultEnvironmentName, config.EnvName)
}

func TestFileSystemConfigRepository_LoadConfig_MergesFileOverDefaults(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile("~/.uipcup.yaml", []byte("jobs: 2\nbuildDir: out\n"), 0))
	sut := ProvideFileSystemConfigRepository(fileSystem)

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 2, config.Jobs)
	assert.Equal(t, "out", config.BuildDir)
	// Untouched fields keep their defaults.
	assert.Equal(t, domain.DefaultEnvironmentName, config.EnvName)
}

func TestFileSystemConfigRepository_LoadConfig_RejectsInvalidValues(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile("~/.uipcup.yaml", []byte("jobs: -1\n"), 0))
	sut := ProvideFileSystemConfigRepository(fileSystem)

	_, err := sut.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestFileSystemConfigRepository_SaveAndReloadRoundTrip(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fileSystem)

	config := domain.CreateDefaultConfig("/home/user")
	config.Jobs = 6
	config.Defines = []string{"UIPC_WITH_CUDA=OFF"}
	require.NoError(t, sut.SaveConfig(&config))

	exists, err := sut.ConfigExists()
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := sut.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Jobs)
	assert.Equal(t, []string{"UIPC_WITH_CUDA=OFF"}, loaded.Defines)
}
