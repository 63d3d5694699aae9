package handler

import (
	"errors"
	"path/filepath"
	"testing"

	"uipcup/internal/core"
	"uipcup/internal/core/domain"
	"uipcup/internal/ports"
	"uipcup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type installFixture struct {
	configRepository *testutil.MockConfigRepository
	commandRunner    *testutil.MockCommandRunner
	platform         *testutil.MockPlatform
	envManager       *testutil.MockEnvironmentManager
	toolchain        *testutil.MockToolchain
	buildSystem      *testutil.MockBuildSystem
	pythonInstaller  *testutil.MockPythonInstaller
	scm              *testutil.MockScm
	fileSystem       *testutil.MockFileSystem
	terminalInput    *testutil.MockTerminalInput
	sut              InstallCommandHandler
}

func newInstallFixture(t *testing.T) *installFixture {
	t.Helper()
	// Keep ambient overrides out of the precedence chain.
	for _, key := range envOverrideKeys {
		t.Setenv(key, "")
	}

	f := &installFixture{
		configRepository: new(testutil.MockConfigRepository),
		commandRunner:    new(testutil.MockCommandRunner),
		platform:         new(testutil.MockPlatform),
		envManager:       new(testutil.MockEnvironmentManager),
		toolchain:        new(testutil.MockToolchain),
		buildSystem:      new(testutil.MockBuildSystem),
		pythonInstaller:  new(testutil.MockPythonInstaller),
		scm:              new(testutil.MockScm),
		fileSystem:       new(testutil.MockFileSystem),
		terminalInput:    new(testutil.MockTerminalInput),
	}
	f.sut = ProvideInstallCommandHandler(
		f.configRepository,
		core.ProvideDependencyChecker(f.commandRunner, f.platform, f.scm, f.buildSystem),
		core.ProvideEnvironmentPreparer(f.envManager, f.fileSystem, f.commandRunner),
		core.ProvideVerifier(f.commandRunner, f.fileSystem, f.platform),
		f.toolchain,
		f.buildSystem,
		f.pythonInstaller,
		f.scm,
		f.fileSystem,
		f.terminalInput,
	)
	return f
}

func (f *installFixture) givenDefaultConfig() *domain.Config {
	config := domain.CreateDefaultConfig("/home/user")
	f.configRepository.On("LoadConfig").Return(&config, nil)
	return &config
}

func (f *installFixture) givenAllDependenciesPresent() {
	f.platform.On("PythonCommand").Return("python3")
	f.scm.On("Version").Return("git version 2.43.0", nil)
	f.buildSystem.On("VersionLine").Return("cmake version 3.28.1", nil)
	f.commandRunner.On("Run", ports.Argv("python3", "--version"), ports.RunOptions{}).
		Return(&ports.CommandResult{ExitCode: 0, Stdout: "Python 3.11.7\n"}, nil)
	f.commandRunner.On("Run", ports.Argv("conda", "--version"), ports.RunOptions{}).
		Return(&ports.CommandResult{ExitCode: 0, Stdout: "conda 24.1.2\n"}, nil)
}

func TestInstallCommandHandler_Handle_FullFlowSucceeds(t *testing.T) {
	f := newInstallFixture(t)
	config := f.givenDefaultConfig()
	f.givenAllDependenciesPresent()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(true, nil)
	f.toolchain.On("Ensure", config.ToolchainDir).Return(nil)
	f.toolchain.On("DescriptorPath", config.ToolchainDir).Return("/tc.cmake")
	// conda is on PATH for the probe but unavailable for environment
	// management, so the flow continues with the host interpreter.
	f.envManager.On("Available").Return(false)
	f.buildSystem.On("Configure", mock.Anything).Return(nil)
	f.buildSystem.On("Build", mock.Anything).Return(nil)
	pythonBuildDir := filepath.Join(config.BuildDir, "python")
	f.fileSystem.On("FileExists", pythonBuildDir).Return(true, nil)
	f.pythonInstaller.On("InstallDirectory", pythonBuildDir).Return(nil)
	f.commandRunner.On("Run",
		ports.Argv("python3", "-c", `import uipc; print(getattr(uipc, "__version__", "unknown"))`),
		ports.RunOptions{},
	).Return(&ports.CommandResult{ExitCode: 0, Stdout: "2.0.0\n"}, nil)
	f.fileSystem.On("FileExists", filepath.Join(".", "python/uipc_info.py")).Return(false, nil)

	err := f.sut.Handle(InstallOptions{Yes: true})

	require.NoError(t, err)
	f.buildSystem.AssertExpectations(t)
	f.pythonInstaller.AssertExpectations(t)
}

func TestInstallCommandHandler_Handle_FailsOutsideSourceRoot(t *testing.T) {
	f := newInstallFixture(t)
	f.givenDefaultConfig()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(false, nil)

	err := f.sut.Handle(InstallOptions{Yes: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CMakeLists.txt")
	f.toolchain.AssertNotCalled(t, "Ensure")
}

func TestInstallCommandHandler_Handle_AbortsOnMissingDependency(t *testing.T) {
	f := newInstallFixture(t)
	f.givenDefaultConfig()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(true, nil)
	f.platform.On("PythonCommand").Return("python3")
	f.scm.On("Version").Return("", errors.New("executable file not found"))
	f.buildSystem.On("VersionLine").Return("", errors.New("executable file not found"))
	f.commandRunner.On("Run", mock.Anything, ports.RunOptions{}).
		Return(nil, errors.New("executable file not found"))
	f.toolchain.On("DescriptorPath", mock.Anything).Return("/tc.cmake")

	err := f.sut.Handle(InstallOptions{Yes: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required")
	f.toolchain.AssertNotCalled(t, "Ensure")
	f.buildSystem.AssertNotCalled(t, "Configure")
}

func TestInstallCommandHandler_Handle_CancelledAtConfirmation(t *testing.T) {
	f := newInstallFixture(t)
	f.givenDefaultConfig()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(true, nil)
	f.terminalInput.On("IsTerminal").Return(true)
	f.terminalInput.On("ReadLine", "Continue? [y/N] ").Return("n", nil)

	err := f.sut.Handle(InstallOptions{})

	require.NoError(t, err)
	f.toolchain.AssertNotCalled(t, "Ensure")
}

func TestInstallCommandHandler_Handle_SkipsCondaStageWithFlag(t *testing.T) {
	f := newInstallFixture(t)
	config := f.givenDefaultConfig()
	f.givenAllDependenciesPresent()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(true, nil)
	f.toolchain.On("Ensure", config.ToolchainDir).Return(nil)
	f.toolchain.On("DescriptorPath", config.ToolchainDir).Return("/tc.cmake")
	f.buildSystem.On("Configure", mock.Anything).Return(nil)
	f.buildSystem.On("Build", mock.Anything).Return(nil)
	pythonBuildDir := filepath.Join(config.BuildDir, "python")
	f.fileSystem.On("FileExists", pythonBuildDir).Return(true, nil)
	f.pythonInstaller.On("InstallDirectory", pythonBuildDir).Return(nil)

	err := f.sut.Handle(InstallOptions{Yes: true, NoConda: true, SkipVerify: true})

	require.NoError(t, err)
	f.envManager.AssertNotCalled(t, "Available")
	f.commandRunner.AssertNotCalled(t, "SetEnvironment")
}

func TestInstallCommandHandler_Handle_VerificationFailureIsReported(t *testing.T) {
	f := newInstallFixture(t)
	config := f.givenDefaultConfig()
	f.givenAllDependenciesPresent()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(true, nil)
	f.toolchain.On("Ensure", config.ToolchainDir).Return(nil)
	f.toolchain.On("DescriptorPath", config.ToolchainDir).Return("/tc.cmake")
	f.envManager.On("Available").Return(false)
	f.buildSystem.On("Configure", mock.Anything).Return(nil)
	f.buildSystem.On("Build", mock.Anything).Return(nil)
	pythonBuildDir := filepath.Join(config.BuildDir, "python")
	f.fileSystem.On("FileExists", pythonBuildDir).Return(true, nil)
	f.pythonInstaller.On("InstallDirectory", pythonBuildDir).Return(nil)
	f.commandRunner.On("Run",
		ports.Argv("python3", "-c", `import uipc; print(getattr(uipc, "__version__", "unknown"))`),
		ports.RunOptions{},
	).Return(&ports.CommandResult{ExitCode: 1, Stderr: "ModuleNotFoundError"}, nil)

	err := f.sut.Handle(InstallOptions{Yes: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification failed")
}

func TestInstallCommandHandler_Handle_FlagsOverrideConfig(t *testing.T) {
	f := newInstallFixture(t)
	f.givenDefaultConfig()
	f.givenAllDependenciesPresent()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(true, nil)
	f.toolchain.On("Ensure", "/custom/toolchain").Return(nil)
	f.toolchain.On("DescriptorPath", "/custom/toolchain").Return("/custom/tc.cmake")
	f.envManager.On("Available").Return(false)
	f.buildSystem.On("Configure", mock.MatchedBy(func(plan domain.BuildPlan) bool {
		return plan.BuildDir == "custom-build" && plan.Jobs == 3 && plan.ToolchainFile == "/custom/tc.cmake"
	})).Return(nil)
	f.buildSystem.On("Build", mock.Anything).Return(nil)
	pythonBuildDir := filepath.Join("custom-build", "python")
	f.fileSystem.On("FileExists", pythonBuildDir).Return(true, nil)
	f.pythonInstaller.On("InstallDirectory", pythonBuildDir).Return(nil)

	err := f.sut.Handle(InstallOptions{
		Yes:          true,
		SkipVerify:   true,
		ToolchainDir: "/custom/toolchain",
		BuildDir:     "custom-build",
		Jobs:         3,
	})

	require.NoError(t, err)
	f.buildSystem.AssertExpectations(t)
}

func TestInstallCommandHandler_Handle_SourceFlagClonesMissingCheckout(t *testing.T) {
	f := newInstallFixture(t)
	config := f.givenDefaultConfig()
	f.givenAllDependenciesPresent()
	f.fileSystem.On("FileExists", filepath.Join("/src/libuipc", "CMakeLists.txt")).Return(false, nil)
	f.scm.On("EnsureCheckout", config.SourceRepo, config.SourceRef, "/src/libuipc").Return(nil)
	f.toolchain.On("Ensure", config.ToolchainDir).Return(nil)
	f.toolchain.On("DescriptorPath", config.ToolchainDir).Return("/tc.cmake")
	f.envManager.On("Available").Return(false)
	f.buildSystem.On("Configure", mock.MatchedBy(func(plan domain.BuildPlan) bool {
		return plan.SourceDir == "/src/libuipc" &&
			plan.BuildDir == filepath.Join("/src/libuipc", config.BuildDir)
	})).Return(nil)
	f.buildSystem.On("Build", mock.Anything).Return(nil)
	pythonBuildDir := filepath.Join("/src/libuipc", config.BuildDir, "python")
	f.fileSystem.On("FileExists", pythonBuildDir).Return(true, nil)
	f.pythonInstaller.On("InstallDirectory", pythonBuildDir).Return(nil)

	err := f.sut.Handle(InstallOptions{Yes: true, SkipVerify: true, Source: "/src/libuipc"})

	require.NoError(t, err)
	f.scm.AssertExpectations(t)
	f.buildSystem.AssertExpectations(t)
}

func TestInstallCommandHandler_Handle_SourceFlagReusesExistingCheckout(t *testing.T) {
	f := newInstallFixture(t)
	config := f.givenDefaultConfig()
	f.givenAllDependenciesPresent()
	f.fileSystem.On("FileExists", filepath.Join("/src/libuipc", "CMakeLists.txt")).Return(true, nil)
	f.toolchain.On("Ensure", config.ToolchainDir).Return(nil)
	f.toolchain.On("DescriptorPath", config.ToolchainDir).Return("/tc.cmake")
	f.envManager.On("Available").Return(false)
	f.buildSystem.On("Configure", mock.Anything).Return(nil)
	f.buildSystem.On("Build", mock.Anything).Return(nil)
	pythonBuildDir := filepath.Join("/src/libuipc", config.BuildDir, "python")
	f.fileSystem.On("FileExists", pythonBuildDir).Return(true, nil)
	f.pythonInstaller.On("InstallDirectory", pythonBuildDir).Return(nil)

	err := f.sut.Handle(InstallOptions{Yes: true, SkipVerify: true, Source: "/src/libuipc"})

	require.NoError(t, err)
	f.scm.AssertNotCalled(t, "EnsureCheckout")
}
