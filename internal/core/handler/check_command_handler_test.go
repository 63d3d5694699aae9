package handler

import (
	"errors"
	"testing"

	"uipcup/internal/core"
	"uipcup/internal/ports"
	"uipcup/internal/testutil"

	"github.com/stretchr/testify/require"
)

type checkFixture struct {
	commandRunner *testutil.MockCommandRunner
	platform      *testutil.MockPlatform
	scm           *testutil.MockScm
	buildSystem   *testutil.MockBuildSystem
	fileSystem    *testutil.MockFileSystem
	sut           CheckCommandHandler
}

func newCheckFixture() *checkFixture {
	f := &checkFixture{
		commandRunner: new(testutil.MockCommandRunner),
		platform:      new(testutil.MockPlatform),
		scm:           new(testutil.MockScm),
		buildSystem:   new(testutil.MockBuildSystem),
		fileSystem:    new(testutil.MockFileSystem),
	}
	f.platform.On("PythonCommand").Return("python3")
	f.sut = ProvideCheckCommandHandler(
		core.ProvideDependencyChecker(f.commandRunner, f.platform, f.scm, f.buildSystem),
		core.ProvideVerifier(f.commandRunner, f.fileSystem, f.platform),
		f.fileSystem,
	)
	return f
}

func (f *checkFixture) givenInterpreterToolsPresent() {
	f.commandRunner.On("Run", ports.Argv("python3", "--version"), ports.RunOptions{}).
		Return(&ports.CommandResult{ExitCode: 0, Stdout: "Python 3.11.7\n"}, nil)
	f.commandRunner.On("Run", ports.Argv("conda", "--version"), ports.RunOptions{}).
		Return(&ports.CommandResult{ExitCode: 0, Stdout: "conda 24.1.2\n"}, nil)
}

func TestCheckCommandHandler_Handle_PassesWithAllTools(t *testing.T) {
	f := newCheckFixture()
	f.scm.On("Version").Return("git version 2.43.0", nil)
	f.buildSystem.On("VersionLine").Return("cmake version 3.28.1", nil)
	f.givenInterpreterToolsPresent()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(true, nil)
	f.commandRunner.On("Run",
		ports.Argv("python3", "-c", `import uipc; print(getattr(uipc, "__version__", "unknown"))`),
		ports.RunOptions{},
	).Return(&ports.CommandResult{ExitCode: 0, Stdout: "2.0.0\n"}, nil)

	require.NoError(t, f.sut.Handle())
}

func TestCheckCommandHandler_Handle_FailsOnMissingMandatoryTool(t *testing.T) {
	f := newCheckFixture()
	f.scm.On("Version").Return("", errors.New("executable file not found"))
	f.buildSystem.On("VersionLine").Return("cmake version 3.28.1", nil)
	f.commandRunner.On("Run", ports.Argv("python3", "--version"), ports.RunOptions{}).
		Return(&ports.CommandResult{ExitCode: 0, Stdout: "Python 3.11.7\n"}, nil)
	f.commandRunner.On("Run", ports.Argv("conda", "--version"), ports.RunOptions{}).
		Return(nil, errors.New("executable file not found"))
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(true, nil)
	f.commandRunner.On("Run",
		ports.Argv("python3", "-c", `import uipc; print(getattr(uipc, "__version__", "unknown"))`),
		ports.RunOptions{},
	).Return(&ports.CommandResult{ExitCode: 1, Stderr: "ModuleNotFoundError"}, nil)

	require.Error(t, f.sut.Handle())
}

func TestCheckCommandHandler_Handle_MissingSourceTreeIsOnlyAWarning(t *testing.T) {
	f := newCheckFixture()
	f.scm.On("Version").Return("git version 2.43.0", nil)
	f.buildSystem.On("VersionLine").Return("cmake version 3.28.1", nil)
	f.givenInterpreterToolsPresent()
	f.fileSystem.On("FileExists", "CMakeLists.txt").Return(false, nil)
	f.commandRunner.On("Run",
		ports.Argv("python3", "-c", `import uipc; print(getattr(uipc, "__version__", "unknown"))`),
		ports.RunOptions{},
	).Return(&ports.CommandResult{ExitCode: 1, Stderr: "ModuleNotFoundError"}, nil)

	require.NoError(t, f.sut.Handle())
}
