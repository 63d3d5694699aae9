//go:build wireinject
// +build wireinject

package app

import (
	"uipcup/internal/adapters/buildsys"
	"uipcup/internal/adapters/command_runner"
	"uipcup/internal/adapters/envmgr"
	"uipcup/internal/adapters/filesystem"
	"uipcup/internal/adapters/pkgmgr"
	"uipcup/internal/adapters/platform"
	"uipcup/internal/adapters/pyinstaller"
	"uipcup/internal/adapters/scm"
	"uipcup/internal/adapters/templater"
	"uipcup/internal/adapters/terminal"
	"uipcup/internal/core"
	"uipcup/internal/core/handler"
	"uipcup/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	platform.ProvideHostPlatform,
	command_runner.ProvideSupervisedRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.SupervisedRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	scm.ProvideGitClient,
	scm.ProvideGit,
	wire.Bind(new(ports.Scm), new(*scm.Git)),
	pkgmgr.ProvideVcpkgClient,
	wire.Bind(new(ports.Toolchain), new(*pkgmgr.VcpkgClient)),
	buildsys.ProvideCMakeClient,
	wire.Bind(new(ports.BuildSystem), new(*buildsys.CMakeClient)),
	envmgr.ProvideCondaClient,
	wire.Bind(new(ports.EnvironmentManager), new(*envmgr.CondaClient)),
	pyinstaller.ProvidePipClient,
	wire.Bind(new(ports.PythonInstaller), new(*pyinstaller.PipClient)),
	templater.ProvideTextTemplater,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideDependencyChecker,
	core.ProvideEnvironmentPreparer,
	core.ProvideEnvVarPersister,
	core.ProvideVerifier,
	core.ProvidePipSetupGenerator,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectInstallCommandHandler() (handler.InstallCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInstallCommandHandler,
	)
	return handler.InstallCommandHandler{}, nil
}

func InjectPipSetupCommandHandler() (handler.PipSetupCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePipSetupCommandHandler,
	)
	return handler.PipSetupCommandHandler{}, nil
}

func InjectCheckCommandHandler() (handler.CheckCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCheckCommandHandler,
	)
	return handler.CheckCommandHandler{}, nil
}

func InjectVerifyCommandHandler() (handler.VerifyCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideVerifyCommandHandler,
	)
	return handler.VerifyCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
