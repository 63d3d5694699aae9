package ports

// EnvVarPersistence describes how to make an environment variable durable on
// the host: either a line appended to a shell startup file (Linux) or a
// command to run (Windows setx). Exactly one of File or Command is set.
type EnvVarPersistence struct {
	File    string
	Line    string
	Command *Command
}

// Platform captures the per-OS differences of the installation flow: how
// shell lines are dispatched, how a named environment is activated, which
// vcpkg bootstrap script to run and how environment variables persist
// across sessions. Two variants exist, Linux and Windows; the runner and
// the orchestration stay platform-agnostic.
type Platform interface {
	Name() string

	// ShellCommand returns the argv that executes line through the
	// platform shell.
	ShellCommand(line string) []string

	// WrapWithEnvironment rewrites line so it executes after activating the
	// named environment. On Windows the cmd shell chains natively with &&;
	// Linux needs an explicit bash invocation for `conda activate` to work.
	WrapWithEnvironment(env string, line string) string

	// BootstrapScript returns the vcpkg bootstrap script inside dir and
	// whether it needs the executable bit set before running.
	BootstrapScript(dir string) (script string, needsExecBit bool)

	// PersistEnvVar describes how to persist name=value for future sessions.
	PersistEnvVar(name, value string) EnvVarPersistence

	// PythonCommand is the interpreter binary name on this platform.
	PythonCommand() string
}
