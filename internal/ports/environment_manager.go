package ports

// EnvironmentManager manages named, reproducible package environments
// (conda). Creation takes either a declarative environment file or a
// minimal inline specification.
type EnvironmentManager interface {
	Available() bool
	Exists(name string) (bool, error)
	CreateFromFile(file string) error
	UpdateFromFile(file string) error
	CreateMinimal(name string) error

	// PythonExecutable resolves the interpreter path inside the named
	// environment once it has been activated on the runner.
	PythonExecutable() (string, error)
}
