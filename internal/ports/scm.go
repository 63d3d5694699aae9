package ports

// Scm keeps a local checkout of a remote repository up to date: clone when
// the directory is missing, update when it already contains a repository.
type Scm interface {
	// Version reports the installed tool's version line.
	Version() (string, error)
	EnsureCheckout(repositoryUrl string, ref string, repositoryPath string) error
}
