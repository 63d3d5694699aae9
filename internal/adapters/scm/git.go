package scm

import (
	"fmt"
	"path/filepath"

	"uipcup/internal/ports"
)

// Git keeps local checkouts current: a missing directory is cloned, an
// existing repository is updated with a pull, matching how the toolchain
// checkout is refreshed between installer runs.
type Git struct {
	gitClient  *GitClient
	fileSystem ports.FileSystem
}

func ProvideGit(gitClient *GitClient, fileSystem ports.FileSystem) *Git {
	return &Git{
		gitClient:  gitClient,
		fileSystem: fileSystem,
	}
}

func (g *Git) Version() (string, error) {
	return g.gitClient.Version()
}

func (g *Git) EnsureCheckout(repositoryUrl string, ref string, repositoryPath string) error {
	if g.gitClient.ContainsRepository(repositoryPath) {
		// A requested ref is checked out first so the pull advances the
		// branch the caller asked for.
		if ref != "" {
			if err := g.gitClient.Checkout(repositoryPath, ref); err != nil {
				return err
			}
		}
		return g.gitClient.Pull(repositoryPath)
	}

	parent := filepath.Dir(repositoryPath)
	if err := g.fileSystem.EnsureDirExists(parent); err != nil {
		return fmt.Errorf("failed to create checkout parent directory %s: %v", parent, err)
	}
	return g.gitClient.Clone(repositoryUrl, ref, repositoryPath)
}

var _ ports.Scm = (*Git)(nil)
