package scm

import (
	"fmt"
	"path/filepath"
	"strings"

	"uipcup/internal/ports"
)

type GitClient struct {
	commandRunner ports.CommandRunner
	fileSystem    ports.FileSystem
}

func ProvideGitClient(commandRunner ports.CommandRunner, fileSystem ports.FileSystem) *GitClient {
	return &GitClient{
		commandRunner: commandRunner,
		fileSystem:    fileSystem,
	}
}

func (g *GitClient) ContainsRepository(repositoryPath string) bool {
	exists, err := g.fileSystem.FileExists(filepath.Join(repositoryPath, ".git", "HEAD"))
	return err == nil && exists
}

func (g *GitClient) Version() (string, error) {
	result, err := g.commandRunner.Run(
		ports.Argv("git", "--version"),
		ports.RunOptions{RequireSuccess: true},
	)
	if err != nil {
		return "", fmt.Errorf("failed to query git version: %v", err)
	}
	return strings.TrimSpace(result.Stdout), nil
}

func (g *GitClient) Clone(repositoryUrl string, ref string, repositoryPath string) error {
	args := []string{"git", "clone"}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	args = append(args, repositoryUrl, repositoryPath)

	_, err := g.commandRunner.Run(
		ports.Argv(args...),
		ports.RunOptions{RequireSuccess: true},
	)
	if err != nil {
		return fmt.Errorf("failed to clone %s: %v", repositoryUrl, err)
	}
	return nil
}

func (g *GitClient) Pull(repositoryPath string) error {
	_, err := g.commandRunner.Run(
		ports.Argv("git", "pull"),
		ports.RunOptions{Dir: repositoryPath, RequireSuccess: true},
	)
	if err != nil {
		return fmt.Errorf("failed to update repository at %s: %v", repositoryPath, err)
	}
	return nil
}

func (g *GitClient) Checkout(repositoryPath string, ref string) error {
	_, err := g.commandRunner.Run(
		ports.Argv("git", "checkout", ref),
		ports.RunOptions{Dir: repositoryPath, RequireSuccess: true},
	)
	if err != nil {
		return fmt.Errorf("failed to checkout %s: %v", ref, err)
	}
	return nil
}
