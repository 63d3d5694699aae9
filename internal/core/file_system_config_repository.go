package core

import (
	"fmt"
	"os"
	"path/filepath"

	"uipcup/internal/core/domain"
	"uipcup/internal/ports"

	"gopkg.in/yaml.v3"
)

var configFilePath = filepath.Join("~", ".uipcup.yaml")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
}

// FileSystemConfigRepository stores the installer configuration in
// ~/.uipcup.yaml. A missing file yields the built-in defaults so the
// installer works without any prior setup.
type FileSystemConfigRepository struct {
	fileSystem ports.FileSystem
}

func ProvideFileSystemConfigRepository(fileSystem ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{fileSystem: fileSystem}
}

func (r *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	exists, err := r.fileSystem.FileExists(configFilePath)
	if err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	config := domain.CreateDefaultConfig(home)

	if exists {
		content, err := r.fileSystem.ReadFile(configFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(content, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func (r *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	content, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return r.fileSystem.WriteFile(configFilePath, content, ports.ReadWrite)
}

func (r *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return r.fileSystem.FileExists(configFilePath)
}

var _ ConfigRepository = (*FileSystemConfigRepository)(nil)
