package shellconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/config"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

const defaultConfigFilename = ".dwimsh.yaml"

// YAMLProvider implements the ConfigProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML settings file.
func NewYAMLProvider(filePath string) (ports.ConfigProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultPath returns $HOME/.dwimsh.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigFilename), nil
}

// Load reads the configured file over config.Default.
// A missing or empty file yields the defaults and no error; unknown keys are rejected.
func (p *YAMLProvider) Load() (config.Config, error) {
	cfg := config.Default()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return config.Default(), nil
		}
		return config.Default(), fmt.Errorf("failed to parse config file %s: %w", p.filePath, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = config.Default().Prompt
	}
	return cfg, nil
}
