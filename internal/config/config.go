package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds defaults for the xmlschemas command line.
type ProjectConfig struct {
	Output         string `yaml:"output"`
	RequireEmpty   bool   `yaml:"require_empty"`
	Manifest       bool   `yaml:"manifest"`
	ManifestFormat string `yaml:"manifest_format,omitempty"`
	Verbose        bool   `yaml:"verbose"`
}

const ConfigFileName = "xmlschemas.yaml"

// Load reads ConfigFileName from dir. A malformed file yields an error
// matching schemas.ErrInvalidConfig.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", schemas.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}
