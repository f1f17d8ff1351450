package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

// EnvConfig holds settings read from the environment. They override
// xmlschemas.yaml and are overridden by command line flags.
type EnvConfig struct {
	Output  string `env:"XMLSCHEMAS_OUTPUT"`
	Verbose bool   `env:"XMLSCHEMAS_VERBOSE"`
}

// LoadEnv parses EnvConfig from environment variables. Unset and empty
// variables leave their field at the zero value.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("%w: parse env: %v", schemas.ErrInvalidConfig, err)
	}
	return cfg, nil
}
