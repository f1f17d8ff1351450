package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/internal/config"
	"github.com/vvka-141/xmlschemas/internal/manifest"
)

// EnvOutput overrides the output directory from xmlschemas.yaml.
const EnvOutput = "XMLSCHEMAS_OUTPUT"

// loadProjectConfig loads dir/.env into the environment, then reads the
// environment settings and xmlschemas.yaml from dir. A missing config file
// yields the zero config. Variables already set in the environment win over
// .env entries.
func loadProjectConfig(dir string) (*config.ProjectConfig, config.EnvConfig, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	envCfg, err := config.LoadEnv()
	if err != nil {
		return nil, config.EnvConfig{}, err
	}

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.ProjectConfig{}, envCfg, nil
		}
		return nil, envCfg, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, envCfg, nil
}

// resolveOutputDir picks the extraction directory.
// Priority (highest to lowest): positional argument > XMLSCHEMAS_OUTPUT > xmlschemas.yaml > bundle ID.
func resolveOutputDir(arg string, envCfg config.EnvConfig, projectCfg *config.ProjectConfig, bundleID string) string {
	if arg != "" {
		return arg
	}
	if envCfg.Output != "" {
		return envCfg.Output
	}
	if projectCfg != nil && projectCfg.Output != "" {
		return projectCfg.Output
	}
	return bundleID
}

// resolveBoolFlag returns the flag value when set on the command line and
// the config value otherwise.
func resolveBoolFlag(cmd *cobra.Command, name string, flagValue, configValue bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}

// resolveManifestFormat parses the --format flag, falling back to the config
// value and then to json.
func resolveManifestFormat(cmd *cobra.Command, flagValue string, projectCfg *config.ProjectConfig) (manifest.Format, error) {
	value := flagValue
	if !cmd.Flags().Changed("format") && projectCfg != nil && projectCfg.ManifestFormat != "" {
		value = projectCfg.ManifestFormat
	}
	if value == "" {
		return manifest.FormatJSON, nil
	}

	format, err := manifest.ParseFormat(value)
	if err != nil {
		return "", fmt.Errorf("invalid argument %q for --format: %w", value, err)
	}
	return format, nil
}
