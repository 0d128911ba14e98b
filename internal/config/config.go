// Package config loads optional CLI configuration from a cutlist.yaml
// file and CUTLIST_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the user-tunable settings of the command line tool.
// Everything is optional; the zero value means built-in defaults.
type Config struct {
	// CatalogPath overrides where the persisted format catalog lives.
	CatalogPath string `mapstructure:"catalog_path"`

	// ExportDir is the default directory for generated files.
	ExportDir string `mapstructure:"export_dir"`

	// Aliases adds extra accepted column header spellings per input
	// table, merged on top of the built-in English/Spanish synonyms.
	Aliases struct {
		Pieces  map[string][]string `mapstructure:"pieces"`
		Formats map[string][]string `mapstructure:"formats"`
		Bands   map[string][]string `mapstructure:"bands"`
	} `mapstructure:"aliases"`
}

// Load reads the configuration. With an explicit path the file must
// exist; otherwise cutlist.yaml is searched in the working directory
// and a missing file simply yields defaults. Environment variables with
// the CUTLIST prefix override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cutlist")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("CUTLIST")
	v.AutomaticEnv()

	var c Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return c, nil
		}
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("failed to parse config: %w", err)
	}
	return c, nil
}
