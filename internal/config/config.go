package config

import (
	"os"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the tool reads
const EnvPrefix = "MDLT"

// Config represents the analyzer configuration
type Config struct {
	Verbose bool `mapstructure:"verbose"`  // debug logging to stderr
	NoColor bool `mapstructure:"no_color"` // plain diagnostics
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}
