package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/percolation"
)

// Config holds all runtime configuration for a percolation-stats run.
// Values are populated from .percolation.yaml, PERCOLATION_* env vars, and CLI flags.
type Config struct {
	Size     int    `mapstructure:"size"`
	Trials   int    `mapstructure:"trials"`
	Seed     int64  `mapstructure:"seed"`
	Workers  int    `mapstructure:"workers"`
	Verify   bool   `mapstructure:"verify"`
	Report   string `mapstructure:"report"`
	Progress bool   `mapstructure:"progress"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("size", 200)
	viper.SetDefault("trials", 100)
	viper.SetDefault("seed", 0)
	viper.SetDefault("workers", 1)
	viper.SetDefault("verify", false)
	viper.SetDefault("report", "")
	viper.SetDefault("progress", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the grid size and trial count are positive.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: grid size %d must be positive", percolation.ErrInvalidArgument, c.Size)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trial count %d must be positive", percolation.ErrInvalidArgument, c.Trials)
	}
	return nil
}
