// Package config loads the simulator's runtime configuration from an
// optional YAML file, GOLDFISH_* environment overrides, and built-in
// defaults, in that order of precedence (file beats defaults, environment
// beats both).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when neither file nor environment sets a value.
const (
	DefaultGames     = 100
	DefaultMaxTurns  = 20
	DefaultOpponents = 3
)

// Config is the full runtime configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig controls batch sizing and per-game knobs. Workers 0
// means one worker per CPU. Seed 0 means derive a seed from the clock.
type SimulationConfig struct {
	Games      int   `mapstructure:"games"`
	Workers    int   `mapstructure:"workers"`
	MaxTurns   int   `mapstructure:"max_turns"`
	Opponents  int   `mapstructure:"opponents"`
	EnhancedAI bool  `mapstructure:"enhanced_ai"`
	Seed       int64 `mapstructure:"seed"`
	Trace      bool  `mapstructure:"trace"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. An empty path skips the file and uses defaults
// plus environment only; a non-empty path must be readable.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("simulation.games", DefaultGames)
	v.SetDefault("simulation.workers", 0)
	v.SetDefault("simulation.max_turns", DefaultMaxTurns)
	v.SetDefault("simulation.opponents", DefaultOpponents)
	v.SetDefault("simulation.enhanced_ai", true)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.trace", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("GOLDFISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulator cannot run with.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Games < 1 {
		return fmt.Errorf("simulation.games must be at least 1, got %d", s.Games)
	}
	if s.Workers < 0 {
		return fmt.Errorf("simulation.workers must not be negative, got %d", s.Workers)
	}
	if s.MaxTurns < 1 {
		return fmt.Errorf("simulation.max_turns must be at least 1, got %d", s.MaxTurns)
	}
	if s.Opponents < 1 {
		return fmt.Errorf("simulation.opponents must be at least 1, got %d", s.Opponents)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q is not json or console", c.Logging.Format)
	}
	return nil
}
