// Package config loads runtime settings for the fxarb binary with viper.
//
// Sources, lowest to highest priority: built-in defaults, config.yaml found
// in ./configs or the working directory (or an explicit file), then
// FXARB_-prefixed environment variables (FXARB_SERVER_PORT, ...).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "FXARB"

// Config is the root configuration.
type Config struct {
	Environment string         `mapstructure:"environment"`
	Log         LogConfig      `mapstructure:"log"`
	Server      ServerConfig   `mapstructure:"server"`
	Detector    DetectorConfig `mapstructure:"detector"`
	Snapshot    SnapshotConfig `mapstructure:"snapshot"`
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig controls the HTTP service.
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	MaxBodyBytes    int64  `mapstructure:"max_body_bytes"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// DetectorConfig controls arbitrage detection.
type DetectorConfig struct {
	MaxCurrencies int  `mapstructure:"max_currencies"`
	Deduplicate   bool `mapstructure:"deduplicate"`
	Source        int  `mapstructure:"source"`
}

// SnapshotConfig controls the CLI input and output.
type SnapshotConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the default search paths.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from path, or from the default search paths
// when path is empty. A missing default config file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("detector.max_currencies", 256)
	v.SetDefault("detector.deduplicate", false)
	v.SetDefault("detector.source", 0)
	v.SetDefault("snapshot.path", "")
	v.SetDefault("snapshot.format", "text")
}

// Validate rejects settings the binary cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if c.Detector.Source < 0 {
		return fmt.Errorf("config: detector.source must be non-negative, got %d", c.Detector.Source)
	}
	switch c.Snapshot.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: snapshot.format must be text or json, got %q", c.Snapshot.Format)
	}

	return nil
}

// ShutdownTimeout returns the parsed server.shutdown_timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}

	return d
}
