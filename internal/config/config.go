// SPDX-License-Identifier: MIT

// Package config loads pitctl runtime settings from viper and builds the
// process logger. Values come from built-in defaults, an optional
// .pitctl.toml, a .env file, PITCTL_* environment variables and CLI flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "PITCTL"

// ErrInvalid reports a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// MeshConfig holds the preview mesh resolution.
type MeshConfig struct {
	RadialSegments  int `mapstructure:"radial_segments"`
	AngularSegments int `mapstructure:"angular_segments"` // 0 selects the sector-aligned default
}

// BatchConfig sizes the batch validation pool.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr      string  `mapstructure:"addr"`
	RateLimit float64 `mapstructure:"rate_limit"` // requests per second per client
	RateBurst int     `mapstructure:"rate_burst"`
}

// Config holds all runtime configuration for pitctl.
type Config struct {
	LogLevel  string      `mapstructure:"log_level"`
	LogFormat string      `mapstructure:"log_format"`
	StorePath string      `mapstructure:"store_path"`
	Mesh      MeshConfig  `mapstructure:"mesh"`
	Batch     BatchConfig `mapstructure:"batch"`
	Serve     ServeConfig `mapstructure:"serve"`
}

// Init points viper at cfgFile, or at .pitctl.toml in the working and home
// directories when cfgFile is empty, and enables PITCTL_* overrides. A .env
// file in the working directory is loaded into the environment first.
// A missing config or .env file is not an error.
func Init(cfgFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: .env: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pitctl")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("config: read: %w", err)
		}
	}

	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("store_path", "pitctl.db")
	viper.SetDefault("mesh.radial_segments", 1)
	viper.SetDefault("mesh.angular_segments", 0)
	viper.SetDefault("batch.workers", runtime.NumCPU())
	viper.SetDefault("serve.addr", "127.0.0.1:8080")
	viper.SetDefault("serve.rate_limit", 5.0)
	viper.SetDefault("serve.rate_burst", 10)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.check(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) check() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch {
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, c.LogFormat)
	case c.StorePath == "":
		return fmt.Errorf("%w: store_path is empty", ErrInvalid)
	case c.Mesh.RadialSegments < 1:
		return fmt.Errorf("%w: mesh.radial_segments %d < 1", ErrInvalid, c.Mesh.RadialSegments)
	case c.Mesh.AngularSegments < 0:
		return fmt.Errorf("%w: mesh.angular_segments %d < 0", ErrInvalid, c.Mesh.AngularSegments)
	case c.Batch.Workers < 1:
		return fmt.Errorf("%w: batch.workers %d < 1", ErrInvalid, c.Batch.Workers)
	case !(c.Serve.RateLimit > 0):
		return fmt.Errorf("%w: serve.rate_limit %g must be positive", ErrInvalid, c.Serve.RateLimit)
	case c.Serve.RateBurst < 1:
		return fmt.Errorf("%w: serve.rate_burst %d < 1", ErrInvalid, c.Serve.RateBurst)
	}

	return nil
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}

	return l, nil
}

// NewLogger builds a text or JSON slog logger writing to w at the configured
// level.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, cfg.LogFormat)
	}

	return slog.New(h), nil
}
