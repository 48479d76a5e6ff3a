// Package config loads geobridge settings from defaults, an optional .env
// file, a YAML config file, GEOBRIDGE_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/btraven00/geobridge/internal/bridge"
	"github.com/btraven00/geobridge/internal/extractor"
	"github.com/btraven00/geobridge/internal/resolver"
)

// EnvPrefix namespaces environment overrides, e.g. GEOBRIDGE_TIMEOUT=5s.
const EnvPrefix = "GEOBRIDGE"

// Keys shared by viper, the config file and flag bindings.
const (
	KeyTimeout        = "timeout"
	KeyUserAgent      = "user_agent"
	KeyShortLinkHosts = "short_link_hosts"
	KeyMaxBodyBytes   = "max_body_bytes"
	KeyOutput         = "output"
	KeyColor          = "color"
	KeyWorkers        = "workers"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Timeout        time.Duration `mapstructure:"timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
	ShortLinkHosts []string      `mapstructure:"short_link_hosts"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	Output         string        `mapstructure:"output"`
	Color          string        `mapstructure:"color"`
	Workers        int           `mapstructure:"workers"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTimeout, resolver.DefaultTimeout)
	v.SetDefault(KeyUserAgent, resolver.DefaultUserAgent)
	v.SetDefault(KeyShortLinkHosts, slices.Clone(extractor.DefaultShortLinkHosts))
	v.SetDefault(KeyMaxBodyBytes, resolver.DefaultMaxBodyBytes)
	v.SetDefault(KeyOutput, bridge.FormatHuman)
	v.SetDefault(KeyColor, bridge.ColorAuto)
	v.SetDefault(KeyWorkers, bridge.DefaultWorkers)
}

// Configure sets defaults and enables GEOBRIDGE_* environment overrides.
func Configure(v *viper.Viper) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode configuration: %w", err)
	}

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be positive, got %d", ErrInvalid, c.MaxBodyBytes)
	}

	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}

	switch c.Output {
	case bridge.FormatHuman, bridge.FormatJSON, bridge.FormatCSV:
	default:
		return fmt.Errorf("%w: output must be human, json or csv, got %q", ErrInvalid, c.Output)
	}

	switch c.Color {
	case bridge.ColorAuto, bridge.ColorAlways, bridge.ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}

	return nil
}

// LoadDotEnv loads KEY=value pairs from the given files (".env" when none)
// into the process environment without overriding variables already set.
// Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("load %s: %w", p, err)
		}
	}

	return nil
}
