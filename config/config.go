// Package config loads routeplan settings: built-in defaults, then an
// optional TOML file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config aggregates application configuration values.
type Config struct {
	Input   InputConfig   `toml:"input"`
	Output  OutputConfig  `toml:"output"`
	Store   StoreConfig   `toml:"store"`
	Batch   BatchConfig   `toml:"batch"`
	HTTP    HTTPConfig    `toml:"http"`
	Search  SearchConfig  `toml:"search"`
	Logging LoggingConfig `toml:"logging"`
}

// InputConfig points at the route file to read.
type InputConfig struct {
	Path string `toml:"path"`
}

// OutputConfig points at the file results are written to. "-" is stdout.
type OutputConfig struct {
	Path string `toml:"path"`
}

// StoreConfig configures the SQLite network snapshot. Empty Path disables it.
type StoreConfig struct {
	Path string `toml:"path"`
}

// BatchConfig controls batch request resolution.
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// HTTPConfig governs the optional HTTP facade.
type HTTPConfig struct {
	Addr string `toml:"addr"`
}

// SearchConfig bounds the per-criterion searches. Zero disables a limit.
type SearchConfig struct {
	// MaxDistance caps the explored path weight in every layer.
	MaxDistance int64 `toml:"max_distance"`
	// ClosedRoadWeight closes roads weighing at least this much in a layer.
	ClosedRoadWeight int64 `toml:"closed_road_weight"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text|json
}

const (
	defaultInput         = "input.txt"
	defaultOutput        = "output.txt"
	defaultWorkers       = 4
	defaultHTTPAddr      = "127.0.0.1:8080"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:   InputConfig{Path: defaultInput},
		Output:  OutputConfig{Path: defaultOutput},
		Batch:   BatchConfig{Workers: defaultWorkers},
		HTTP:    HTTPConfig{Addr: defaultHTTPAddr},
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty), and environment variables, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Input.Path = valueOrDefault("ROUTEPLAN_INPUT", c.Input.Path)
	c.Output.Path = valueOrDefault("ROUTEPLAN_OUTPUT", c.Output.Path)
	c.Store.Path = valueOrDefault("ROUTEPLAN_DB", c.Store.Path)
	c.HTTP.Addr = valueOrDefault("ROUTEPLAN_HTTP_ADDR", c.HTTP.Addr)
	c.Logging.Level = valueOrDefault("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = valueOrDefault("LOG_FORMAT", c.Logging.Format)

	if v := os.Getenv("ROUTEPLAN_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ROUTEPLAN_WORKERS value %q: %w", v, err)
		}
		c.Batch.Workers = n
	}

	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0, got %d", ErrInvalid, c.Batch.Workers)
	}
	if c.Search.MaxDistance < 0 {
		return fmt.Errorf("%w: search.max_distance must be >= 0, got %d", ErrInvalid, c.Search.MaxDistance)
	}
	if c.Search.ClosedRoadWeight < 0 {
		return fmt.Errorf("%w: search.closed_road_weight must be >= 0, got %d", ErrInvalid, c.Search.ClosedRoadWeight)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
