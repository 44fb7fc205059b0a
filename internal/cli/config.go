package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/cache"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/pipeline"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/sink"
)

// Config holds user defaults read from config.toml. Command-line flags
// override every value here.
//
//	schema = "hue"
//	limit = 1000
//	formats = ["png", "tiff"]
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
type Config struct {
	Schema      string       `toml:"schema"`
	Limit       int          `toml:"limit"`
	RowsPerBand int          `toml:"rows_per_band"`
	Formats     []string     `toml:"formats"`
	Cache       CacheConfig  `toml:"cache"`
	Server      ServerConfig `toml:"server"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"` // file, redis or none
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// ServerConfig configures "mandelplot serve".
type ServerConfig struct {
	Addr      string `toml:"addr"`
	MaxPixels int    `toml:"max_pixels"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Schema:  palette.Palette.String(),
		Limit:   pipeline.DefaultLimit,
		Formats: []string{pipeline.DefaultFormat},
		Cache:   CacheConfig{Backend: cache.BackendFile},
		Server:  ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig reads path, or the default config file when path is empty,
// on top of DefaultConfig. A missing default file is not an error; a
// missing explicit path is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late, mid-command.
func (c Config) Validate() error {
	if _, err := palette.ParseSchemaStrict(c.Schema); err != nil {
		return err
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if c.RowsPerBand < 0 {
		return fmt.Errorf("rows_per_band must not be negative, got %d", c.RowsPerBand)
	}
	if c.Server.MaxPixels < 0 {
		return fmt.Errorf("server.max_pixels must not be negative, got %d", c.Server.MaxPixels)
	}
	if err := sink.ValidateFormats(c.Formats); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", cache.BackendFile, cache.BackendRedis, cache.BackendNone:
	default:
		return fmt.Errorf("cache.backend must be one of: file, redis, none (got %q)", c.Cache.Backend)
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisURL == "" {
		return fmt.Errorf("cache.redis_url is required for the redis backend")
	}
	return nil
}
