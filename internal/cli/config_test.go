package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/cache"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Schema != "palette" || cfg.Limit != 255 {
		t.Errorf("LoadConfig() = %+v, want built-in defaults", cfg)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() with a missing explicit path should fail")
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if err := os.MkdirAll(filepath.Join(home, appName), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, appName, "config.toml"), []byte(`schema = "cubic"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Schema != "cubic" {
		t.Errorf("Schema = %q, want cubic", cfg.Schema)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
schema = "hue"
limit = 1000
formats = ["png", "tiff"]

[cache]
backend = "none"

[server]
addr = "127.0.0.1:9000"
max_pixels = 1000000
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Schema != "hue" {
		t.Errorf("Schema = %q, want hue", cfg.Schema)
	}
	if cfg.Limit != 1000 {
		t.Errorf("Limit = %d, want 1000", cfg.Limit)
	}
	if len(cfg.Formats) != 2 || cfg.Formats[1] != "tiff" {
		t.Errorf("Formats = %v, want [png tiff]", cfg.Formats)
	}
	if cfg.Cache.Backend != cache.BackendNone {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.MaxPixels != 1000000 {
		t.Errorf("Server = %+v", cfg.Server)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", `colour = "hue"`},
		{"unknown schema", `schema = "plasma"`},
		{"negative limit", `limit = -1`},
		{"unknown format", `formats = ["gif"]`},
		{"unknown backend", "[cache]\nbackend = \"memcached\""},
		{"redis without url", "[cache]\nbackend = \"redis\""},
		{"negative max pixels", "[server]\nmax_pixels = -5"},
		{"malformed", `schema = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Errorf("LoadConfig(%q) should fail", tt.body)
			}
		})
	}
}
