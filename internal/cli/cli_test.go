package cli

import (
	"io"
	"path/filepath"
	"testing"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"render", "schemas", "cache", "serve", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			if err != nil || cmd.Name() != name {
				t.Errorf("Find(%q) = %v, %v", name, cmd, err)
			}
		})
	}
}

func TestRootCommandLoadsConfig(t *testing.T) {
	path := writeConfig(t, `schema = "linear"`)
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", path, "schemas", "--plain"})
	root.SetOut(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if c.Config.Schema != "linear" {
		t.Errorf("Config.Schema = %q, want linear", c.Config.Schema)
	}
}

func TestRootCommandBadConfig(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "schemas"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("Execute() with a missing --config file should fail")
	}
}
