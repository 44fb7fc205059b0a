package cli

import (
	"testing"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

func TestDisplayAddr(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":8080", "localhost:8080"},
		{"0.0.0.0:9000", "localhost:9000"},
		{"[::]:9000", "localhost:9000"},
		{"127.0.0.1:8080", "127.0.0.1:8080"},
		{"render.local:80", "render.local:80"},
	}
	for _, tt := range tests {
		if got := displayAddr(tt.addr); got != tt.want {
			t.Errorf("displayAddr(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestServeCommandRejectsBadAddr(t *testing.T) {
	c := newTestCLI()
	cmd := c.serveCommand()
	cmd.SetArgs([]string{"--addr", "8080"})
	err := cmd.Execute()
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute() error = %v, want INVALID_INPUT", err)
	}
}
