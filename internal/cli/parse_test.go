package cli

import (
	"reflect"
	"testing"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "png,tiff,ppm", []string{"png", "tiff", "ppm"}},
		{"spaces and case", " PNG , tiff ", []string{"png", "tiff"}},
		{"blank entries", "png,,ppm,", []string{"png", "ppm"}},
		{"repeats collapse", "png,png", []string{"png"}},
		{"repeats keep first order", "tiff, PNG ,tiff,png", []string{"tiff", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"mandel.png":      "png",
		"out/mandel.PNG":  "png",
		"mandel.tif":      "tiff",
		"mandel.tiff":     "tiff",
		"mandel.ppm":      "ppm",
		"mandel.jpg":      "",
		"mandel":          "",
		"dir.v2/mandel":   "",
		"dir.v2/mand.ppm": "ppm",
	}
	for in, want := range tests {
		if got := formatFromPath(in); got != want {
			t.Errorf("formatFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		file   string
		schema palette.Schema
		format string
		want   string
	}{
		{"mandel.png", palette.Palette, "png", "mandel_palette.png"},
		{"mandel.png", palette.HueRotation, "png", "mandel_hue.png"},
		{"out/mandel.png", palette.LogarithmicMapping, "tiff", "out/mandel_log.tiff"},
		{"mandel.tif", palette.Custom, "tiff", "mandel_custom.tif"},
		{"mandel", palette.CubicPolynomial, "ppm", "mandel_cubic.ppm"},
		{"mandel.jpg", palette.LinearGradient, "png", "mandel_linear.png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := outputPath(tt.file, tt.schema, tt.format); got != tt.want {
				t.Errorf("outputPath(%q, %s, %s) = %q, want %q", tt.file, tt.schema, tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
