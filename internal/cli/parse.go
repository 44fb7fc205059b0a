package cli

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/sink"
)

// extFormats maps file extensions to output formats.
var extFormats = map[string]string{
	".png":  sink.FormatPNG,
	".tif":  sink.FormatTIFF,
	".tiff": sink.FormatTIFF,
	".ppm":  sink.FormatPPM,
}

// parseFormats splits a comma-separated --format value, dropping blanks and
// repeats while keeping first-seen order.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	return formats
}

// formatFromPath returns the format implied by file's extension, or "".
func formatFromPath(file string) string {
	return extFormats[strings.ToLower(filepath.Ext(file))]
}

// outputPath names the file for one format: the schema is appended to the
// base name and the extension is swapped when it does not match format.
//
//	outputPath("mandel.png", palette.Palette, "png")  // mandel_palette.png
//	outputPath("mandel.png", palette.HueRotation, "ppm") // mandel_hue.ppm
func outputPath(file string, schema palette.Schema, format string) string {
	ext := filepath.Ext(file)
	base := strings.TrimSuffix(file, ext)
	if extFormats[strings.ToLower(ext)] != format {
		ext = "." + format
	}
	return base + "_" + schema.String() + ext
}
