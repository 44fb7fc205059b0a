package sink

import (
	"bytes"
	"image/png"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

// 2x2 image: red, green / blue, white
var testPixels = []byte{
	255, 0, 0, 0, 255, 0,
	0, 0, 255, 255, 255, 255,
}

func TestToImage(t *testing.T) {
	img, err := ToImage(testPixels, 2, 2)
	if err != nil {
		t.Fatalf("ToImage() error: %v", err)
	}
	if c := img.RGBAAt(0, 1); c.B != 255 || c.R != 0 || c.A != 255 {
		t.Errorf("pixel (0,1) = %v, want opaque blue", c)
	}
	if c := img.RGBAAt(1, 1); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("pixel (1,1) = %v, want white", c)
	}
}

func TestToImageLengthMismatch(t *testing.T) {
	if _, err := ToImage(testPixels[:9], 2, 2); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ToImage() error = %v, want INVALID_INPUT", err)
	}
	if _, err := ToImage(nil, 0, 2); !errors.Is(err, errors.ErrCodeInvalidBounds) {
		t.Errorf("ToImage() error = %v, want INVALID_BOUNDS", err)
	}
}

func TestRenderPNGRoundTrip(t *testing.T) {
	data, err := RenderPNG(testPixels, 2, 2)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	r, g, b, _ := img.At(1, 0).RGBA()
	if r != 0 || g != 0xffff || b != 0 {
		t.Errorf("pixel (1,0) = %d,%d,%d, want green", r, g, b)
	}
}

func TestRenderTIFFDecodes(t *testing.T) {
	data, err := RenderTIFF(testPixels, 2, 2)
	if err != nil {
		t.Fatalf("RenderTIFF() error: %v", err)
	}
	img, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("tiff.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 2x2", b)
	}
	r, _, _, _ := img.At(0, 0).RGBA()
	if r != 0xffff {
		t.Errorf("pixel (0,0) red = %d, want 0xffff", r)
	}
}

func TestRenderPPM(t *testing.T) {
	data, err := RenderPPM(testPixels, 2, 2)
	if err != nil {
		t.Fatalf("RenderPPM() error: %v", err)
	}
	header := "P6 2 2 255\n"
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Errorf("header = %q, want %q", data[:len(header)], header)
	}
	if !bytes.Equal(data[len(header):], testPixels) {
		t.Error("PPM body should be the raw pixel buffer")
	}
}

func TestEncode(t *testing.T) {
	for _, f := range Formats() {
		if _, err := Encode(f, testPixels, 2, 2); err != nil {
			t.Errorf("Encode(%s) error: %v", f, err)
		}
	}
	if _, err := Encode("gif", testPixels, 2, 2); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Encode(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"single", []string{"png"}, false},
		{"all", []string{"png", "tiff", "ppm"}, false},
		{"empty", nil, false},
		{"unknown", []string{"png", "svg"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateFormats(tt.formats); (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestFormatsSorted(t *testing.T) {
	got := Formats()
	want := []string{"png", "ppm", "tiff"}
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
