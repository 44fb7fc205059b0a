package palette

import (
	"testing"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

func TestParseSchema(t *testing.T) {
	tests := []struct {
		input string
		want  Schema
	}{
		{"palette", Palette},
		{"custom", Custom},
		{"hue", HueRotation},
		{"log", LogarithmicMapping},
		{"cubic", CubicPolynomial},
		{"linear", LinearGradient},

		// unknown names fall back to the palette
		{"", Palette},
		{"rainbow", Palette},
		{"Linear", Palette},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSchema(tt.input); got != tt.want {
				t.Errorf("ParseSchema(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSchemaStrict(t *testing.T) {
	if s, err := ParseSchemaStrict("hue"); err != nil || s != HueRotation {
		t.Errorf("ParseSchemaStrict(hue) = %v, %v", s, err)
	}
	_, err := ParseSchemaStrict("rainbow")
	if !errors.Is(err, errors.ErrCodeInvalidSchema) {
		t.Errorf("ParseSchemaStrict(rainbow) error = %v, want INVALID_SCHEMA", err)
	}
}

func TestSchemaRoundTrip(t *testing.T) {
	for _, s := range Schemas {
		if got := ParseSchema(s.String()); got != s {
			t.Errorf("ParseSchema(%q) = %v, want %v", s.String(), got, s)
		}
		if s.Description() == "" {
			t.Errorf("%s has no description", s)
		}
	}
	if len(Names()) != 6 {
		t.Errorf("Names() = %v, want 6 entries", Names())
	}
}

func TestSchemaText(t *testing.T) {
	var s Schema
	if err := s.UnmarshalText([]byte("cubic")); err != nil {
		t.Fatal(err)
	}
	if s != CubicPolynomial {
		t.Errorf("UnmarshalText(cubic) = %v", s)
	}
	text, _ := s.MarshalText()
	if string(text) != "cubic" {
		t.Errorf("MarshalText() = %q", text)
	}
	if Schema(99).String() != "palette" {
		t.Errorf("unknown schema should report as palette, got %q", Schema(99).String())
	}
}
