// Package palette turns escape-time iteration counts into RGB colors.
//
// Six color schemas are available. Four of them work on the normalized escape
// fraction t = count/limit; [LogarithmicMapping] and [Palette] work on the raw
// iteration count. Points that never escape are always black.
//
// All arithmetic is carried out in float32 and every channel is converted to a
// byte by saturating truncation, so the output of a schema is reproducible
// bit for bit.
package palette

import (
	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

// Schema selects a color transform.
type Schema uint8

// Supported color schemas.
const (
	Palette Schema = iota
	Custom
	HueRotation
	LogarithmicMapping
	CubicPolynomial
	LinearGradient
)

// Schemas lists every schema in display order.
var Schemas = []Schema{Palette, Custom, HueRotation, LogarithmicMapping, CubicPolynomial, LinearGradient}

var schemaNames = map[Schema]string{
	Palette:            "palette",
	Custom:             "custom",
	HueRotation:        "hue",
	LogarithmicMapping: "log",
	CubicPolynomial:    "cubic",
	LinearGradient:     "linear",
}

var schemaDescriptions = map[Schema]string{
	Palette:            "16-color lookup table cycling every 16 iterations",
	Custom:             "red/green ramp over a blue base",
	HueRotation:        "full hue wheel, saturation and value fixed at 1",
	LogarithmicMapping: "cubic polynomial on a log-scaled iteration count",
	CubicPolynomial:    "smooth cubic polynomial ramp",
	LinearGradient:     "linear red/green gradient with blue midtones",
}

// String returns the short name of s as accepted by ParseSchema.
// Unknown values report as "palette", matching how they are colored.
func (s Schema) String() string {
	if name, ok := schemaNames[s]; ok {
		return name
	}
	return schemaNames[Palette]
}

// Description returns a one-line human description of s.
func (s Schema) Description() string {
	if d, ok := schemaDescriptions[s]; ok {
		return d
	}
	return schemaDescriptions[Palette]
}

// ParseSchema maps a short name to a Schema.
//
// Unrecognized names silently select Palette. This keeps compatibility with
// existing command lines; use ParseSchemaStrict to reject unknown names.
func ParseSchema(name string) Schema {
	s, err := ParseSchemaStrict(name)
	if err != nil {
		return Palette
	}
	return s
}

// ParseSchemaStrict is like ParseSchema but returns an INVALID_SCHEMA error
// for unrecognized names.
func ParseSchemaStrict(name string) (Schema, error) {
	for _, s := range Schemas {
		if schemaNames[s] == name {
			return s, nil
		}
	}
	return Palette, errors.New(errors.ErrCodeInvalidSchema, "unknown color schema %q", name)
}

// Names returns the short names of all schemas in display order.
func Names() []string {
	names := make([]string, len(Schemas))
	for i, s := range Schemas {
		names[i] = s.String()
	}
	return names
}

// MarshalText implements encoding.TextMarshaler.
func (s Schema) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseSchema semantics.
func (s *Schema) UnmarshalText(text []byte) error {
	*s = ParseSchema(string(text))
	return nil
}
