package palette

import (
	"math"
)

// RGB is one 8-bit-per-channel color.
type RGB [3]uint8

// Black is the color of points inside the set.
var Black = RGB{0, 0, 0}

var table = [16]RGB{
	{66, 30, 15},
	{25, 7, 26},
	{9, 1, 47},
	{4, 4, 73},
	{0, 7, 100},
	{12, 44, 138},
	{24, 82, 177},
	{57, 125, 209},
	{134, 181, 229},
	{211, 236, 248},
	{241, 233, 191},
	{248, 201, 95},
	{255, 170, 0},
	{204, 128, 0},
	{153, 87, 0},
	{106, 52, 3},
}

// Color maps an escape-time result to a color.
//
// If escaped is false the point is in the set and the result is Black for
// every schema. Otherwise count is the 0-based escape iteration and limit the
// iteration cap it was computed under.
func Color(count int, escaped bool, limit int, s Schema) RGB {
	if !escaped {
		return Black
	}

	t := float32(count) / float32(limit)
	switch s {
	case Custom:
		return CustomColor(t)
	case CubicPolynomial:
		return Cubic(t)
	case HueRotation:
		return Hue(t)
	case LinearGradient:
		return Linear(t)
	case LogarithmicMapping:
		return Logarithmic(count, limit)
	default:
		return PaletteColor(count)
	}
}

// Linear is the LinearGradient transform of t in [0, 1].
func Linear(t float32) RGB {
	return RGB{
		toByte(255 * t),
		toByte(255 * (1 - t)),
		toByte(255 * t * (1 - t)),
	}
}

// Cubic is the CubicPolynomial transform of t in [0, 1].
func Cubic(t float32) RGB {
	return RGB{
		toByte(9 * (1 - t) * t * t * t * 255),
		toByte(15 * (1 - t) * (1 - t) * t * t * 255),
		toByte(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255),
	}
}

// Hue is the HueRotation transform of t in [0, 1]: an HSV color with hue
// 360t degrees and full saturation and value.
func Hue(t float32) RGB {
	const saturation, value = float32(1), float32(1)
	hue := 360 * t

	c := value * saturation
	x := c * (1 - abs32(mod32(hue/60, 2)-1))
	m := value - c

	var r, g, b float32
	switch h := toU32(hue); {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		toByte((r + m) * 255),
		toByte((g + m) * 255),
		toByte((b + m) * 255),
	}
}

// Logarithmic is the LogarithmicMapping transform: the Cubic ramp applied to
// ln(count)/ln(limit). count is clamped to at least 1 since ln(0) is undefined.
func Logarithmic(count, limit int) RGB {
	if count < 1 {
		count = 1
	}
	logCount := float32(math.Log(float64(float32(count))))
	logLimit := float32(math.Log(float64(float32(limit))))
	return Cubic(logCount / logLimit)
}

// CustomColor is the Custom transform of t in [0, 1].
func CustomColor(t float32) RGB {
	return RGB{
		toByte(255 * t),
		toByte(255 * (1 - t)),
		toByte(255 * (0.5 + t*0.5)),
	}
}

// PaletteColor is the Palette transform: a 16-entry table indexed by
// count mod 16.
func PaletteColor(count int) RGB {
	i := count % len(table)
	if i < 0 {
		i += len(table)
	}
	return table[i]
}

// toByte truncates v toward zero and saturates it into [0, 255]; NaN maps to 0.
func toByte(v float32) uint8 {
	switch {
	case v != v || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

func toU32(v float32) uint32 {
	switch {
	case v != v || v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// mod32 is the truncated remainder of a/b, exact in float32.
func mod32(a, b float32) float32 {
	return float32(math.Mod(float64(a), float64(b)))
}
