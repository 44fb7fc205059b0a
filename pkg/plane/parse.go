package plane

import (
	"strconv"
	"strings"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

// parsePair splits s at the first sep and parses both halves with parse.
// It reports false if sep is missing or either half fails to parse.
func parsePair[T any](s string, sep string, parse func(string) (T, error)) (T, T, bool) {
	var zero T
	l, r, ok := strings.Cut(s, sep)
	if !ok {
		return zero, zero, false
	}
	a, err := parse(l)
	if err != nil {
		return zero, zero, false
	}
	b, err := parse(r)
	if err != nil {
		return zero, zero, false
	}
	return a, b, true
}

func parseInt(s string) (int, error) { return strconv.Atoi(s) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// ParseBounds parses an image size written as "WIDTHxHEIGHT", e.g. "1000x750".
func ParseBounds(s string) (Bounds, error) {
	w, h, ok := parsePair(s, "x", parseInt)
	if !ok {
		return Bounds{}, errors.New(errors.ErrCodeInvalidBounds, "image size %q must look like 1000x750", s)
	}
	b := Bounds{Width: w, Height: h}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// ParsePoint parses a complex number written as "RE,IM", e.g. "-1.20,0.35".
func ParsePoint(s string) (complex128, error) {
	re, im, ok := parsePair(s, ",", parseFloat)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidPlane, "point %q must look like -1.20,0.35", s)
	}
	return complex(re, im), nil
}

// ParseRect parses the upper-left and lower-right corners of a viewport and
// validates their orientation.
func ParseRect(upperLeft, lowerRight string) (Rect, error) {
	ul, err := ParsePoint(upperLeft)
	if err != nil {
		return Rect{}, err
	}
	lr, err := ParsePoint(lowerRight)
	if err != nil {
		return Rect{}, err
	}
	r := Rect{UpperLeft: ul, LowerRight: lr}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}
