package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateBounds checks that an image is at least one pixel in each direction.
func ValidateBounds(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidBounds, "image bounds must be positive, got %dx%d", width, height)
	}
	return nil
}

// ValidatePlane checks the viewport corners of a render.
//
// Rules:
//   - All components must be finite
//   - upperLeft must lie strictly left of lowerRight (real axis)
//   - upperLeft must lie strictly above lowerRight (imaginary axis)
func ValidatePlane(upperLeft, lowerRight complex128) error {
	for _, v := range []float64{real(upperLeft), imag(upperLeft), real(lowerRight), imag(lowerRight)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidPlane, "plane corners must be finite")
		}
	}
	if real(upperLeft) >= real(lowerRight) {
		return New(ErrCodeInvalidPlane, "upper-left real part %g must be less than lower-right real part %g",
			real(upperLeft), real(lowerRight))
	}
	if imag(upperLeft) <= imag(lowerRight) {
		return New(ErrCodeInvalidPlane, "upper-left imaginary part %g must be greater than lower-right imaginary part %g",
			imag(upperLeft), imag(lowerRight))
	}
	return nil
}

// ValidatePositive checks that a named integer parameter is strictly positive.
func ValidatePositive(name string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %d", name, v)
	}
	return nil
}

// ValidateOutputPath validates an output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
