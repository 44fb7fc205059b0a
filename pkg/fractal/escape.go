package fractal

// DefaultLimit is the iteration cap used when none is configured.
const DefaultLimit = 255

// escapeRadiusSq is the squared escape radius for z ← z² + c.
const escapeRadiusSq = 4.0

// EscapeTime reports the 0-based iteration at which the orbit of c under
// z ← z² + c leaves the escape radius. escaped is false if the orbit stays
// bounded for limit iterations.
func EscapeTime(c complex128, limit int) (n int, escaped bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > escapeRadiusSq {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}
