package geom

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is a default absolute tolerance for methods that take a
// tolerance argument. It is suitable for geometry expressed in typical
// document units.
const DefaultTolerance = 1e-6

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// Degrees converts an angle in radians to degrees.
func Degrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// SinDegrees returns the sine of an angle expressed in degrees.
func SinDegrees(degrees float64) float64 {
	return math.Sin(Radians(degrees))
}

// CosDegrees returns the cosine of an angle expressed in degrees.
func CosDegrees(degrees float64) float64 {
	return math.Cos(Radians(degrees))
}

// TanDegrees returns the tangent of an angle expressed in degrees.
func TanDegrees(degrees float64) float64 {
	return math.Tan(Radians(degrees))
}

// Atan2Degrees returns atan2(y, x) expressed in degrees.
func Atan2Degrees(y, x float64) float64 {
	return Degrees(math.Atan2(y, x))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

// Mod computes the floored modulo of x by m. Unlike math.Mod, the result
// has the sign of the modulus, so Mod(-30, 360) is 330. Used for
// normalizing angles.
func Mod(x, m float64) float64 {
	return x - m*math.Floor(x/m)
}

// EqualWithinTolerance reports whether a and b are within the absolute
// tolerance tol of each other. Use this mode when the expected magnitude
// of the quantities is known.
func EqualWithinTolerance(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// EqualWithinEpsilon reports whether a and b are within a relative
// epsilon of each other, i.e. |a−b| ≤ max(|a|,|b|)·eps. Use this mode
// when the quantities' magnitudes are unbounded.
func EqualWithinEpsilon(a, b, eps float64) bool {
	return scalar.EqualWithinRel(a, b, eps)
}

// FormatNumber formats x with at most the given number of fractional
// digits, trimming trailing zeros. Intended for presenting coordinates to
// humans, not for round-tripping values.
func FormatNumber(x float64, digits int) string {
	x = scalar.Round(x, digits)
	if x == 0 {
		// Avoid "-0".
		x = 0
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
