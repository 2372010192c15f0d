package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// Infinities of the same sign compare equal.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 || math.IsInf(largest, 0) {
		return false
	}

	return diff/largest <= eps
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
// -Inf maps to exactly zero.
func DBToLinear(db float64) float64 {
	if math.IsInf(db, -1) {
		return 0
	}

	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
