package nichols

import "math"

// Unwrap returns a new phase slice with wrap discontinuities removed.
//
// Samples are scanned in order. Whenever the step between consecutive
// samples exceeds tolerance in magnitude, the smallest integer multiple of
// period that brings the step back into [-period/2, period/2] is added to
// that sample and every sample after it. The first sample is never moved.
func Unwrap(phase []float64, period, tolerance float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	half := period / 2
	offset := 0.0

	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		if math.Abs(d) > tolerance {
			dmod := math.Mod(d+half, period)
			if dmod < 0 {
				dmod += period
			}
			dmod -= half
			if dmod == -half && d > 0 {
				dmod = half
			}
			offset += dmod - d
		}
		out[i] = phase[i] + offset
	}

	return out
}

// UnwrapRadians unwraps a phase trace in radians with a jump tolerance of pi.
func UnwrapRadians(phase []float64) []float64 {
	return Unwrap(phase, 2*math.Pi, math.Pi)
}

// GaugeShift returns the multiple of window that moves first into
// (-window, 0].
func GaugeShift(first, window float64) float64 {
	shift := math.Ceil(first/window) * window
	if first-shift <= -window {
		shift -= window
	}
	if first-shift > 0 {
		shift += window
	}

	return shift
}
