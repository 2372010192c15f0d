package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicComplex generates n complex samples with a fixed seed. Every
// magnitude lies in [minMag, minMag+spread) so none is zero.
func DeterministicComplex(seed int64, minMag, spread float64, n int) []complex128 {
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		mag := minMag + rng.Float64()*spread
		phase := (rng.Float64()*2 - 1) * math.Pi
		out[i] = cmplx.Rect(mag, phase)
	}
	return out
}

// FirstOrderLag returns H(jw) = 1/(1 + jw*tau) at each frequency.
func FirstOrderLag(tau float64, freq []float64) []complex128 {
	out := make([]complex128, len(freq))
	for i, w := range freq {
		out[i] = 1 / complex(1, w*tau)
	}
	return out
}

// LinearGrid returns n evenly spaced values from lo to hi inclusive.
func LinearGrid(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
