package nichols

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-nichols/control/core"
)

const (
	// JumpToleranceDeg is the phase step above which consecutive samples are
	// considered wrapped.
	JumpToleranceDeg = 180.0

	// PeriodDeg is the phase period in degrees.
	PeriodDeg = 360.0
)

// Option configures [ToNichols].
type Option func(*config)

type config struct {
	unwrap    bool
	tolerance float64
}

// WithUnwrap requests continuous phase across the whole vector instead of
// per-sample principal values.
func WithUnwrap() Option {
	return func(cfg *config) {
		cfg.unwrap = true
	}
}

// WithJumpTolerance sets the unwrap jump threshold in degrees. Values
// outside (0, 360] are ignored.
func WithJumpTolerance(deg float64) Option {
	return func(cfg *config) {
		if deg > 0 && deg <= PeriodDeg {
			cfg.tolerance = deg
		}
	}
}

// Pack builds a Nichols sample from phase (degrees) and magnitude (dB).
func Pack(phaseDeg, magDB float64) complex128 {
	return complex(phaseDeg, magDB)
}

// PhaseDeg returns the phase channel of a Nichols sample.
func PhaseDeg(n complex128) float64 { return real(n) }

// MagDB returns the magnitude channel of a Nichols sample.
func MagDB(n complex128) float64 { return imag(n) }

// ToNichols converts complex samples to Nichols form.
//
// Without options the phase of each sample is its principal value in
// (-180, 180] degrees. With [WithUnwrap] the phase is made continuous across
// the vector before packing.
func ToNichols(z []complex128, opts ...Option) []complex128 {
	if len(z) == 0 {
		return nil
	}

	cfg := config{tolerance: JumpToleranceDeg}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	re := make([]float64, len(z))
	im := make([]float64, len(z))
	for i, c := range z {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, len(z))
	vecmath.Magnitude(mag, re, im)

	phase := make([]float64, len(z))
	for i := range z {
		phase[i] = principalDeg(math.Atan2(im[i], re[i]))
	}

	if cfg.unwrap {
		phase = Unwrap(phase, PeriodDeg, cfg.tolerance)
	}

	out := make([]complex128, len(z))
	for i := range out {
		out[i] = complex(phase[i], core.LinearToDB(mag[i]))
	}

	return out
}

// ToComplex is the inverse of the option-free [ToNichols]:
// z = 10^(magDB/20) * exp(j*phaseDeg*pi/180).
func ToComplex(n []complex128) []complex128 {
	if len(n) == 0 {
		return nil
	}

	out := make([]complex128, len(n))
	for i, s := range n {
		out[i] = cmplx.Rect(core.DBToLinear(imag(s)), core.DegToRad(real(s)))
	}

	return out
}

// Split separates Nichols samples into phase (degrees) and magnitude (dB)
// channels.
func Split(n []complex128) (phaseDeg, magDB []float64) {
	phaseDeg = make([]float64, len(n))
	magDB = make([]float64, len(n))
	for i, s := range n {
		phaseDeg[i] = real(s)
		magDB[i] = imag(s)
	}

	return phaseDeg, magDB
}

// Join packs equal-length phase and magnitude channels. It panics if the
// lengths differ.
func Join(phaseDeg, magDB []float64) []complex128 {
	if len(phaseDeg) != len(magDB) {
		panic("nichols: channel length mismatch")
	}

	out := make([]complex128, len(phaseDeg))
	for i := range out {
		out[i] = complex(phaseDeg[i], magDB[i])
	}

	return out
}

// principalDeg maps an atan2 result to degrees in (-180, 180].
func principalDeg(rad float64) float64 {
	deg := core.RadToDeg(rad)
	if deg <= -180 {
		deg += 360
	}

	return deg
}
