package freqresp

import (
	"fmt"

	"github.com/cwbudde/algo-nichols/control/nichols"
)

const (
	// DefaultJumpTolerance is the phase step in degrees above which
	// consecutive samples are treated as wrapped.
	DefaultJumpTolerance = nichols.JumpToleranceDeg

	// GaugeWindow is the width in degrees of the band the first unwrapped
	// phase sample is moved into: (-GaugeWindow, 0].
	GaugeWindow = nichols.PeriodDeg
)

// UnwrapConfig controls [Value.Unwrap].
type UnwrapConfig struct {
	JumpTolerance float64
}

// UnwrapOption mutates an UnwrapConfig.
type UnwrapOption func(*UnwrapConfig)

// DefaultUnwrapConfig returns the 180 degree jump tolerance.
func DefaultUnwrapConfig() UnwrapConfig {
	return UnwrapConfig{JumpTolerance: DefaultJumpTolerance}
}

// WithJumpTolerance sets the jump tolerance in degrees. Values outside
// (0, 360] are ignored.
func WithJumpTolerance(deg float64) UnwrapOption {
	return func(cfg *UnwrapConfig) {
		if deg > 0 && deg <= GaugeWindow {
			cfg.JumpTolerance = deg
		}
	}
}

// ApplyUnwrapOptions applies zero or more options to the default config.
func ApplyUnwrapOptions(opts ...UnwrapOption) UnwrapConfig {
	cfg := DefaultUnwrapConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Unwrap returns a copy of v with a continuous, canonical phase channel.
//
// Phase steps larger than the jump tolerance are removed by adding whole
// turns, then the whole channel is shifted by a multiple of 360 degrees so
// that the first sample lies in (-360, 0]. Two responses that differ only by
// whole turns therefore unwrap to the same representation. Magnitude and
// the grid are unchanged.
func (v *Value) Unwrap(opts ...UnwrapOption) (*Value, error) {
	if len(v.freq) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}

	cfg := ApplyUnwrapOptions(opts...)
	phase, mag := nichols.Split(v.resp)

	phase = nichols.Unwrap(phase, nichols.PeriodDeg, cfg.JumpTolerance)
	shift := nichols.GaugeShift(phase[0], GaugeWindow)
	for i := range phase {
		phase[i] -= shift
	}

	return newValue(v.Frequency(), nichols.Join(phase, mag)), nil
}
