package freqresp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-nichols/control/core"
	"github.com/cwbudde/algo-nichols/control/nichols"
)

// Series cascades v with op.
//
// A *Value operand takes the [Value.SeriesValue] path; any other system
// takes the [Value.SeriesSystem] path. A nil operand fails with
// [ErrUnsupportedOperand]. Scalar gains use [Value.SeriesGain].
func (v *Value) Series(op ComplexResponder) (*Value, error) {
	switch o := op.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil operand", ErrUnsupportedOperand)
	case *Value:
		return v.SeriesValue(o)
	default:
		return v.SeriesSystem(o)
	}
}

// SeriesValue cascades two responses on the identical grid by adding their
// Nichols samples. The result is not renormalised.
func (v *Value) SeriesValue(o *Value) (*Value, error) {
	if len(v.freq) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}
	if o == nil || len(o.freq) == 0 {
		return nil, fmt.Errorf("%w: nil or empty response operand", ErrUnsupportedOperand)
	}
	if !v.sameGrid(o) {
		return nil, fmt.Errorf("%w: %d-point grid vs %d-point grid", ErrFrequencyMismatch, len(v.freq), len(o.freq))
	}

	return newValue(v.Frequency(), addNichols(v.resp, o.resp)), nil
}

// SeriesSystem evaluates sys on v's grid, converts the result to Nichols
// form with principal-value phase, and adds it to v. The result is not
// renormalised.
func (v *Value) SeriesSystem(sys ComplexResponder) (*Value, error) {
	if len(v.freq) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}
	if isNil(sys) {
		return nil, fmt.Errorf("%w: nil operand %T", ErrUnsupportedOperand, sys)
	}
	if o, ok := sys.(*Value); ok && o.Len() == 0 {
		return nil, fmt.Errorf("%w: empty response operand", ErrUnsupportedOperand)
	}
	if d, ok := sys.(IODimensioner); ok {
		if in, out := d.IODims(); in == 0 || out == 0 {
			return nil, fmt.Errorf("%w: operand has no inputs or outputs", ErrUnsupportedOperand)
		}
	}
	if err := requireSISO(sys); err != nil {
		return nil, err
	}

	h, err := sys.ComplexResponseAt(v.Frequency())
	if err != nil {
		return nil, fmt.Errorf("%w: series operand evaluation failed: %w", ErrInvalidArgument, err)
	}
	if len(h) != len(v.freq) {
		return nil, fmt.Errorf("%w: operand returned %d samples for %d frequencies", ErrInvalidArgument, len(h), len(v.freq))
	}
	if err := validateComplex(h); err != nil {
		return nil, fmt.Errorf("%w: operand response: %w", ErrInvalidArgument, err)
	}

	return newValue(v.Frequency(), addNichols(v.resp, nichols.ToNichols(h))), nil
}

// SeriesGain adds gainDB to the magnitude channel and unwraps the result
// with the default configuration.
func (v *Value) SeriesGain(gainDB float64) (*Value, error) {
	if !core.IsFinite(gainDB) {
		return nil, fmt.Errorf("%w: gain must be finite: %v", ErrInvalidArgument, gainDB)
	}
	if len(v.freq) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}

	out := make([]complex128, len(v.resp))
	for i, s := range v.resp {
		out[i] = s + complex(0, gainDB)
	}

	return newValue(v.Frequency(), out).Unwrap()
}

// SeriesScalar cascades a real linear gain k. Negative gains add 180
// degrees of phase, zero yields -Inf dB. The result is unwrapped.
func (v *Value) SeriesScalar(k float64) (*Value, error) {
	if !core.IsFinite(k) {
		return nil, fmt.Errorf("%w: gain must be finite: %v", ErrInvalidArgument, k)
	}
	if len(v.freq) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}

	g := nichols.ToNichols([]complex128{complex(k, 0)})[0]
	out := make([]complex128, len(v.resp))
	for i, s := range v.resp {
		out[i] = s + g
	}

	return newValue(v.Frequency(), out).Unwrap()
}

// addNichols sums two equal-length Nichols vectors channel by channel.
func addNichols(a, b []complex128) []complex128 {
	pa, ma := nichols.Split(a)
	pb, mb := nichols.Split(b)
	floats.Add(pa, pb)
	floats.Add(ma, mb)
	return nichols.Join(pa, ma)
}
