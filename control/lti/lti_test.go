package lti

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-nichols/internal/testutil"
)

func TestHorner(t *testing.T) {
	// s^2 + 3s + 2 at s = j.
	got := Horner([]float64{1, 3, 2}, 1i)
	if got != complex(1, 3) {
		t.Fatalf("Horner = %v, want (1+3i)", got)
	}
	if Horner(nil, 2) != 0 {
		t.Fatal("empty polynomial should evaluate to zero")
	}
}

func TestPolyMul(t *testing.T) {
	got := PolyMul([]float64{1, 1}, []float64{1, 2, 1, 0, 0})
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 3, 3, 1, 0, 0}, 0)

	if PolyMul(nil, []float64{1}) != nil {
		t.Fatal("expected nil for empty operand")
	}
}

func TestTransferFunctionFirstOrder(t *testing.T) {
	tf, err := NewTransferFunction([]float64{1}, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewTransferFunction error: %v", err)
	}

	h, err := tf.ComplexResponseAt([]float64{1})
	if err != nil {
		t.Fatalf("ComplexResponseAt error: %v", err)
	}
	if cmplx.Abs(h[0]-complex(0.5, -0.5)) > 1e-15 {
		t.Fatalf("H(j1) = %v, want (0.5-0.5i)", h[0])
	}
}

func TestTransferFunctionTrimsLeadingZeros(t *testing.T) {
	tf, err := NewTransferFunction([]float64{0, 0, 3}, []float64{0, 1, 2})
	if err != nil {
		t.Fatalf("NewTransferFunction error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, tf.Numerator(), []float64{3}, 0)
	testutil.RequireSliceNearlyEqual(t, tf.Denominator(), []float64{1, 2}, 0)
}

func TestTransferFunctionErrors(t *testing.T) {
	tests := []struct {
		name     string
		num, den []float64
	}{
		{"empty numerator", nil, []float64{1}},
		{"empty denominator", []float64{1}, nil},
		{"zero denominator", []float64{1}, []float64{0, 0}},
		{"nan coefficient", []float64{math.NaN()}, []float64{1}},
		{"inf coefficient", []float64{1}, []float64{math.Inf(1), 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransferFunction(tt.num, tt.den)
			testutil.RequireErrorIs(t, err, ErrInvalidSystem)
		})
	}
}

func TestTransferFunctionSingular(t *testing.T) {
	tf, err := NewTransferFunction([]float64{1}, []float64{1, 0, 4})
	if err != nil {
		t.Fatalf("NewTransferFunction error: %v", err)
	}

	_, err = tf.ComplexResponseAt([]float64{1, 2})
	testutil.RequireErrorIs(t, err, ErrSingular)
}

func TestTransferFunctionSeries(t *testing.T) {
	a, _ := NewTransferFunction([]float64{1}, []float64{1, 1})
	b, _ := NewTransferFunction([]float64{2, 0}, []float64{1, 3})

	c, err := a.Series(b)
	if err != nil {
		t.Fatalf("Series error: %v", err)
	}
	freq := []float64{0.1, 1, 10}

	ha, _ := a.ComplexResponseAt(freq)
	hb, _ := b.ComplexResponseAt(freq)
	hc, err := c.ComplexResponseAt(freq)
	if err != nil {
		t.Fatalf("ComplexResponseAt error: %v", err)
	}

	for i := range freq {
		if cmplx.Abs(hc[i]-ha[i]*hb[i]) > 1e-12 {
			t.Fatalf("cascade[%d] = %v, want %v", i, hc[i], ha[i]*hb[i])
		}
	}
}

func TestTransferFunctionSeriesErrors(t *testing.T) {
	a, err := NewTransferFunction([]float64{1}, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewTransferFunction error: %v", err)
	}

	_, err = a.Series(nil)
	testutil.RequireErrorIs(t, err, ErrInvalidSystem)

	var missing *TransferFunction
	_, err = missing.Series(a)
	testutil.RequireErrorIs(t, err, ErrInvalidSystem)

	_, err = a.Series(&TransferFunction{})
	testutil.RequireErrorIs(t, err, ErrInvalidSystem)
}

func TestFRDZeroValue(t *testing.T) {
	var frd FRD
	if in, out := frd.IODims(); in != 0 || out != 0 {
		t.Fatalf("IODims = (%d, %d), want (0, 0)", in, out)
	}
	if frd.ComplexResponse() != nil {
		t.Fatal("expected nil response for the zero FRD")
	}
	_, err := frd.ComplexResponseAt([]float64{1})
	testutil.RequireErrorIs(t, err, ErrNotSISO)
}

func TestStateSpaceMatchesTransferFunction(t *testing.T) {
	ss, err := NewStateSpace(
		mat.NewDense(2, 2, []float64{0, 1, -2, -3}),
		mat.NewDense(2, 1, []float64{0, 1}),
		mat.NewDense(1, 2, []float64{1, 0}),
		mat.NewDense(1, 1, []float64{0.5}),
	)
	if err != nil {
		t.Fatalf("NewStateSpace error: %v", err)
	}

	// 1/(s^2+3s+2) + 0.5 = (0.5s^2 + 1.5s + 2)/(s^2+3s+2)
	tf, _ := NewTransferFunction([]float64{0.5, 1.5, 2}, []float64{1, 3, 2})

	freq := []float64{0.01, 0.5, 1, 7, 100}
	got, err := ss.ComplexResponseAt(freq)
	if err != nil {
		t.Fatalf("ComplexResponseAt error: %v", err)
	}
	want, _ := tf.ComplexResponseAt(freq)

	for i := range freq {
		if cmplx.Abs(got[i]-want[i]) > 1e-10 {
			t.Fatalf("H(j%v) = %v, want %v", freq[i], got[i], want[i])
		}
	}

	if ss.States() != 2 {
		t.Fatalf("States = %d, want 2", ss.States())
	}
}

func TestStateSpaceDimensionErrors(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{-1, 0, 0, -2})
	b := mat.NewDense(2, 1, []float64{1, 1})
	c := mat.NewDense(1, 2, []float64{1, 1})

	tests := []struct {
		name       string
		a, b, c, d mat.Matrix
	}{
		{"missing", nil, b, c, nil},
		{"non-square A", mat.NewDense(2, 3, nil), b, c, nil},
		{"B rows", a, mat.NewDense(3, 1, nil), c, nil},
		{"C cols", a, b, mat.NewDense(1, 3, nil), nil},
		{"D dims", a, b, c, mat.NewDense(2, 2, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStateSpace(tt.a, tt.b, tt.c, tt.d)
			testutil.RequireErrorIs(t, err, ErrInvalidSystem)
		})
	}
}

func TestStateSpaceMIMO(t *testing.T) {
	ss, err := NewStateSpace(
		mat.NewDense(1, 1, []float64{-1}),
		mat.NewDense(1, 2, []float64{1, 2}),
		mat.NewDense(3, 1, []float64{1, 2, 3}),
		nil,
	)
	if err != nil {
		t.Fatalf("NewStateSpace error: %v", err)
	}

	if in, out := ss.IODims(); in != 2 || out != 3 {
		t.Fatalf("IODims = (%d, %d), want (2, 3)", in, out)
	}

	_, err = ss.ComplexResponseAt([]float64{1})
	testutil.RequireErrorIs(t, err, ErrNotSISO)
}

func TestStateSpaceSingular(t *testing.T) {
	// A pure integrator has its pole at s = 0.
	ss, err := NewStateSpace(
		mat.NewDense(1, 1, []float64{0}),
		mat.NewDense(1, 1, []float64{1}),
		mat.NewDense(1, 1, []float64{1}),
		nil,
	)
	if err != nil {
		t.Fatalf("NewStateSpace error: %v", err)
	}

	_, err = ss.At(0)
	testutil.RequireErrorIs(t, err, ErrSingular)

	h, err := ss.At(2)
	if err != nil {
		t.Fatalf("At error: %v", err)
	}
	if cmplx.Abs(h-complex(0, -0.5)) > 1e-12 {
		t.Fatalf("H(j2) = %v, want -0.5i", h)
	}
}

func TestFRD(t *testing.T) {
	freq := []float64{1, 2, 4}
	h := []complex128{1, 1i, -1}

	frd, err := NewSISOFRD(freq, h)
	if err != nil {
		t.Fatalf("NewSISOFRD error: %v", err)
	}

	h[0] = 42
	if frd.ComplexResponse()[0] != 1 {
		t.Fatal("FRD aliased caller slice")
	}

	got, err := frd.ComplexResponseAt([]float64{4, 1})
	if err != nil {
		t.Fatalf("ComplexResponseAt error: %v", err)
	}
	if got[0] != -1 || got[1] != 1 {
		t.Fatalf("lookup = %v, want [-1 1]", got)
	}

	_, err = frd.ComplexResponseAt([]float64{3})
	testutil.RequireErrorIs(t, err, ErrNotOnGrid)

	_, err = frd.ComplexResponseAt([]float64{5})
	testutil.RequireErrorIs(t, err, ErrNotOnGrid)
}

func TestFRDErrors(t *testing.T) {
	ch := []complex128{1, 1}
	tests := []struct {
		name string
		freq []float64
		resp [][][]complex128
	}{
		{"empty grid", nil, [][][]complex128{{ch}}},
		{"unsorted grid", []float64{2, 1}, [][][]complex128{{ch}}},
		{"no channels", []float64{1, 2}, nil},
		{"ragged inputs", []float64{1, 2}, [][][]complex128{{ch, ch}, {ch}}},
		{"short channel", []float64{1, 2}, [][][]complex128{{{1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFRD(tt.freq, tt.resp)
			testutil.RequireErrorIs(t, err, ErrInvalidSystem)
		})
	}
}

func TestFRDMIMO(t *testing.T) {
	ch := []complex128{1, 1}
	frd, err := NewFRD([]float64{1, 2}, [][][]complex128{{ch, ch}})
	if err != nil {
		t.Fatalf("NewFRD error: %v", err)
	}

	if in, out := frd.IODims(); in != 2 || out != 1 {
		t.Fatalf("IODims = (%d, %d), want (2, 1)", in, out)
	}

	_, err = frd.ComplexResponseAt([]float64{1})
	if !errors.Is(err, ErrNotSISO) {
		t.Fatalf("error = %v, want ErrNotSISO", err)
	}
}

func TestGain(t *testing.T) {
	h, err := Gain(-2).ComplexResponseAt([]float64{1, 10})
	if err != nil {
		t.Fatalf("ComplexResponseAt error: %v", err)
	}
	if h[0] != -2 || h[1] != -2 {
		t.Fatalf("Gain response = %v, want [-2 -2]", h)
	}
	if in, out := Gain(1).IODims(); in != 1 || out != 1 {
		t.Fatalf("IODims = (%d, %d), want (1, 1)", in, out)
	}
}
