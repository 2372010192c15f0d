package testutil

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). Equal infinities match.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		diff := math.Abs(got[i] - want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireComplexNearlyEqual is [RequireSliceNearlyEqual] for complex slices,
// comparing real and imaginary parts independently.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		dr := math.Abs(real(got[i]) - real(want[i]))
		di := math.Abs(imag(got[i]) - imag(want[i]))
		if real(got[i]) == real(want[i]) {
			dr = 0
		}
		if imag(got[i]) == imag(want[i]) {
			di = 0
		}
		if !(dr <= eps) || !(di <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], cmplx.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireErrorIs fails t unless err wraps target.
func RequireErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
