package freqresp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-nichols/internal/testutil"
)

func TestLogSpace(t *testing.T) {
	got, err := LogSpace(1, 1000, 4)
	if err != nil {
		t.Fatalf("LogSpace error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 10, 100, 1000}, 1e-9)
	if got[0] != 1 || got[3] != 1000 {
		t.Fatalf("bounds not exact: %v", got)
	}
}

func TestLogSpaceSinglePoint(t *testing.T) {
	got, err := LogSpace(5, 5, 1)
	if err != nil {
		t.Fatalf("LogSpace error: %v", err)
	}
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("LogSpace = %v, want [5]", got)
	}
}

func TestLogSpaceErrors(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		n      int
	}{
		{"zero points", 1, 10, 0},
		{"zero lower bound", 0, 10, 5},
		{"reversed", 10, 1, 5},
		{"equal bounds", 3, 3, 2},
		{"nan", math.NaN(), 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LogSpace(tt.lo, tt.hi, tt.n)
			testutil.RequireErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
