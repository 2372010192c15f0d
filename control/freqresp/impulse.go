package freqresp

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-nichols/control/core"
	"github.com/cwbudde/algo-nichols/control/nichols"
)

// FromImpulseResponse builds the response of a discrete-time FIR system
// with impulse response h sampled at sampleRate (Hz).
//
// The response is computed with an fftSize-point FFT and kept on bins
// 1..fftSize/2, i.e. w_k = 2*pi*k*sampleRate/fftSize rad/s up to Nyquist.
// DC is dropped because the grid must be positive. An fftSize of 0 selects
// the next power of two >= len(h). The phase is unwrapped across bins.
func FromImpulseResponse(h []float64, sampleRate float64, fftSize int) (*Value, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: empty impulse response", ErrConstruction)
	}
	for i, x := range h {
		if !core.IsFinite(x) {
			return nil, fmt.Errorf("%w: impulse sample %d is not finite: %v", ErrConstruction, i, x)
		}
	}
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be finite and > 0: %v", ErrConstruction, sampleRate)
	}

	if fftSize == 0 {
		fftSize = nextPowerOf2(len(h))
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: fft size must be a power of two >= 2: %d", ErrConstruction, fftSize)
	}
	if fftSize < len(h) {
		return nil, fmt.Errorf("%w: fft size %d shorter than impulse response %d", ErrConstruction, fftSize, len(h))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create FFT plan: %w", ErrConstruction, err)
	}

	in := make([]complex128, fftSize)
	for i, x := range h {
		in[i] = complex(x, 0)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("%w: forward FFT failed: %w", ErrConstruction, err)
	}

	half := fftSize / 2
	bins := make([]float64, half)
	for k := range bins {
		bins[k] = float64(k + 1)
	}

	freq := make([]float64, half)
	floats.ScaleTo(freq, 2*math.Pi*sampleRate/float64(fftSize), bins)

	return newValue(freq, nichols.ToNichols(spec[1:half+1], nichols.WithUnwrap())), nil
}

func nextPowerOf2(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}
