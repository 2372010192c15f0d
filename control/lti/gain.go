package lti

// Gain is a static real gain.
type Gain float64

// IODims reports one input and one output.
func (g Gain) IODims() (inputs, outputs int) { return 1, 1 }

// ComplexResponseAt returns g at every frequency.
func (g Gain) ComplexResponseAt(freq []float64) ([]complex128, error) {
	out := make([]complex128, len(freq))
	for i := range out {
		out[i] = complex(float64(g), 0)
	}
	return out, nil
}
