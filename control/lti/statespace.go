package lti

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StateSpace is a continuous-time realisation
//
//	x' = A x + B u
//	y  = C x + D u
//
// with n states, m inputs and p outputs.
type StateSpace struct {
	a, b, c, d *mat.Dense
	n, m, p    int
}

// NewStateSpace validates dimensions and copies the matrices. d may be nil,
// in which case it is taken as the p-by-m zero matrix.
func NewStateSpace(a, b, c, d mat.Matrix) (*StateSpace, error) {
	if a == nil || b == nil || c == nil {
		return nil, fmt.Errorf("%w: A, B and C are required", ErrInvalidSystem)
	}

	n, na := a.Dims()
	if n != na || n == 0 {
		return nil, fmt.Errorf("%w: A must be square and non-empty, got %dx%d", ErrInvalidSystem, n, na)
	}

	nb, m := b.Dims()
	if nb != n || m == 0 {
		return nil, fmt.Errorf("%w: B must be %dxm, got %dx%d", ErrInvalidSystem, n, nb, m)
	}

	p, nc := c.Dims()
	if nc != n || p == 0 {
		return nil, fmt.Errorf("%w: C must be px%d, got %dx%d", ErrInvalidSystem, n, p, nc)
	}

	var dd *mat.Dense
	if d == nil {
		dd = mat.NewDense(p, m, nil)
	} else {
		pd, md := d.Dims()
		if pd != p || md != m {
			return nil, fmt.Errorf("%w: D must be %dx%d, got %dx%d", ErrInvalidSystem, p, m, pd, md)
		}
		dd = mat.DenseCopyOf(d)
	}

	return &StateSpace{
		a: mat.DenseCopyOf(a),
		b: mat.DenseCopyOf(b),
		c: mat.DenseCopyOf(c),
		d: dd,
		n: n,
		m: m,
		p: p,
	}, nil
}

// States returns the state dimension n.
func (ss *StateSpace) States() int { return ss.n }

// IODims returns the input and output counts.
func (ss *StateSpace) IODims() (inputs, outputs int) { return ss.m, ss.p }

// At evaluates H(jw) = C (jwI - A)^-1 B + D for a SISO realisation.
//
// The complex system (jwI - A) x = B is solved as the real 2n-by-2n block
// system
//
//	[ -A   -wI ] [xr]   [B]
//	[ wI   -A  ] [xi] = [0]
func (ss *StateSpace) At(w float64) (complex128, error) {
	if ss.m != 1 || ss.p != 1 {
		return 0, fmt.Errorf("%w: %d inputs, %d outputs", ErrNotSISO, ss.m, ss.p)
	}

	n := ss.n
	blk := mat.NewDense(2*n, 2*n, nil)
	rhs := mat.NewVecDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aij := ss.a.At(i, j)
			blk.Set(i, j, -aij)
			blk.Set(n+i, n+j, -aij)
		}
		blk.Set(i, n+i, -w)
		blk.Set(n+i, i, w)
		rhs.SetVec(i, ss.b.At(i, 0))
	}

	var x mat.VecDense
	if err := x.SolveVec(blk, rhs); err != nil {
		return 0, fmt.Errorf("%w: jwI-A not invertible at w=%g: %v", ErrSingular, w, err)
	}

	hr := ss.d.At(0, 0)
	hi := 0.0
	for k := 0; k < n; k++ {
		ck := ss.c.At(0, k)
		hr += ck * x.AtVec(k)
		hi += ck * x.AtVec(n+k)
	}

	return complex(hr, hi), nil
}

// ComplexResponseAt evaluates H(jw) at every frequency in freq (rad/s).
func (ss *StateSpace) ComplexResponseAt(freq []float64) ([]complex128, error) {
	if ss.m != 1 || ss.p != 1 {
		return nil, fmt.Errorf("%w: %d inputs, %d outputs", ErrNotSISO, ss.m, ss.p)
	}

	out := make([]complex128, len(freq))
	for i, w := range freq {
		h, err := ss.At(w)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}
