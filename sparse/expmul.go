package sparse

import (
	"errors"
	"math"
	"math/cmplx"
)

// Taylor-series controls for ExpMul. The per-segment series stops when
// the running term drops below convTol relative to the input norm, and
// maxTerms bounds a segment defensively (never reached after scaling).
const (
	convTol  = 1e-16
	maxTerms = 64
)

// ErrExpDiverged indicates a Taylor segment that failed to converge
// within maxTerms terms; with the 1-norm scaling in place this signals
// non-finite matrix entries rather than a tolerance problem.
var ErrExpDiverged = errors.New("sparse: exp action failed to converge")

// ExpMul computes w = exp(z·A)·v using only sparse matvec products.
// A dense exponential is never formed — memory stays O(dim).
//
// The series is scaled: s = ceil(‖A‖₁·|z|) segments, each evaluating
// exp((z/s)·A)·x by Taylor terms t_{k+1} = (z/s)·A·t_k / (k+1) until
// ‖t_k‖ is negligible against ‖v‖.
//
// Complexity: O(s · terms · nnz) time, O(dim) space.
func ExpMul(a *CSR, z complex128, v []complex128) ([]complex128, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if len(v) != a.n {
		return nil, ErrDimensionMismatch
	}

	segments := int(math.Ceil(a.OneNorm() * cmplx.Abs(z)))
	if segments < 1 {
		segments = 1
	}
	zs := z / complex(float64(segments), 0)

	cur := make([]complex128, a.n)
	copy(cur, v)
	ref := vecNorm(v)
	if ref == 0 {
		return cur, nil // zero vector is a fixed point of any exp action
	}

	var err error
	var term, next []complex128
	for seg := 0; seg < segments; seg++ {
		// acc accumulates the segment result, term walks the series.
		acc := make([]complex128, a.n)
		copy(acc, cur)
		term = make([]complex128, a.n)
		copy(term, cur)

		converged := false
		for k := 1; k <= maxTerms; k++ {
			next, err = a.MatVec(term)
			if err != nil {
				return nil, err
			}
			scale := zs / complex(float64(k), 0)
			for i := range next {
				next[i] *= scale
				acc[i] += next[i]
			}
			term = next
			if vecNorm(term) <= convTol*ref {
				converged = true
				break
			}
		}
		if !converged {
			return nil, ErrExpDiverged
		}
		cur = acc
	}

	return cur, nil
}

// vecNorm returns the 2-norm of v.
func vecNorm(v []complex128) float64 {
	var acc float64
	for _, x := range v {
		acc += real(x)*real(x) + imag(x)*imag(x)
	}

	return math.Sqrt(acc)
}

// cAbs is a local alias to keep the hot loops free of package renames.
func cAbs(x complex128) float64 { return cmplx.Abs(x) }
