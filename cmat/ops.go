package cmat

import (
	"fmt"
	"math/cmplx"
)

// Operation tags for unified error wrapping.
const (
	opMul    = "Mul"
	opConjT  = "ConjTranspose"
	opMatVec = "MatVec"
	opNorm   = "MaxAbsDiff"
)

// wrapOp prefixes err with an operation tag, preserving errors.Is matching.
// Callers must ensure err != nil.
func wrapOp(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A × B into a fresh Dense.
//
// Contract: a, b non-nil; a.Cols == b.Rows.
// Determinism: fixed i→k→j loop order with zero-skip on A[i,k].
// Complexity: O(r·n·c) time, O(r·c) space.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, wrapOp(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, wrapOp(opMul, ErrDimensionMismatch)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, wrapOp(opMul, err)
	}

	var i, j, k int
	var av complex128
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// ConjTranspose returns the conjugate transpose m† as a fresh Dense.
//
// Complexity: O(r·c) time and space.
func ConjTranspose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, wrapOp(opConjT, ErrNilMatrix)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, wrapOp(opConjT, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols.
// Complexity: O(r·c) time, O(r) space.
func MatVec(m *Dense, x []complex128) ([]complex128, error) {
	if m == nil {
		return nil, wrapOp(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, wrapOp(opMatVec, ErrDimensionMismatch)
	}
	y := make([]complex128, m.r)
	var i, j int
	var acc complex128
	for i = 0; i < m.r; i++ {
		acc = 0
		for j = 0; j < m.c; j++ {
			acc += m.data[i*m.c+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// MaxAbsDiff returns max_{i,j} |a[i,j] − b[i,j]|, the element-wise
// infinity distance used by all tolerance checks in the pipeline.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if a == nil || b == nil {
		return 0, wrapOp(opNorm, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return 0, wrapOp(opNorm, ErrDimensionMismatch)
	}
	var worst float64
	for i := range a.data {
		if d := cmplx.Abs(a.data[i] - b.data[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
