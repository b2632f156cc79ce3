package cmat

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// RandomHermitian returns an n×n complex matrix that is Hermitian exactly
// by construction: real Gaussian diagonal, Gaussian upper triangle with
// the lower triangle set to the conjugate of its mirror element.
//
// Determinism: the same (n, seed) pair yields a bit-identical matrix —
// entries are drawn from rand.New(rand.NewSource(seed)) in a fixed
// row-major order, so no draw ever depends on data values.
//
// Returns ErrBadShape when n <= 0.
func RandomHermitian(n int, seed int64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	var i, j int
	var re, im float64
	for i = 0; i < n; i++ {
		// Diagonal entries are real by Hermiticity.
		m.data[i*n+i] = complex(rng.NormFloat64(), 0)
		for j = i + 1; j < n; j++ {
			re = rng.NormFloat64()
			im = rng.NormFloat64()
			// Scale off-diagonal draws by 1/√2 so every entry has unit
			// variance, matching the Gaussian unitary ensemble.
			m.data[i*n+j] = complex(re/math.Sqrt2, im/math.Sqrt2)
			m.data[j*n+i] = cmplx.Conj(m.data[i*n+j])
		}
	}

	return m, nil
}
