// Package jw maps one-body fermionic operators to qubit-space sparse
// matrices through the Jordan–Wigner transform.
//
// Mode p maps to qubit p, occupation to bit p of the basis index
// (little-endian, matching package statevec). For the hopping term
// a†_p·a_q the JW strings reduce to a parity sign counting the occupied
// modes STRICTLY between p and q in the source basis state:
//
//	⟨i − 2^q + 2^p| a†_p a_q |i⟩ = (−1)^(popcount of i between p and q)
//
// valid for both p < q and p > q; diagonal terms contribute T_pp to
// every basis state with bit p set. The assembled matrix is Hermitian
// whenever T is, and block-diagonal over particle-number sectors.
package jw

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/fermiq/cmat"
	"github.com/katalvlaran/fermiq/sparse"
)

// hermTol bounds the accepted Hermiticity violation of the coefficient
// matrix before assembly.
const hermTol = 1e-10

// OneBody assembles the 2^N×2^N sparse matrix of H = Σ_pq T_pq a†_p a_q
// for an N×N Hermitian coefficient matrix T.
//
// Complexity: O(4^N·N²) worst-case assembly for dense T; the result has
// O(2^N·N²) entries. N is bounded by the statevector ceiling upstream.
func OneBody(t *cmat.Dense) (*sparse.CSR, error) {
	if err := cmat.ValidateHermitian(t, hermTol); err != nil {
		return nil, fmt.Errorf("OneBody: %w", err)
	}
	n := t.Rows()
	dim := 1 << n
	coo, err := sparse.NewCOO(dim)
	if err != nil {
		return nil, fmt.Errorf("OneBody: %w", err)
	}

	var p, q, i, j int
	var coeff complex128
	for p = 0; p < n; p++ {
		for q = 0; q < n; q++ {
			coeff, _ = t.At(p, q)
			if coeff == 0 {
				continue
			}
			if p == q {
				// Number operator: diagonal on occupied states.
				for i = 0; i < dim; i++ {
					if i&(1<<p) != 0 {
						if err = coo.Add(i, i, coeff); err != nil {
							return nil, fmt.Errorf("OneBody: %w", err)
						}
					}
				}
				continue
			}
			// Hopping: requires bit q occupied and bit p free.
			for i = 0; i < dim; i++ {
				if i&(1<<q) == 0 || i&(1<<p) != 0 {
					continue
				}
				j = i - (1 << q) + (1 << p)
				if parityBetween(i, p, q) {
					if err = coo.Add(j, i, -coeff); err != nil {
						return nil, fmt.Errorf("OneBody: %w", err)
					}
				} else {
					if err = coo.Add(j, i, coeff); err != nil {
						return nil, fmt.Errorf("OneBody: %w", err)
					}
				}
			}
		}
	}

	csr, err := coo.ToCSR()
	if err != nil {
		return nil, fmt.Errorf("OneBody: %w", err)
	}

	return csr, nil
}

// parityBetween reports whether the number of set bits of i strictly
// between positions p and q is odd.
func parityBetween(i, p, q int) bool {
	lo, hi := p, q
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo < 2 {
		return false
	}
	mask := ((1 << hi) - 1) &^ ((1 << (lo + 1)) - 1)

	return bits.OnesCount(uint(i&mask))%2 == 1
}
