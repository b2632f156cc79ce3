// Package cmat: canonical fail-fast validators.
// Every package in the module funnels precondition checks through these
// helpers so error surfaces stay uniform.

package cmat

import "math/cmplx"

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare returns ErrDimensionMismatch unless m is square.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateHermitian checks m[p][q] == conj(m[q][p]) within tol on every
// pair, diagonal included (imaginary parts of diagonal entries must not
// exceed tol). Returns ErrNotHermitian on the first violation.
//
// Complexity: O(n²).
func ValidateHermitian(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(m.data[i*n+j]-cmplx.Conj(m.data[j*n+i])) > tol {
				return ErrNotHermitian
			}
		}
	}

	return nil
}

// ValidateUnitary checks ‖m·m† − I‖max <= tol.
// For rectangular η×N inputs (η < N) it checks row orthonormality, which
// is the contract the circuit synthesizer needs. Returns ErrNotUnitary
// on violation.
//
// Complexity: O(η²·N) time (forms the η×η Gram matrix once).
func ValidateUnitary(m *Dense, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r > m.c {
		return ErrDimensionMismatch
	}
	var acc complex128
	var want complex128
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.r; j++ {
			acc = 0
			for k := 0; k < m.c; k++ {
				acc += m.data[i*m.c+k] * cmplx.Conj(m.data[j*m.c+k])
			}
			want = 0
			if i == j {
				want = 1
			}
			if cmplx.Abs(acc-want) > tol {
				return ErrNotUnitary
			}
		}
	}

	return nil
}
