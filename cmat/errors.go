// Package cmat: sentinel error set.
// All public functions return these sentinels (optionally wrapped with an
// operation prefix via fmt.Errorf("op: %w", err)); tests match them with
// errors.Is. No function panics on user-triggered conditions.

package cmat

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is invalid (n <= 0,
	// rows <= 0 or cols <= 0). Creation validates before allocation.
	ErrBadShape = errors.New("cmat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("cmat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows, or MatVec with len(x) != Cols.
	ErrDimensionMismatch = errors.New("cmat: dimension mismatch")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("cmat: nil matrix")

	// ErrNotHermitian signals that a matrix expected to satisfy
	// m[p][q] == conj(m[q][p]) violated it beyond the given tolerance.
	ErrNotHermitian = errors.New("cmat: matrix is not Hermitian within tolerance")

	// ErrNotUnitary signals that ‖U·U† − I‖max exceeded the given tolerance.
	ErrNotUnitary = errors.New("cmat: matrix is not unitary within tolerance")
)
