package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fermiq/cmat"
	"github.com/katalvlaran/fermiq/spectral"
)

// TestDecompose_Reconstruction verifies the central contract on random
// Hermitian matrices of several sizes: U is unitary and U†·diag(λ)·U
// reconstructs T to well under 1e-6.
func TestDecompose_Reconstruction(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		h, err := cmat.RandomHermitian(n, int64(100+n))
		require.NoError(t, err, "seeded Hermitian draw should succeed")

		dec, err := spectral.Decompose(h)
		require.NoError(t, err, "decomposition of a Hermitian matrix should succeed")
		require.Len(t, dec.Values, n, "one eigenvalue per mode")

		uerr, err := spectral.UnitarityError(dec)
		require.NoError(t, err)
		assert.Less(t, uerr, 1e-6, "n=%d: U must be unitary", n)

		rerr, err := spectral.ReconstructionError(dec, h)
		require.NoError(t, err)
		assert.Less(t, rerr, 1e-6, "n=%d: U†·diag(λ)·U must reconstruct T", n)
	}
}

// TestDecompose_Ascending checks the eigenvalue order contract.
func TestDecompose_Ascending(t *testing.T) {
	h, err := cmat.RandomHermitian(6, 42)
	require.NoError(t, err)

	dec, err := spectral.Decompose(h)
	require.NoError(t, err)
	for k := 1; k < len(dec.Values); k++ {
		assert.LessOrEqual(t, dec.Values[k-1], dec.Values[k],
			"eigenvalues must be ascending at position %d", k)
	}
}

// TestDecompose_Deterministic verifies that two decompositions of the
// same matrix are identical, including eigenvector phases.
func TestDecompose_Deterministic(t *testing.T) {
	h, err := cmat.RandomHermitian(4, 7)
	require.NoError(t, err)

	a, err := spectral.Decompose(h)
	require.NoError(t, err)
	b, err := spectral.Decompose(h)
	require.NoError(t, err)

	assert.Equal(t, a.Values, b.Values, "eigenvalues must be reproducible")
	diff, err := cmat.MaxAbsDiff(a.U, b.U)
	require.NoError(t, err)
	assert.Zero(t, diff, "phase canonicalization must make U reproducible")
}

// TestDecompose_KnownSpectrum checks a hand-diagonalizable 2×2:
// T = [[0, 1], [1, 0]] has eigenvalues ∓1.
func TestDecompose_KnownSpectrum(t *testing.T) {
	h, err := cmat.FromRows([][]complex128{{0, 1}, {1, 0}})
	require.NoError(t, err)

	dec, err := spectral.Decompose(h)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, dec.Values[0], 1e-12, "ground eigenvalue")
	assert.InDelta(t, 1.0, dec.Values[1], 1e-12, "excited eigenvalue")
}

// TestDecompose_Identity is the fully degenerate edge case: every basis
// vector is an eigenvector, so the solver is free to mix the embedding
// columns arbitrarily and the decomposition must still come out unitary.
func TestDecompose_Identity(t *testing.T) {
	h, err := cmat.Identity(2)
	require.NoError(t, err)

	dec, err := spectral.Decompose(h)
	require.NoError(t, err)

	uerr, err := spectral.UnitarityError(dec)
	require.NoError(t, err)
	assert.Less(t, uerr, 1e-10, "identity decomposition must be unitary")

	rerr, err := spectral.ReconstructionError(dec, h)
	require.NoError(t, err)
	assert.Less(t, rerr, 1e-10, "identity must reconstruct exactly")

	for k, v := range dec.Values {
		assert.InDelta(t, 1.0, v, 1e-12, "eigenvalue %d of the identity", k)
	}
}

// TestDecompose_DegenerateDiagonal covers a repeated eigenvalue next to
// a simple one: diag(2, 2, 5).
func TestDecompose_DegenerateDiagonal(t *testing.T) {
	h, err := cmat.FromRows([][]complex128{
		{2, 0, 0},
		{0, 2, 0},
		{0, 0, 5},
	})
	require.NoError(t, err)

	dec, err := spectral.Decompose(h)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, dec.Values[0], 1e-12, "degenerate eigenvalue")
	assert.InDelta(t, 2.0, dec.Values[1], 1e-12, "degenerate eigenvalue")
	assert.InDelta(t, 5.0, dec.Values[2], 1e-12, "simple eigenvalue")

	uerr, err := spectral.UnitarityError(dec)
	require.NoError(t, err)
	assert.Less(t, uerr, 1e-10, "degenerate eigenspace must yield orthonormal rows")

	rerr, err := spectral.ReconstructionError(dec, h)
	require.NoError(t, err)
	assert.Less(t, rerr, 1e-10, "diag(2,2,5) must reconstruct exactly")
}

// TestDecompose_DegenerateComplex exercises a degenerate eigenspace that
// is not axis-aligned: [[1, i], [-i, 1]] ⊕ [2] has spectrum {0, 2, 2}.
func TestDecompose_DegenerateComplex(t *testing.T) {
	h, err := cmat.FromRows([][]complex128{
		{1, 1i, 0},
		{-1i, 1, 0},
		{0, 0, 2},
	})
	require.NoError(t, err)

	dec, err := spectral.Decompose(h)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, dec.Values[0], 1e-12, "simple eigenvalue")
	assert.InDelta(t, 2.0, dec.Values[1], 1e-12, "degenerate eigenvalue")
	assert.InDelta(t, 2.0, dec.Values[2], 1e-12, "degenerate eigenvalue")

	uerr, err := spectral.UnitarityError(dec)
	require.NoError(t, err)
	assert.Less(t, uerr, 1e-10, "degenerate eigenspace must yield orthonormal rows")

	rerr, err := spectral.ReconstructionError(dec, h)
	require.NoError(t, err)
	assert.Less(t, rerr, 1e-10, "complex degenerate block must reconstruct")
}

// TestDecompose_RejectsNonHermitian ensures the defensive precheck
// fires before any numerical work.
func TestDecompose_RejectsNonHermitian(t *testing.T) {
	bad, err := cmat.FromRows([][]complex128{{0, 1}, {2, 0}})
	require.NoError(t, err)

	_, err = spectral.Decompose(bad)
	assert.ErrorIs(t, err, cmat.ErrNotHermitian, "non-Hermitian input must be rejected")
}

// TestDecompose_ComplexOffDiagonal exercises a matrix with genuinely
// complex couplings, where the real embedding actually matters.
func TestDecompose_ComplexOffDiagonal(t *testing.T) {
	h, err := cmat.FromRows([][]complex128{
		{1, 2i, 0},
		{-2i, 0, 1 - 1i},
		{0, 1 + 1i, -1},
	})
	require.NoError(t, err)

	dec, err := spectral.Decompose(h)
	require.NoError(t, err)

	rerr, err := spectral.ReconstructionError(dec, h)
	require.NoError(t, err)
	assert.Less(t, rerr, 1e-10, "complex couplings must reconstruct exactly")
}
