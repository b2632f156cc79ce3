package sparse_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fermiq/sparse"
)

// TestNewCOO_BadShape rejects non-positive dimensions.
func TestNewCOO_BadShape(t *testing.T) {
	_, err := sparse.NewCOO(0)
	assert.ErrorIs(t, err, sparse.ErrBadShape, "n=0 must error")
}

// TestCOO_AddRange rejects out-of-range triplets.
func TestCOO_AddRange(t *testing.T) {
	m, err := sparse.NewCOO(2)
	require.NoError(t, err)

	assert.NoError(t, m.Add(1, 1, 2i), "in-range triplet should be accepted")
	assert.ErrorIs(t, m.Add(2, 0, 1), sparse.ErrOutOfRange, "row overflow must error")
	assert.ErrorIs(t, m.Add(0, -1, 1), sparse.ErrOutOfRange, "negative col must error")
}

// TestToCSR_DuplicateSumming ensures duplicate triplets collapse into a
// single summed entry.
func TestToCSR_DuplicateSumming(t *testing.T) {
	m, err := sparse.NewCOO(3)
	require.NoError(t, err)
	require.NoError(t, m.Add(1, 2, 1+1i))
	require.NoError(t, m.Add(1, 2, 2-3i))
	require.NoError(t, m.Add(0, 0, 5))

	csr, err := m.ToCSR()
	require.NoError(t, err)
	assert.Equal(t, 2, csr.NNZ(), "duplicates must collapse")

	y, err := csr.MatVec([]complex128{0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 3-2i, y[1], "summed duplicate value")
}

// TestToCSR_DropsCancelledEntries ensures duplicates that sum to exactly
// zero are not stored, including a zero added outright.
func TestToCSR_DropsCancelledEntries(t *testing.T) {
	m, err := sparse.NewCOO(3)
	require.NoError(t, err)
	require.NoError(t, m.Add(0, 1, 2+1i))
	require.NoError(t, m.Add(0, 1, -2-1i))
	require.NoError(t, m.Add(2, 0, 0))
	require.NoError(t, m.Add(1, 1, 4))

	csr, err := m.ToCSR()
	require.NoError(t, err)
	assert.Equal(t, 1, csr.NNZ(), "cancelled and explicit zeros must be dropped")

	y, err := csr.MatVec([]complex128{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 4, 0}, y, "only the surviving entry contributes")
}

// TestCSR_MatVec checks a hand-computed product and the length contract.
func TestCSR_MatVec(t *testing.T) {
	m, err := sparse.NewCOO(3)
	require.NoError(t, err)
	require.NoError(t, m.Add(0, 1, 2))
	require.NoError(t, m.Add(1, 0, 1i))
	require.NoError(t, m.Add(2, 2, -1))

	csr, err := m.ToCSR()
	require.NoError(t, err)

	y, err := csr.MatVec([]complex128{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []complex128{4, 1i, -3}, y, "hand-computed sparse product")

	_, err = csr.MatVec([]complex128{1})
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch, "short vector must error")
}

// TestCSR_OneNorm verifies the maximum absolute column sum.
func TestCSR_OneNorm(t *testing.T) {
	m, err := sparse.NewCOO(2)
	require.NoError(t, err)
	require.NoError(t, m.Add(0, 0, 3))
	require.NoError(t, m.Add(1, 0, 4i))
	require.NoError(t, m.Add(0, 1, 1))

	csr, err := m.ToCSR()
	require.NoError(t, err)
	assert.InDelta(t, 7.0, csr.OneNorm(), 1e-15, "column 0 sums |3| + |4i|")
}

// TestExpMul_Diagonal checks exp(z·D)·v against the closed form on a
// diagonal matrix.
func TestExpMul_Diagonal(t *testing.T) {
	m, err := sparse.NewCOO(2)
	require.NoError(t, err)
	require.NoError(t, m.Add(0, 0, 1))
	require.NoError(t, m.Add(1, 1, -2))

	csr, err := m.ToCSR()
	require.NoError(t, err)

	z := complex(0, -1.3)
	w, err := sparse.ExpMul(csr, z, []complex128{1, 1})
	require.NoError(t, err)

	want0 := cmplx.Exp(z)
	want1 := cmplx.Exp(-2 * z)
	assert.InDelta(t, real(want0), real(w[0]), 1e-12, "diagonal exponential, entry 0")
	assert.InDelta(t, imag(want0), imag(w[0]), 1e-12)
	assert.InDelta(t, real(want1), real(w[1]), 1e-12, "diagonal exponential, entry 1")
	assert.InDelta(t, imag(want1), imag(w[1]), 1e-12)
}

// TestExpMul_PauliXRotation checks the 2×2 off-diagonal block:
// exp(−it·X)·|0⟩ = cos(t)|0⟩ − i·sin(t)|1⟩.
func TestExpMul_PauliXRotation(t *testing.T) {
	m, err := sparse.NewCOO(2)
	require.NoError(t, err)
	require.NoError(t, m.Add(0, 1, 1))
	require.NoError(t, m.Add(1, 0, 1))

	csr, err := m.ToCSR()
	require.NoError(t, err)

	tt := 0.9
	w, err := sparse.ExpMul(csr, complex(0, -tt), []complex128{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(tt), real(w[0]), 1e-12, "cos component")
	assert.InDelta(t, -math.Sin(tt), imag(w[1]), 1e-12, "−i·sin component")
	assert.InDelta(t, 0.0, imag(w[0]), 1e-12)
	assert.InDelta(t, 0.0, real(w[1]), 1e-12)
}

// TestExpMul_ZeroVector confirms the zero vector short-circuit.
func TestExpMul_ZeroVector(t *testing.T) {
	m, err := sparse.NewCOO(2)
	require.NoError(t, err)
	require.NoError(t, m.Add(0, 1, 3))
	csr, err := m.ToCSR()
	require.NoError(t, err)

	w, err := sparse.ExpMul(csr, 1, []complex128{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0}, w, "exp of anything fixes the zero vector")
}

// TestExpMul_NormPreserved verifies unitarity of exp(−itH) for a
// Hermitian sparse matrix.
func TestExpMul_NormPreserved(t *testing.T) {
	m, err := sparse.NewCOO(3)
	require.NoError(t, err)
	require.NoError(t, m.Add(0, 1, 1-2i))
	require.NoError(t, m.Add(1, 0, 1+2i))
	require.NoError(t, m.Add(1, 2, 0.5))
	require.NoError(t, m.Add(2, 1, 0.5))
	require.NoError(t, m.Add(2, 2, -1))

	csr, err := m.ToCSR()
	require.NoError(t, err)

	v := []complex128{complex(0.5, 0.1), complex(-0.3, 0.7), complex(0.2, -0.35)}
	var norm float64
	for _, x := range v {
		norm += real(x)*real(x) + imag(x)*imag(x)
	}

	w, err := sparse.ExpMul(csr, complex(0, -2.7), v)
	require.NoError(t, err)
	var got float64
	for _, x := range w {
		got += real(x)*real(x) + imag(x)*imag(x)
	}
	assert.InDelta(t, norm, got, 1e-12, "Hermitian generator must preserve the norm")
}
