package sparse

import (
	"errors"
	"sort"
)

var (
	// ErrBadShape is returned for non-positive dimensions.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a triplet index outside the matrix.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates a vector length incompatible with
	// the matrix dimension.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil receiver.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// COO is a square sparse matrix under assembly: an unordered triplet
// list where duplicate (row, col) entries accumulate on freeze.
type COO struct {
	n    int
	rows []int
	cols []int
	vals []complex128
}

// NewCOO returns an empty n×n assembly matrix.
func NewCOO(n int) (*COO, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &COO{n: n}, nil
}

// Dim reports the matrix dimension.
func (m *COO) Dim() int { return m.n }

// Add accumulates v at (i, j). Duplicates are summed when the matrix
// is frozen to CSR; entries that sum to exactly zero are dropped there.
func (m *COO) Add(i, j int, v complex128) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrOutOfRange
	}
	m.rows = append(m.rows, i)
	m.cols = append(m.cols, j)
	m.vals = append(m.vals, v)

	return nil
}

// CSR is a frozen compressed-sparse-row matrix.
type CSR struct {
	n      int
	rowPtr []int
	col    []int
	val    []complex128
}

// ToCSR freezes the assembly matrix: triplets are sorted row-major,
// duplicates summed, exact zeros dropped. The COO is not consumed.
//
// Complexity: O(nnz·log nnz).
func (m *COO) ToCSR() (*CSR, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	idx := make([]int, len(m.vals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if m.rows[ia] != m.rows[ib] {
			return m.rows[ia] < m.rows[ib]
		}

		return m.cols[ia] < m.cols[ib]
	})

	// Sum duplicates first; an entry may pass through zero and come back.
	var mRow, mCol []int
	var mVal []complex128
	var lastR, lastC int = -1, -1
	for _, t := range idx {
		r, c, v := m.rows[t], m.cols[t], m.vals[t]
		if r == lastR && c == lastC {
			mVal[len(mVal)-1] += v
			continue
		}
		mRow = append(mRow, r)
		mCol = append(mCol, c)
		mVal = append(mVal, v)
		lastR, lastC = r, c
	}

	// Keep only the entries that survived summing as exact nonzeros.
	out := &CSR{n: m.n, rowPtr: make([]int, m.n+1)}
	for i, v := range mVal {
		if v == 0 {
			continue
		}
		out.col = append(out.col, mCol[i])
		out.val = append(out.val, v)
		out.rowPtr[mRow[i]+1] = len(out.val)
	}
	// Forward-fill row pointers for empty rows.
	for r := 1; r <= m.n; r++ {
		if out.rowPtr[r] < out.rowPtr[r-1] {
			out.rowPtr[r] = out.rowPtr[r-1]
		}
	}

	return out, nil
}

// Dim reports the matrix dimension.
func (m *CSR) Dim() int { return m.n }

// NNZ reports the number of stored entries.
func (m *CSR) NNZ() int { return len(m.val) }

// MatVec computes y = A·x into a fresh slice. O(nnz).
func (m *CSR) MatVec(x []complex128) ([]complex128, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(x) != m.n {
		return nil, ErrDimensionMismatch
	}
	y := make([]complex128, m.n)
	var r, p int
	var acc complex128
	for r = 0; r < m.n; r++ {
		acc = 0
		for p = m.rowPtr[r]; p < m.rowPtr[r+1]; p++ {
			acc += m.val[p] * x[m.col[p]]
		}
		y[r] = acc
	}

	return y, nil
}

// OneNorm returns the maximum absolute column sum ‖A‖₁, the scaling
// estimate ExpMul uses.
func (m *CSR) OneNorm() float64 {
	colSum := make([]float64, m.n)
	for r := 0; r < m.n; r++ {
		for p := m.rowPtr[r]; p < m.rowPtr[r+1]; p++ {
			colSum[m.col[p]] += cAbs(m.val[p])
		}
	}
	var worst float64
	for _, s := range colSum {
		if s > worst {
			worst = s
		}
	}

	return worst
}
