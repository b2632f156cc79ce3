package cmat

// Dense is a dense complex128 matrix in row-major order.
// The zero value is not usable; construct with NewDense or FromRows.
// Dense never shares backing storage between instances: Clone and all
// kernels in this package allocate fresh results.
type Dense struct {
	r, c int
	data []complex128 // len == r*c, element (i,j) at data[i*c+j]
}

// NewDense allocates a zero-initialized rows×cols matrix.
// Returns ErrBadShape when rows <= 0 or cols <= 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// FromRows builds a Dense from a rectangular slice of rows.
// Returns ErrBadShape on an empty input or ragged rows.
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]complex128, r*c)}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows reports the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols reports the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns element (i, j). Returns ErrOutOfRange on bad indices and
// ErrNilMatrix on a nil receiver.
func (m *Dense) At(i, j int) (complex128, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.c+j], nil
}

// Set stores v at element (i, j). Same error contract as At.
func (m *Dense) Set(i, j int, v complex128) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	cp := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// Row returns a copy of row i; nil when i is out of range.
func (m *Dense) Row(i int) []complex128 {
	if m == nil || i < 0 || i >= m.r {
		return nil
	}
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}
