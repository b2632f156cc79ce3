package givens

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/fermiq/circuit"
	"github.com/katalvlaran/fermiq/cmat"
)

const (
	// DropTol is the magnitude below which a matrix entry is treated as
	// zero: no elimination rotation is emitted for it.
	DropTol = 1e-12

	// UnitaryTol is the tolerance for the fast-fail unitarity /
	// row-orthonormality precheck on synthesizer input.
	UnitaryTol = 1e-8
)

// Decompose reduces the square unitary u to gates: a per-qubit phase
// layer (the residual diagonal) and a sequence of adjacent two-qubit
// Givens gates, returned in circuit application order (phases first).
// u is not mutated.
//
// Complexity: O(N³) time for the eliminations, O(N²) gates worst case.
func Decompose(u *cmat.Dense) (phases []float64, rotations []circuit.Gate, err error) {
	if err = cmat.ValidateSquare(u); err != nil {
		return nil, nil, fmt.Errorf("Decompose: %w", err)
	}
	if err = cmat.ValidateUnitary(u, UnitaryTol); err != nil {
		return nil, nil, fmt.Errorf("Decompose: %w", err)
	}
	n := u.Rows()
	v := u.Clone()

	// Eliminate below-diagonal entries with adjacent-row rotations:
	// columns left to right, rows bottom-up. Rotating rows (r-1, r) to
	// zero v[r][c] never revives zeros in columns < c because both rows
	// already vanish there.
	var c, r int
	var a, b complex128
	for c = 0; c < n-1; c++ {
		for r = n - 1; r > c; r-- {
			b, _ = v.At(r, c)
			if cmplx.Abs(b) <= DropTol {
				_ = v.Set(r, c, 0)
				continue
			}
			a, _ = v.At(r-1, c)
			g := elimRowKernel(a, b)
			applyRowRotation(v, r-1, g)
			// The circuit needs the adjoint rotation, in reverse order;
			// record the adjoint gate now and reverse once at the end.
			rotations = append(rotations, gateFromKernel(r-1, conj2(g)))
		}
	}
	reverseGates(rotations)

	// The residual upper triangle of a unitary is diagonal with
	// unit-modulus entries; its Fock lift is a phase per qubit.
	phases = make([]float64, n)
	var d complex128
	for r = 0; r < n; r++ {
		d, _ = v.At(r, r)
		phases[r] = cmplx.Phase(d)
	}

	return phases, rotations, nil
}

// Synthesize builds the circuit implementing the basis rotation Γ(u)
// for a square unitary u over a register of u.Rows() qubits. The
// inverse rotation circuit is Synthesize(u).Inverse(), which equals the
// synthesis of u† gate for gate.
func Synthesize(u *cmat.Dense) (*circuit.Circuit, error) {
	phases, rotations, err := Decompose(u)
	if err != nil {
		return nil, fmt.Errorf("Synthesize: %w", err)
	}
	circ, err := circuit.New(u.Rows())
	if err != nil {
		return nil, fmt.Errorf("Synthesize: %w", err)
	}
	for q, alpha := range phases {
		if math.Abs(alpha) <= DropTol {
			continue
		}
		if err = circ.Append(circuit.NewPhase(q, alpha)); err != nil {
			return nil, fmt.Errorf("Synthesize: %w", err)
		}
	}
	for _, g := range rotations {
		if err = circ.Append(g); err != nil {
			return nil, fmt.Errorf("Synthesize: %w", err)
		}
	}

	return circ, nil
}

// SynthesizePrepare builds the state-preparation circuit for an η×N
// matrix q with orthonormal rows: applied to the vacuum, the circuit
// yields the Slater determinant occupying the η orbitals described by
// the rows of q. Uses at most η(N−η) two-qubit gates.
func SynthesizePrepare(q *cmat.Dense) (*circuit.Circuit, error) {
	if err := cmat.ValidateUnitary(q, UnitaryTol); err != nil {
		return nil, fmt.Errorf("SynthesizePrepare: %w", err)
	}
	eta, n := q.Rows(), q.Cols()
	w := q.Clone()

	// Stage 1 — free row reduction. Mixing rows by an η×η unitary moves
	// the prepared state only by a global phase, so the top-right
	// triangle is zeroed without emitting a single gate: after this,
	// row k is supported on columns 0..N-η+k.
	var col, k int
	var a, b complex128
	for col = n - 1; col > n-eta; col-- {
		for k = 0; k < col-(n-eta); k++ {
			b, _ = w.At(k, col)
			if cmplx.Abs(b) <= DropTol {
				_ = w.Set(k, col, 0)
				continue
			}
			a, _ = w.At(k+1, col)
			applyRowRotation(w, k, rowMergeKernel(a, b))
		}
	}

	// Stage 2 — adjacent-column eliminations, each one a gate. Row k is
	// squeezed from column N-η+k down to column k; rows above are
	// orthogonal to the already-reduced rows, so their leading zeros
	// hold automatically.
	var rotations []circuit.Gate
	for k = 0; k < eta; k++ {
		for col = n - eta + k; col > k; col-- {
			b, _ = w.At(k, col)
			if cmplx.Abs(b) <= DropTol {
				_ = w.Set(k, col, 0)
				continue
			}
			a, _ = w.At(k, col-1)
			g := elimColKernel(a, b)
			applyColRotation(w, col-1, g)
			rotations = append(rotations, gateFromKernel(col-1, g))
		}
	}
	reverseGates(rotations)

	circ, err := circuit.New(n)
	if err != nil {
		return nil, fmt.Errorf("SynthesizePrepare: %w", err)
	}
	// Occupy the first η orbitals, correct the residual diagonal
	// phases, then rotate into the target orbital basis.
	var d complex128
	for k = 0; k < eta; k++ {
		if err = circ.Append(circuit.NewX(k)); err != nil {
			return nil, fmt.Errorf("SynthesizePrepare: %w", err)
		}
	}
	for k = 0; k < eta; k++ {
		d, _ = w.At(k, k)
		if alpha := -cmplx.Phase(d); math.Abs(alpha) > DropTol {
			if err = circ.Append(circuit.NewPhase(k, alpha)); err != nil {
				return nil, fmt.Errorf("SynthesizePrepare: %w", err)
			}
		}
	}
	for _, g := range rotations {
		if err = circ.Append(g); err != nil {
			return nil, fmt.Errorf("SynthesizePrepare: %w", err)
		}
	}

	return circ, nil
}

// kernel2 is a 2×2 complex matrix in [row][col] order.
type kernel2 [2][2]complex128

// elimRowKernel returns the unitary acting on rows (r-1, r) that zeroes
// the lower entry b against the upper entry a: row r-1 receives the
// combined weight, row r's target column becomes exactly zero.
func elimRowKernel(a, b complex128) kernel2 {
	rho := complex(math.Hypot(cmplx.Abs(a), cmplx.Abs(b)), 0)

	return kernel2{
		{cmplx.Conj(a) / rho, cmplx.Conj(b) / rho},
		{-b / rho, a / rho},
	}
}

// rowMergeKernel returns the unitary on rows (k, k+1) that zeroes the
// UPPER entry b against the lower entry a, pushing weight downward.
// Used only in the gate-free row-reduction stage.
func rowMergeKernel(a, b complex128) kernel2 {
	rho := complex(math.Hypot(cmplx.Abs(a), cmplx.Abs(b)), 0)

	return kernel2{
		{a / rho, -b / rho},
		{cmplx.Conj(b) / rho, cmplx.Conj(a) / rho},
	}
}

// elimColKernel returns the unitary acting on columns (c-1, c) that
// zeroes entry b (column c) against entry a (column c-1) of one row.
func elimColKernel(a, b complex128) kernel2 {
	rho := complex(math.Hypot(cmplx.Abs(a), cmplx.Abs(b)), 0)

	return kernel2{
		{cmplx.Conj(a) / rho, -b / rho},
		{cmplx.Conj(b) / rho, a / rho},
	}
}

// conj2 returns the conjugate transpose of a 2×2 kernel.
func conj2(g kernel2) kernel2 {
	return kernel2{
		{cmplx.Conj(g[0][0]), cmplx.Conj(g[1][0])},
		{cmplx.Conj(g[0][1]), cmplx.Conj(g[1][1])},
	}
}

// applyRowRotation left-multiplies rows (r, r+1) of m by g in place.
func applyRowRotation(m *cmat.Dense, r int, g kernel2) {
	var x, y complex128
	for j := 0; j < m.Cols(); j++ {
		x, _ = m.At(r, j)
		y, _ = m.At(r+1, j)
		_ = m.Set(r, j, g[0][0]*x+g[0][1]*y)
		_ = m.Set(r+1, j, g[1][0]*x+g[1][1]*y)
	}
}

// applyColRotation right-multiplies columns (c, c+1) of m by g in place.
func applyColRotation(m *cmat.Dense, c int, g kernel2) {
	var x, y complex128
	for i := 0; i < m.Rows(); i++ {
		x, _ = m.At(i, c)
		y, _ = m.At(i, c+1)
		_ = m.Set(i, c, g[0][0]*x+g[1][0]*y)
		_ = m.Set(i, c+1, g[0][1]*x+g[1][1]*y)
	}
}

// gateFromKernel converts a det-1 kernel [[x, y], [−conj(y), conj(x)]]
// acting on modes (target, target+1) into its Givens gate angles:
// θ = atan2(|y|, |x|), α = arg x, β = arg y.
func gateFromKernel(target int, g kernel2) circuit.Gate {
	x, y := g[0][0], g[0][1]
	theta := math.Atan2(cmplx.Abs(y), cmplx.Abs(x))
	var alpha, beta float64
	if cmplx.Abs(x) > DropTol {
		alpha = cmplx.Phase(x)
	}
	if cmplx.Abs(y) > DropTol {
		beta = cmplx.Phase(y)
	}

	return circuit.NewGivens(target, theta, alpha, beta)
}

// reverseGates reverses a gate slice in place.
func reverseGates(gs []circuit.Gate) {
	for l, r := 0, len(gs)-1; l < r; l, r = l+1, r-1 {
		gs[l], gs[r] = gs[r], gs[l]
	}
}
