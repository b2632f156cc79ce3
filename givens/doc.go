// Package givens synthesizes linear-depth, nearest-neighbour circuits
// implementing fermionic basis rotations (Bogoliubov transforms in the
// particle-conserving sense).
//
// Square case. A unitary u (N×N) is reduced to a diagonal D by a fixed
// sequence of plane rotations G acting on ADJACENT row pairs only:
// columns left to right, rows bottom-up, so
//
//	G_m ⋯ G_1 · u = D   ⇒   u = G_1† ⋯ G_m† · D.
//
// The Fock-space lift Γ is a group homomorphism, so the circuit for
// Γ(u) is the phase layer of D followed by the two-qubit gates of the
// reversed adjoint rotations. Gate count is at most N(N−1)/2; under
// greedy ASAP layering consecutive elimination chains pipeline into
// O(N) depth (≤ 2N layers), every gate touching an adjacent pair only.
//
// Rectangular case. For an η×N matrix Q with orthonormal rows
// (η occupied orbitals), SynthesizePrepare emits a state-preparation
// circuit: X on the first η qubits, per-qubit phase corrections, then
// at most η(N−η) adjacent rotations — strictly fewer two-qubit gates
// than the square synthesis whenever 0 < η < N and N ≥ 3. The row span
// of Q is first triangularized by FREE row mixing (an η×η unitary
// changes the prepared Slater determinant only by a global phase), so
// the saved gates are genuine, not bookkeeping.
//
// Numerical policy: entries below DropTol are treated as already zero
// and produce no gate; input unitarity is validated fast-fail with
// UnitaryTol before any work.
package givens
