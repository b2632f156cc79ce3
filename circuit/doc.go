// Package circuit models quantum circuits over a fixed register of
// qubits as ordered gate sequences, restricted to the gate set the
// fermiq pipeline needs:
//
//   - X      — Pauli flip, used to occupy orbitals for state preparation
//   - Phase  — diag(1, e^{iα}) on one qubit (eigenvalue phase layer and
//     diagonal factors of the Givens decomposition)
//   - Givens — a number-conserving two-qubit rotation acting on the
//     ADJACENT pair (Target, Target+1); nearest-neighbour connectivity
//     is a structural invariant enforced on Append, not a lint check
//
// A Givens gate with angles (θ, α, β) acts on the occupation subspace
// {|10⟩, |01⟩} of its qubit pair as the SU(2) kernel
//
//	⎡ e^{iα}·cosθ   e^{iβ}·sinθ ⎤
//	⎣ −e^{−iβ}·sinθ  e^{−iα}·cosθ ⎦
//
// and leaves |00⟩ and |11⟩ fixed (its determinant is 1). Because the
// pair is adjacent, the Jordan–Wigner strings cancel and this 4×4 action
// is exact on every particle sector.
//
// Circuits are append-only; Inverse and Compose allocate new circuits.
// Depth is computed by greedy ASAP layering: a gate occupies the first
// layer after the last layer touching any of its qubits, which is the
// scheduling model behind the linear-depth guarantee of the synthesizer.
package circuit
