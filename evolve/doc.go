// Package evolve assembles and verifies time-evolution circuits for
// one-body fermionic Hamiltonians H = Σ_pq T_pq a†_p a_q.
//
// The pipeline is a strict five-stage sequence with no branching:
//
//  1. cmat.RandomHermitian — seeded coefficient matrix T
//  2. spectral.Decompose   — T = u†·diag(λ)·u
//  3. givens.Synthesize    — linear-depth basis-rotation circuit Γ(u)
//  4. EvolutionCircuit     — Γ(u), then one phase gate per qubit with
//     angle −λ_k·t, then Γ(u)†; the phase layer sits strictly between
//     the two rotation blocks and its internal order is irrelevant
//     (disjoint qubits commute)
//  5. Verify               — statevector simulation against the exact
//     sparse evolution exp(−i·t·H_JW)|ψ⟩ via jw.OneBody + sparse.ExpMul
//
// The composition identity exp(−i·t·H) = Γ(u†) · Π_k P_k(−λ_k·t) · Γ(u)
// holds exactly (the Fock lift Γ is a homomorphism and vacuum-phase
// free), so the measured fidelity differs from 1 only by floating-point
// noise. A fidelity below tolerance is a correctness failure of the
// synthesis or composition and is surfaced as ErrFidelity — never
// silently tolerated.
package evolve
