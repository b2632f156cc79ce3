// Package statevec is a full-statevector simulator for fermiq circuits.
//
// A State over n qubits holds 2ⁿ complex128 amplitudes; qubit k maps to
// bit k of the basis index (little-endian). Gate kernels are applied as
// bit-indexed sweeps over the amplitude slice:
//
//   - X      — swap the amplitudes of every index pair differing in bit k
//   - Phase  — multiply amplitudes with bit k set by e^{iα}
//   - Givens — mix the {|10⟩, |01⟩} amplitudes of each adjacent pair
//     through the gate's 2×2 kernel; |00⟩ and |11⟩ are untouched
//
// All sweeps are in-place over disjoint index pairs, so application is
// O(2ⁿ) per gate with no allocation. Simulation is exact (no sampling,
// no noise) — this package is the correctness reference the verifier
// compares against sparse matrix exponentiation.
//
// RandomState draws Haar-distributed states from a seeded Gaussian
// source, so every verification run is reproducible.
package statevec
