// Package fermiq compiles and verifies quantum circuits for the time
// evolution of free (one-body) fermionic Hamiltonians.
//
// 🚀 What is fermiq?
//
//	A numeric library that walks the full compilation pipeline:
//		• Complex matrices: dense Hermitian/unitary primitives & validators
//		• Spectral: eigendecomposition of Hermitian coefficient matrices
//		• Synthesis: square unitaries → phase layer + adjacent Givens gates
//		• Preparation: Slater determinants in at most η(N−η) rotations
//		• Transform: Jordan–Wigner lift of one-body operators, sparse CSR
//		• Verification: statevector simulation vs. exact exp(−itH) action
//		• Export: OpenQASM 2.0 over the standard qelib1 gate set
//
// ✨ Why choose fermiq?
//
//   - Exact contracts – every synthesis is verified against the dense or
//     sparse reference to fidelity 1−1e-5 or better
//   - Linear depth – adjacent-pair rotations pack into O(N) layers
//   - Deterministic – seeded generators, stable eigenvalue order,
//     byte-identical QASM export across runs
//
// Under the hood, everything is organized per concern:
//
//	cmat/     — dense complex matrices, validators, seeded Hermitian draws
//	spectral/ — Hermitian eigendecomposition via a real symmetric embedding
//	circuit/  — gate and circuit types, inversion, depth metrics
//	givens/   — square & rectangular Givens synthesis
//	statevec/ — full statevector simulator for X, phase and Givens gates
//	sparse/   — COO/CSR matrices and the matrix-free exponential action
//	jw/       — Jordan–Wigner transform of one-body operators
//	evolve/   — the end-to-end pipeline: decompose, compile, verify
//	qasm/     — OpenQASM 2.0 serialization
//
// The cmd/fermisim binary drives the pipeline from the command line.
//
//	go get github.com/katalvlaran/fermiq
package fermiq
