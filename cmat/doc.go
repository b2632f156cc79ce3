// Package cmat provides dense complex-valued matrices for the fermiq
// pipeline: storage, conjugate-transpose algebra, Hermiticity and
// unitarity validation, and seeded random Hermitian generation.
//
// 🚀 What is cmat?
//
//	A small, deterministic complex128 matrix kernel used by every stage
//	of the time-evolution pipeline:
//	  • Dense — flat row-major complex128 storage with At/Set/Clone
//	  • Mul / ConjTranspose / MatVec — the three kernels the pipeline needs
//	  • Validators — fail-fast Hermiticity, unitarity and shape checks
//	  • RandomHermitian — bit-reproducible seeded Hamiltonian coefficients
//
// ✨ Design rules:
//   - Deterministic loop orders everywhere; identical inputs produce
//     identical results bit-for-bit.
//   - Sentinel errors only (errors.Is); no panics on user input.
//   - Inputs are never mutated; every kernel allocates its result.
//
// Performance:
//
//   - Mul:            O(n³) time, O(n²) space
//   - ConjTranspose:  O(n²) time
//   - ValidateUnitary: O(n³) time (forms U·U† once)
//
// See example_test.go for usage.
package cmat
