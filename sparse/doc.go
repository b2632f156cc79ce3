// Package sparse provides complex sparse matrices and the matrix-free
// evolution kernel the fermiq verifier is built on.
//
// COO is the mutable assembly format (triplets, duplicates allowed and
// summed); CSR is the frozen compute format with an O(nnz) matvec.
// ExpMul computes w = exp(z·A)·v without ever materializing exp(z·A):
// the action is approximated by a scaled Taylor series,
//
//	exp(z·A)·v = (exp((z/s)·A))^s · v,
//
// with s chosen from ‖A‖₁·|z| so each inner series converges in a few
// dozen terms. Memory is O(dim); a dense exponential is never formed —
// that is the efficiency contract of the exact-evolution reference, not
// an optimization.
package sparse
