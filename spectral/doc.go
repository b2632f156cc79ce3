// Package spectral computes eigendecompositions of Hermitian matrices for
// the fermiq pipeline, delegating the numerical core to gonum.
//
// A complex Hermitian matrix T = A + iB is embedded into the 2N×2N real
// symmetric matrix
//
//	M = ⎡A −B⎤
//	    ⎣B  A⎦
//
// whose spectrum is that of T with every eigenvalue doubled. gonum's
// EigenSym factorizes M; each real eigenvector (x; y) maps back to a
// complex candidate z = x + i·y. Within a degenerate cluster of 2m
// embedding columns the candidates span the m-dimensional complex
// eigenspace twice over, so m eigenvectors are extracted by pivoted
// Gram-Schmidt (largest residual first). A simple spectrum reduces to
// one candidate per doubled pair.
//
// Conventions (eigenvalue order and eigenvector phases are free choices
// of any decomposition; these pin them down):
//   - Eigenvalues are returned in ascending order, exactly as produced
//     by EigenSym; ties keep the embedding's pair order (stable).
//   - U holds one eigenvector per ROW, conjugated, so that
//     U · T · U† = diag(λ) and U · U† = I.
//   - Each eigenvector's free global phase is canonicalized: the first
//     component with magnitude above the phase tolerance is made real
//     and positive. Decompose is therefore fully deterministic.
//
// Complexity: O(N³) time, O(N²) space, inherited from the symmetric QR
// algorithm underneath gonum.
package spectral
