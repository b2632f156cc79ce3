package spectral

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/cmat"
)

// DefaultHermTol is the default tolerance for the Hermiticity precheck.
const DefaultHermTol = 1e-10

// phaseTol is the magnitude threshold used when canonicalizing the free
// phase of each eigenvector.
const phaseTol = 1e-12

// clusterTol is the relative gap below which adjacent eigenvalues of the
// real embedding are treated as one degenerate cluster.
const clusterTol = 1e-8

// ErrEigenFailed indicates that the underlying symmetric eigensolver did
// not converge. With finite Hermitian input this is not expected; it is
// surfaced rather than swallowed.
var ErrEigenFailed = errors.New("spectral: eigendecomposition failed to converge")

// Decomposition is the result of diagonalizing a Hermitian matrix T:
// Values are the eigenvalues in ascending order and U is the unitary
// basis transformation matrix with one conjugated eigenvector per row,
// so that U·T·U† = diag(Values).
type Decomposition struct {
	Values []float64
	U      *cmat.Dense
}

// Decompose computes eigenvalues and the basis transformation matrix of
// the Hermitian matrix t. Hermiticity is validated defensively with
// DefaultHermTol before any numerical work; a violation returns
// cmat.ErrNotHermitian instead of propagating silent garbage.
//
// Complexity: O(n³) time, O(n²) space.
func Decompose(t *cmat.Dense) (*Decomposition, error) {
	if err := cmat.ValidateHermitian(t, DefaultHermTol); err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}
	n := t.Rows()

	// Build the real symmetric embedding M = [[A, -B], [B, A]].
	emb := mat.NewSymDense(2*n, nil)
	var i, j int
	var v complex128
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = t.At(i, j)
			// SymDense keeps the upper triangle; SetSym writes both mirrors.
			if j >= i {
				emb.SetSym(i, j, real(v))
				emb.SetSym(n+i, n+j, real(v))
			}
			if n+j >= i {
				emb.SetSym(i, n+j, -imag(v))
			}
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(emb, true); !ok {
		return nil, fmt.Errorf("Decompose: %w", ErrEigenFailed)
	}
	vals := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Every eigenvalue of T shows up twice in the embedding spectrum, and
	// with degeneracy the solver may return arbitrary real mixtures inside
	// an eigenspace. Columns are therefore grouped into degenerate
	// clusters, and a cluster of 2m real columns yields m complex
	// eigenvectors by pivoted Gram-Schmidt over the complex images
	// z = x + i·y, taking the largest residual at every step. A simple
	// spectrum reduces to one image per doubled pair.
	u, err := cmat.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}
	values := make([]float64, n)
	rows := make([][]complex128, 0, n)
	scale := math.Max(1, math.Max(math.Abs(vals[0]), math.Abs(vals[2*n-1])))
	gap := clusterTol * scale

	var start, end, c, k, p int
	var nrm, bestNorm float64
	var ip, phase complex128
	for start < 2*n {
		for end = start + 1; end < 2*n && vals[end]-vals[end-1] <= gap; end++ {
		}

		// Complex images of the cluster's real columns.
		cand := make([][]complex128, end-start)
		for c = 0; c < end-start; c++ {
			z := make([]complex128, n)
			for p = 0; p < n; p++ {
				z[p] = complex(vecs.At(p, start+c), vecs.At(n+p, start+c))
			}
			cand[c] = z
		}

		kept := make([][]complex128, 0, (end-start)/2)
		for j = 0; j < (end-start)/2; j++ {
			// Pivot: the candidate with the largest residual after
			// projecting out the vectors already kept from this cluster.
			best := -1
			bestNorm = -1
			var bestW []complex128
			for c = 0; c < len(cand); c++ {
				if cand[c] == nil {
					continue
				}
				w := make([]complex128, n)
				copy(w, cand[c])
				for _, q := range kept {
					ip = 0
					for p = 0; p < n; p++ {
						ip += cmplx.Conj(q[p]) * w[p]
					}
					for p = 0; p < n; p++ {
						w[p] -= ip * q[p]
					}
				}
				nrm = 0
				for p = 0; p < n; p++ {
					nrm += real(w[p])*real(w[p]) + imag(w[p])*imag(w[p])
				}
				nrm = math.Sqrt(nrm)
				if nrm > bestNorm {
					best, bestNorm, bestW = c, nrm, w
				}
			}
			cand[best] = nil

			// Canonical phase: first significant component real positive.
			phase = 1
			for p = 0; p < n; p++ {
				if cmplx.Abs(bestW[p]) > phaseTol*bestNorm {
					phase = cmplx.Conj(bestW[p]) / complex(cmplx.Abs(bestW[p]), 0)
					break
				}
			}
			for p = 0; p < n; p++ {
				bestW[p] = bestW[p] * phase / complex(bestNorm, 0)
			}
			values[len(rows)] = vals[start+2*j]
			rows = append(rows, bestW)
			kept = append(kept, bestW)
		}
		start = end
	}

	// Row k of U is the conjugated eigenvector: U·T·U† = diag(λ).
	for k = 0; k < n; k++ {
		for p = 0; p < n; p++ {
			if err = u.Set(k, p, cmplx.Conj(rows[k][p])); err != nil {
				return nil, fmt.Errorf("Decompose: %w", err)
			}
		}
	}

	return &Decomposition{Values: values, U: u}, nil
}

// ReconstructionError returns ‖U† · diag(λ) · U − T‖max, the residual of
// the decomposition against the original matrix. Used by callers and
// tests to enforce the 1e-6 reconstruction contract.
func ReconstructionError(d *Decomposition, t *cmat.Dense) (float64, error) {
	if d == nil || d.U == nil {
		return 0, cmat.ErrNilMatrix
	}
	n := d.U.Rows()
	lam, err := cmat.NewDense(n, n)
	if err != nil {
		return 0, err
	}
	for k := 0; k < n; k++ {
		if err = lam.Set(k, k, complex(d.Values[k], 0)); err != nil {
			return 0, err
		}
	}
	ud, err := cmat.ConjTranspose(d.U)
	if err != nil {
		return 0, err
	}
	lu, err := cmat.Mul(lam, d.U)
	if err != nil {
		return 0, err
	}
	rec, err := cmat.Mul(ud, lu)
	if err != nil {
		return 0, err
	}

	return cmat.MaxAbsDiff(rec, t)
}

// UnitarityError returns ‖U·U† − I‖max for the decomposition's basis
// transformation matrix.
func UnitarityError(d *Decomposition) (float64, error) {
	if d == nil || d.U == nil {
		return 0, cmat.ErrNilMatrix
	}
	n := d.U.Rows()
	ud, err := cmat.ConjTranspose(d.U)
	if err != nil {
		return 0, err
	}
	g, err := cmat.Mul(d.U, ud)
	if err != nil {
		return 0, err
	}
	id, err := cmat.Identity(n)
	if err != nil {
		return 0, err
	}

	return cmat.MaxAbsDiff(g, id)
}
