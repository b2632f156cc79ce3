package evolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fermiq/circuit"
	"github.com/katalvlaran/fermiq/cmat"
	"github.com/katalvlaran/fermiq/givens"
	"github.com/katalvlaran/fermiq/jw"
	"github.com/katalvlaran/fermiq/sparse"
	"github.com/katalvlaran/fermiq/spectral"
	"github.com/katalvlaran/fermiq/statevec"
)

// FidelityTol is the acceptance threshold of the verifier: a run passes
// when fidelity >= 1 − FidelityTol.
const FidelityTol = 1e-5

// ErrFidelity reports a verification fidelity below tolerance. It
// signals a defect in synthesis or composition order, not a numerical
// nuisance, and is therefore an error rather than a log line.
var ErrFidelity = errors.New("evolve: fidelity below tolerance")

// Report is the outcome of one pipeline run.
type Report struct {
	Modes         int
	Seed          int64
	Time          float64
	Eigenvalues   []float64
	Circuit       *circuit.Circuit
	TwoQubitGates int
	TwoQubitDepth int
	Fidelity      float64
}

// EvolutionCircuit composes the circuit implementing exp(−i·t·H) from a
// spectral decomposition of the coefficient matrix: the rotation into
// the eigenbasis Γ(u), the eigenvalue phase layer P_k(−λ_k·t), and the
// rotation back Γ(u)†. The phase layer is appended strictly between the
// two rotation blocks, one gate per qubit in ascending qubit order
// (any order would do — the gates act on disjoint qubits).
func EvolutionCircuit(dec *spectral.Decomposition, t float64) (*circuit.Circuit, error) {
	if dec == nil || dec.U == nil {
		return nil, fmt.Errorf("EvolutionCircuit: %w", cmat.ErrNilMatrix)
	}
	n := dec.U.Rows()

	into, err := givens.Synthesize(dec.U)
	if err != nil {
		return nil, fmt.Errorf("EvolutionCircuit: %w", err)
	}
	circ, err := circuit.New(n)
	if err != nil {
		return nil, fmt.Errorf("EvolutionCircuit: %w", err)
	}
	if err = circ.Compose(into); err != nil {
		return nil, fmt.Errorf("EvolutionCircuit: %w", err)
	}
	for k := 0; k < n; k++ {
		if err = circ.Append(circuit.NewPhase(k, -dec.Values[k]*t)); err != nil {
			return nil, fmt.Errorf("EvolutionCircuit: %w", err)
		}
	}
	if err = circ.Compose(into.Inverse()); err != nil {
		return nil, fmt.Errorf("EvolutionCircuit: %w", err)
	}

	return circ, nil
}

// ExactEvolve computes the reference state exp(−i·t·H_JW)|ψ⟩ through
// the sparse Jordan–Wigner matrix of the coefficient matrix and the
// matrix-free exponential action. ψ is not mutated.
func ExactEvolve(t *cmat.Dense, psi *statevec.State, time float64) (*statevec.State, error) {
	h, err := jw.OneBody(t)
	if err != nil {
		return nil, fmt.Errorf("ExactEvolve: %w", err)
	}
	amps, err := sparse.ExpMul(h, complex(0, -time), psi.Amplitudes())
	if err != nil {
		return nil, fmt.Errorf("ExactEvolve: %w", err)
	}
	out, err := statevec.FromAmplitudes(psi.NumQubits(), amps)
	if err != nil {
		return nil, fmt.Errorf("ExactEvolve: %w", err)
	}

	return out, nil
}

// Verify simulates circ on ψ and returns the fidelity |⟨sim|exact⟩|²
// against the exact evolution of the coefficient matrix t. ψ is not
// mutated. Verify only measures; thresholding is the caller's policy.
func Verify(circ *circuit.Circuit, t *cmat.Dense, psi *statevec.State, time float64) (float64, error) {
	sim := psi.Clone()
	if err := sim.Apply(circ); err != nil {
		return 0, fmt.Errorf("Verify: %w", err)
	}
	exact, err := ExactEvolve(t, psi, time)
	if err != nil {
		return 0, fmt.Errorf("Verify: %w", err)
	}
	fid, err := statevec.Fidelity(sim, exact)
	if err != nil {
		return 0, fmt.Errorf("Verify: %w", err)
	}

	return fid, nil
}

// Run executes the full pipeline for modes qubits: generate the seeded
// Hamiltonian, decompose, synthesize, compose, and verify against a
// Haar-random initial state drawn from the same seed.
//
// On a fidelity below FidelityTol the Report is still returned together
// with ErrFidelity so callers can inspect the failing run.
func Run(modes int, seed int64, time float64) (*Report, error) {
	t, err := cmat.RandomHermitian(modes, seed)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	dec, err := spectral.Decompose(t)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	circ, err := EvolutionCircuit(dec, time)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	psi, err := statevec.RandomState(modes, seed)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	fid, err := Verify(circ, t, psi, time)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	rep := &Report{
		Modes:         modes,
		Seed:          seed,
		Time:          time,
		Eigenvalues:   dec.Values,
		Circuit:       circ,
		TwoQubitGates: circ.TwoQubitCount(),
		TwoQubitDepth: circ.TwoQubitDepth(),
		Fidelity:      fid,
	}
	if fid < 1-FidelityTol {
		return rep, ErrFidelity
	}

	return rep, nil
}
