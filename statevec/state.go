package statevec

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/fermiq/circuit"
)

// maxQubits bounds register sizes to keep 2ⁿ amplitude allocations sane.
const maxQubits = 30

var (
	// ErrBadQubitCount is returned for n <= 0 or n > 30 registers.
	ErrBadQubitCount = errors.New("statevec: qubit count out of range")

	// ErrSizeMismatch indicates a circuit or state over a different
	// register size than the receiver.
	ErrSizeMismatch = errors.New("statevec: register size mismatch")

	// ErrBadIndex indicates a basis index outside [0, 2ⁿ).
	ErrBadIndex = errors.New("statevec: basis index out of range")

	// ErrUnknownGate indicates a gate kind the simulator cannot apply.
	ErrUnknownGate = errors.New("statevec: unknown gate kind")
)

// State is a full statevector over n qubits. Amplitude i is the
// coefficient of the computational basis state whose qubit k occupation
// is bit k of i.
type State struct {
	n    int
	amps []complex128
}

// New returns the all-zeros register |0…0⟩ over n qubits.
func New(n int) (*State, error) {
	if n <= 0 || n > maxQubits {
		return nil, ErrBadQubitCount
	}
	s := &State{n: n, amps: make([]complex128, 1<<n)}
	s.amps[0] = 1

	return s, nil
}

// NewBasis returns the computational basis state |index⟩.
func NewBasis(n int, index int) (*State, error) {
	s, err := New(n)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.amps) {
		return nil, ErrBadIndex
	}
	s.amps[0] = 0
	s.amps[index] = 1

	return s, nil
}

// NewFilled returns the basis state with the first eta qubits occupied
// (the vacuum-filled reference state of the rectangular synthesis).
func NewFilled(n, eta int) (*State, error) {
	if eta < 0 || eta > n {
		return nil, ErrBadIndex
	}

	return NewBasis(n, (1<<eta)-1)
}

// RandomState returns a Haar-random state over n qubits: independent
// complex Gaussian amplitudes from a seeded source, normalized.
// Identical (n, seed) pairs yield identical states.
func RandomState(n int, seed int64) (*State, error) {
	s, err := New(n)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	var norm float64
	for i := range s.amps {
		s.amps[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		norm += real(s.amps[i])*real(s.amps[i]) + imag(s.amps[i])*imag(s.amps[i])
	}
	norm = math.Sqrt(norm)
	for i := range s.amps {
		s.amps[i] /= complex(norm, 0)
	}

	return s, nil
}

// FromAmplitudes builds a state from a 2ⁿ amplitude slice (copied).
func FromAmplitudes(n int, amps []complex128) (*State, error) {
	if n <= 0 || n > maxQubits {
		return nil, ErrBadQubitCount
	}
	if len(amps) != 1<<n {
		return nil, ErrSizeMismatch
	}
	s := &State{n: n, amps: make([]complex128, len(amps))}
	copy(s.amps, amps)

	return s, nil
}

// NumQubits reports the register size.
func (s *State) NumQubits() int { return s.n }

// Amplitudes returns a copy of the amplitude slice.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)

	return out
}

// Amplitude returns amplitude i.
func (s *State) Amplitude(i int) (complex128, error) {
	if i < 0 || i >= len(s.amps) {
		return 0, ErrBadIndex
	}

	return s.amps[i], nil
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	cp := &State{n: s.n, amps: make([]complex128, len(s.amps))}
	copy(cp.amps, s.amps)

	return cp
}

// Norm returns the 2-norm of the state (1 for any physical state).
func (s *State) Norm() float64 {
	var acc float64
	for _, a := range s.amps {
		acc += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(acc)
}

// ApplyGate applies a single gate in place. O(2ⁿ), no allocation.
func (s *State) ApplyGate(g circuit.Gate) error {
	if g.Target < 0 || g.MaxQubit() >= s.n {
		return ErrSizeMismatch
	}
	switch g.Kind {
	case circuit.X:
		s.applyX(g.Target)
	case circuit.Phase:
		s.applyPhase(g.Target, g.Alpha)
	case circuit.Givens:
		s.applyGivens(g.Target, g.Kernel())
	default:
		return ErrUnknownGate
	}

	return nil
}

// Apply runs every gate of c over the state in order.
func (s *State) Apply(c *circuit.Circuit) error {
	if c == nil {
		return circuit.ErrNilCircuit
	}
	if c.NumQubits() != s.n {
		return ErrSizeMismatch
	}
	for _, g := range c.Gates() {
		if err := s.ApplyGate(g); err != nil {
			return err
		}
	}

	return nil
}

func (s *State) applyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *State) applyPhase(q int, alpha float64) {
	bit := 1 << q
	phase := cmplx.Exp(complex(0, alpha))
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= phase
		}
	}
}

// applyGivens mixes the single-occupation amplitudes of the adjacent
// pair (q, q+1). Index i10 has bit q set and bit q+1 clear; its partner
// i01 differs in both bits. The |00⟩ and |11⟩ amplitudes are fixed
// points of the det-1 kernel.
func (s *State) applyGivens(q int, k [2][2]complex128) {
	lo := 1 << q
	hi := 1 << (q + 1)
	var i01 int
	var a10, a01 complex128
	for i10 := range s.amps {
		if i10&lo == 0 || i10&hi != 0 {
			continue
		}
		i01 = i10 ^ lo ^ hi
		a10, a01 = s.amps[i10], s.amps[i01]
		s.amps[i10] = k[0][0]*a10 + k[0][1]*a01
		s.amps[i01] = k[1][0]*a10 + k[1][1]*a01
	}
}

// InnerProduct returns ⟨s|t⟩.
func InnerProduct(s, t *State) (complex128, error) {
	if s == nil || t == nil {
		return 0, ErrSizeMismatch
	}
	if s.n != t.n {
		return 0, ErrSizeMismatch
	}
	var acc complex128
	for i := range s.amps {
		acc += cmplx.Conj(s.amps[i]) * t.amps[i]
	}

	return acc, nil
}

// Fidelity returns |⟨s|t⟩|², the squared overlap the verifier reports.
func Fidelity(s, t *State) (float64, error) {
	ip, err := InnerProduct(s, t)
	if err != nil {
		return 0, err
	}
	abs := cmplx.Abs(ip)

	return abs * abs, nil
}
