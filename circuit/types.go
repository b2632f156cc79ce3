package circuit

import (
	"math"
	"math/cmplx"
)

// GateKind enumerates the supported gate kinds.
type GateKind uint8

const (
	// X is the Pauli-X flip on qubit Target.
	X GateKind = iota

	// Phase is diag(1, e^{iAlpha}) on qubit Target.
	Phase

	// Givens is the number-conserving rotation on the adjacent pair
	// (Target, Target+1) with angles (Theta, Alpha, Beta).
	Givens
)

// Gate is one instruction. Theta, Alpha and Beta are interpreted per
// Kind: X uses none, Phase uses Alpha only, Givens uses all three.
type Gate struct {
	Kind   GateKind
	Target int
	Theta  float64
	Alpha  float64
	Beta   float64
}

// NewX returns a Pauli-X gate on qubit q.
func NewX(q int) Gate { return Gate{Kind: X, Target: q} }

// NewPhase returns a phase gate diag(1, e^{iAlpha}) on qubit q.
func NewPhase(q int, alpha float64) Gate {
	return Gate{Kind: Phase, Target: q, Alpha: wrapAngle(alpha)}
}

// NewGivens returns a Givens rotation on the pair (q, q+1).
func NewGivens(q int, theta, alpha, beta float64) Gate {
	return Gate{Kind: Givens, Target: q, Theta: theta, Alpha: wrapAngle(alpha), Beta: wrapAngle(beta)}
}

// IsTwoQubit reports whether the gate touches two qubits.
func (g Gate) IsTwoQubit() bool { return g.Kind == Givens }

// MaxQubit returns the highest qubit index the gate touches.
func (g Gate) MaxQubit() int {
	if g.Kind == Givens {
		return g.Target + 1
	}

	return g.Target
}

// Inverse returns the adjoint gate. X is an involution; Phase negates
// its angle; a Givens kernel conjugate-transposes to (Theta, −Alpha,
// Beta+π) in the same parametrization.
func (g Gate) Inverse() Gate {
	switch g.Kind {
	case X:
		return g
	case Phase:
		return NewPhase(g.Target, -g.Alpha)
	case Givens:
		return NewGivens(g.Target, g.Theta, -g.Alpha, g.Beta+math.Pi)
	}

	return g
}

// Kernel returns the 2×2 SU(2) block of a Givens gate on the occupation
// subspace {|10⟩, |01⟩} of its pair, ordered [ |10⟩ |01⟩ ]. For other
// kinds the result is meaningless; callers switch on Kind first.
func (g Gate) Kernel() [2][2]complex128 {
	c := complex(math.Cos(g.Theta), 0)
	s := complex(math.Sin(g.Theta), 0)
	ea := cmplx.Exp(complex(0, g.Alpha))
	eb := cmplx.Exp(complex(0, g.Beta))

	return [2][2]complex128{
		{ea * c, eb * s},
		{-s / eb, c / ea},
	}
}

// wrapAngle normalizes an angle into (−π, π] for stable equality in
// tests and deterministic export text.
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}

	return a
}
