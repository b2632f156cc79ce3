// Package circuit: sentinel error set, matched via errors.Is.

package circuit

import "errors"

var (
	// ErrBadQubitCount is returned when a circuit is requested over a
	// non-positive number of qubits.
	ErrBadQubitCount = errors.New("circuit: qubit count must be > 0")

	// ErrQubitRange indicates a gate referencing a qubit outside the
	// register, including a Givens gate whose pair (Target, Target+1)
	// would step past the last qubit.
	ErrQubitRange = errors.New("circuit: gate qubit out of range")

	// ErrUnknownGate indicates a gate whose Kind is not one of the
	// supported kinds.
	ErrUnknownGate = errors.New("circuit: unknown gate kind")

	// ErrNilCircuit indicates a nil *Circuit receiver or argument.
	ErrNilCircuit = errors.New("circuit: nil circuit")

	// ErrSizeMismatch indicates composition of circuits over registers
	// of different sizes.
	ErrSizeMismatch = errors.New("circuit: register size mismatch")
)
