package circuit

// Circuit is an ordered gate sequence over a fixed register of n qubits.
// Gates apply to a state in slice order: gates[0] first. A Circuit is
// built incrementally with Append/Compose and never mutated otherwise;
// Inverse returns a fresh circuit.
type Circuit struct {
	n     int
	gates []Gate
}

// New allocates an empty circuit over n qubits.
// Returns ErrBadQubitCount when n <= 0.
func New(n int) (*Circuit, error) {
	if n <= 0 {
		return nil, ErrBadQubitCount
	}

	return &Circuit{n: n}, nil
}

// NumQubits reports the register size.
func (c *Circuit) NumQubits() int { return c.n }

// Len reports the number of gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns a copy of the gate sequence in application order.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Append validates g against the register and appends it.
//
// Errors: ErrUnknownGate for an unsupported kind, ErrQubitRange when the
// gate (including the implicit Target+1 of a Givens pair) steps outside
// the register.
func (c *Circuit) Append(g Gate) error {
	if c == nil {
		return ErrNilCircuit
	}
	switch g.Kind {
	case X, Phase, Givens:
	default:
		return ErrUnknownGate
	}
	if g.Target < 0 || g.MaxQubit() >= c.n {
		return ErrQubitRange
	}
	c.gates = append(c.gates, g)

	return nil
}

// Compose appends every gate of other to c, preserving order.
// Registers must match exactly.
func (c *Circuit) Compose(other *Circuit) error {
	if c == nil || other == nil {
		return ErrNilCircuit
	}
	if c.n != other.n {
		return ErrSizeMismatch
	}
	c.gates = append(c.gates, other.gates...)

	return nil
}

// Inverse returns the adjoint circuit: gates reversed, each inverted.
// Composing c with c.Inverse() acts as the identity on any state.
func (c *Circuit) Inverse() *Circuit {
	if c == nil {
		return nil
	}
	inv := &Circuit{n: c.n, gates: make([]Gate, len(c.gates))}
	for i, g := range c.gates {
		inv.gates[len(c.gates)-1-i] = g.Inverse()
	}

	return inv
}

// TwoQubitCount reports the number of two-qubit gates, the cost metric
// the rectangular synthesis optimization is measured against.
func (c *Circuit) TwoQubitCount() int {
	count := 0
	for _, g := range c.gates {
		if g.IsTwoQubit() {
			count++
		}
	}

	return count
}

// Depth computes the greedy ASAP depth: gates are packed into the first
// layer after the last layer occupying any of their qubits. Gates on
// disjoint qubit sets share a layer regardless of list order.
//
// Complexity: O(len(gates)).
func (c *Circuit) Depth() int {
	if c == nil || len(c.gates) == 0 {
		return 0
	}
	busy := make([]int, c.n) // last occupied layer per qubit, 0 = free
	depth := 0
	var layer int
	for _, g := range c.gates {
		layer = busy[g.Target] + 1
		if g.Kind == Givens && busy[g.Target+1]+1 > layer {
			layer = busy[g.Target+1] + 1
		}
		busy[g.Target] = layer
		if g.Kind == Givens {
			busy[g.Target+1] = layer
		}
		if layer > depth {
			depth = layer
		}
	}

	return depth
}

// TwoQubitDepth is Depth restricted to Givens gates, the quantity the
// linear-depth guarantee is stated for (single-qubit phase layers are
// excluded).
func (c *Circuit) TwoQubitDepth() int {
	if c == nil || len(c.gates) == 0 {
		return 0
	}
	busy := make([]int, c.n)
	depth := 0
	var layer int
	for _, g := range c.gates {
		if g.Kind != Givens {
			continue
		}
		layer = busy[g.Target] + 1
		if busy[g.Target+1]+1 > layer {
			layer = busy[g.Target+1] + 1
		}
		busy[g.Target] = layer
		busy[g.Target+1] = layer
		if layer > depth {
			depth = layer
		}
	}

	return depth
}
