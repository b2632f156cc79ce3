package qasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/fermiq/circuit"
)

// angleTol is the magnitude below which a u1 correction is omitted:
// u1(0) is the identity and only adds noise to the output.
const angleTol = 1e-12

// header lines of every exported program.
const (
	versionLine = "OPENQASM 2.0;"
	includeLine = "include \"qelib1.inc\";"
)

// Export serializes c to an OpenQASM 2.0 program over the standard
// qelib1 gate set. The output is deterministic: the same circuit always
// yields byte-identical text.
//
// Errors: circuit.ErrNilCircuit for a nil circuit, circuit.ErrUnknownGate
// for a gate kind the exporter has no lowering for.
func Export(c *circuit.Circuit) (string, error) {
	if c == nil {
		return "", fmt.Errorf("Export: %w", circuit.ErrNilCircuit)
	}

	var sb strings.Builder
	sb.WriteString(versionLine + "\n")
	sb.WriteString(includeLine + "\n")
	sb.WriteString(fmt.Sprintf("qreg q[%d];\n", c.NumQubits()))

	for _, g := range c.Gates() {
		switch g.Kind {
		case circuit.X:
			fmt.Fprintf(&sb, "x q[%d];\n", g.Target)
		case circuit.Phase:
			writeU1(&sb, g.Target, g.Alpha)
		case circuit.Givens:
			writeGivens(&sb, g)
		default:
			return "", fmt.Errorf("Export: %w", circuit.ErrUnknownGate)
		}
	}

	return sb.String(), nil
}

// NativeGateCount reports the number of native instructions Export will
// emit for c, register declaration and header excluded.
func NativeGateCount(c *circuit.Circuit) (int, error) {
	text, err := Export(c)
	if err != nil {
		return 0, fmt.Errorf("NativeGateCount: %w", err)
	}

	// Three header lines, one trailing newline.
	return strings.Count(text, "\n") - 3, nil
}

// writeGivens lowers one Givens rotation on the pair (t, t+1) to the
// qelib1 gate set. The sequence implements the kernel
//
//	[[e^{iα}cosθ, e^{iβ}sinθ], [−e^{−iβ}sinθ, e^{−iα}cosθ]]
//
// on the {|10⟩, |01⟩} occupation subspace, fixing |00⟩ and |11⟩:
// a u1 conjugation strips the phases down to a real rotation, and the
// real rotation is the standard h/cz/ry reflection sandwich.
func writeGivens(sb *strings.Builder, g circuit.Gate) {
	t := g.Target

	writeU1(sb, t+1, g.Beta-g.Alpha)
	fmt.Fprintf(sb, "h q[%d];\n", t)
	fmt.Fprintf(sb, "h q[%d];\n", t+1)
	fmt.Fprintf(sb, "cz q[%d],q[%d];\n", t, t+1)
	fmt.Fprintf(sb, "ry(%s) q[%d];\n", fmtAngle(g.Theta), t+1)
	fmt.Fprintf(sb, "ry(%s) q[%d];\n", fmtAngle(-g.Theta), t)
	fmt.Fprintf(sb, "cz q[%d],q[%d];\n", t, t+1)
	fmt.Fprintf(sb, "h q[%d];\n", t)
	fmt.Fprintf(sb, "h q[%d];\n", t+1)
	writeU1(sb, t, g.Alpha)
	writeU1(sb, t+1, -g.Beta)
}

// writeU1 emits a u1 phase instruction, dropping identity rotations.
func writeU1(sb *strings.Builder, q int, alpha float64) {
	if alpha < angleTol && alpha > -angleTol {
		return
	}
	fmt.Fprintf(sb, "u1(%s) q[%d];\n", fmtAngle(alpha), q)
}

// fmtAngle prints an angle in the shortest form that round-trips.
func fmtAngle(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
