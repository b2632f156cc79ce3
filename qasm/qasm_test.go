package qasm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fermiq/circuit"
	"github.com/katalvlaran/fermiq/qasm"
)

// TestExport_Header checks the program prologue.
func TestExport_Header(t *testing.T) {
	c, err := circuit.New(3)
	require.NoError(t, err)

	text, err := qasm.Export(c)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 3, "empty circuit exports the prologue only")
	assert.Equal(t, "OPENQASM 2.0;", lines[0])
	assert.Equal(t, `include "qelib1.inc";`, lines[1])
	assert.Equal(t, "qreg q[3];", lines[2])
}

// TestExport_Deterministic verifies byte-identical output across calls.
func TestExport_Deterministic(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.Append(circuit.NewX(0)))
	require.NoError(t, c.Append(circuit.NewGivens(0, 0.7, 0.3, -1.1)))
	require.NoError(t, c.Append(circuit.NewPhase(1, 2.4)))

	a, err := qasm.Export(c)
	require.NoError(t, err)
	b, err := qasm.Export(c)
	require.NoError(t, err)
	assert.Equal(t, a, b, "export must be a pure function of the circuit")
}

// TestExport_SingleQubitGates checks the direct lowerings.
func TestExport_SingleQubitGates(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.Append(circuit.NewX(1)))
	require.NoError(t, c.Append(circuit.NewPhase(0, 0.5)))

	text, err := qasm.Export(c)
	require.NoError(t, err)
	assert.Contains(t, text, "x q[1];\n", "X lowers to the qelib1 x gate")
	assert.Contains(t, text, "u1(0.5) q[0];\n", "Phase lowers to u1")
}

// TestExport_GivensLowering checks the native sequence structure of a
// two-qubit rotation: the h/cz/ry reflection sandwich with u1 phase
// corrections around it.
func TestExport_GivensLowering(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.Append(circuit.NewGivens(0, 0.7, 0.3, -1.1)))

	text, err := qasm.Export(c)
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(text, "h q["), "two h conjugations per rotation")
	assert.Equal(t, 2, strings.Count(text, "cz q[0],q[1];"), "two cz per rotation")
	assert.Equal(t, 2, strings.Count(text, "ry("), "one ry per qubit of the pair")
	assert.Equal(t, 3, strings.Count(text, "u1("), "three phase corrections for generic angles")

	count, err := qasm.NativeGateCount(c)
	require.NoError(t, err)
	assert.Equal(t, 11, count, "generic Givens lowers to eleven native gates")
}

// TestExport_DropsIdentityPhases: a real rotation (α=β=0) needs no u1
// corrections at all.
func TestExport_DropsIdentityPhases(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.Append(circuit.NewGivens(0, 0.7, 0, 0)))

	text, err := qasm.Export(c)
	require.NoError(t, err)
	assert.NotContains(t, text, "u1(", "zero phases must not be emitted")

	count, err := qasm.NativeGateCount(c)
	require.NoError(t, err)
	assert.Equal(t, 8, count, "a real rotation lowers to eight native gates")
}

// TestExport_NilCircuit covers the nil guard.
func TestExport_NilCircuit(t *testing.T) {
	_, err := qasm.Export(nil)
	assert.ErrorIs(t, err, circuit.ErrNilCircuit, "nil circuit must error")
}

// TestNativeGateCount_Empty reports zero for an empty circuit.
func TestNativeGateCount_Empty(t *testing.T) {
	c, err := circuit.New(1)
	require.NoError(t, err)

	count, err := qasm.NativeGateCount(c)
	require.NoError(t, err)
	assert.Zero(t, count, "no gates, no instructions")
}
