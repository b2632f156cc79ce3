package qasm_test

import (
	"fmt"

	"github.com/katalvlaran/fermiq/circuit"
	"github.com/katalvlaran/fermiq/qasm"
)

// ExampleExport serializes a tiny two-qubit circuit. Single-qubit gates
// lower one to one; only Givens rotations expand into a native sequence.
func ExampleExport() {
	c, err := circuit.New(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = c.Append(circuit.NewX(0))
	_ = c.Append(circuit.NewPhase(1, 0.25))

	text, err := qasm.Export(c)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(text)
	// Output:
	// OPENQASM 2.0;
	// include "qelib1.inc";
	// qreg q[2];
	// x q[0];
	// u1(0.25) q[1];
}
