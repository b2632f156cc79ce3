// Package qasm serializes circuits to OpenQASM 2.0 text.
//
// 🚀 What is qasm?
//
// The exporter turns a circuit.Circuit into a program any OpenQASM 2.0
// consumer can run, using only gates from the standard qelib1 include:
//
//   - X gates map directly to "x q[t];".
//   - Phase gates map to "u1(α) q[t];".
//   - A Givens rotation on the pair (t, t+1) expands into a fixed
//     eleven-gate native sequence of u1, h, cz and ry instructions that
//     reproduces its two-qubit kernel exactly (see qasm.go).
//
// Export is a pure function of the circuit: identical circuits always
// produce byte-identical text, and exporting twice changes nothing.
// Angles are printed with strconv.FormatFloat(·, 'g', -1, 64), the
// shortest representation that round-trips, so the output is stable
// across runs and platforms.
//
// The exporter never emits measurements; the circuits it serializes
// are unitary blocks meant for embedding, not standalone experiments.
package qasm
