package cmat_test

import (
	"fmt"

	"github.com/katalvlaran/fermiq/cmat"
)

// ExampleMul multiplies a Pauli-Y-like matrix by itself: Y² = I.
func ExampleMul() {
	y, err := cmat.FromRows([][]complex128{
		{0, -1i},
		{1i, 0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sq, err := cmat.Mul(y, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	a, _ := sq.At(0, 0)
	b, _ := sq.At(0, 1)
	fmt.Printf("Y² = [[%v, %v], ...]\n", a, b)
	// Output:
	// Y² = [[(1+0i), (0+0i)], ...]
}

// ExampleValidateHermitian shows the fail-fast validator on a matrix
// that only looks symmetric.
func ExampleValidateHermitian() {
	m, err := cmat.FromRows([][]complex128{
		{1, 2i},
		{2i, 1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(cmat.ValidateHermitian(m, 1e-12))
	// Output:
	// cmat: matrix is not Hermitian within tolerance
}
