package lu_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/exactlu/lu"
	"github.com/katalvlaran/exactlu/matrix"
)

func ExampleFactorize() {
	a, _ := matrix.FromNumbers([][]int{{2, -1, -2}, {-4, 6, 3}, {-4, -2, 8}})
	f, err := lu.Factorize(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print("L:\n", f.L, "U:\n", f.U)
	fmt.Println("det:", f.Determinant())
	// Output:
	// L:
	// [1, 0, 0]
	// [-2, 1, 0]
	// [-2, -1, 1]
	// U:
	// [2, -1, -2]
	// [0, 4, -1]
	// [0, 0, 3]
	// det: 24
}

func ExampleWriterTracer() {
	a, _ := matrix.FromNumbers([][]int{{4, 3}, {6, 3}})
	_, _ = lu.Factorize(a, lu.WithTracer(lu.WriterTracer(os.Stdout)))
	// Output:
	// 1 / 4
	// 1 u11 = a11 4
	// 2 / 4
	// 2 u12 = a12 3
	// 3 / 4
	// 3 l21 = (a21) / u11 3/2
	// 4 / 4
	// 4 u22 = a22 - l21u12 -3/2
}

func ExamplePivotError() {
	a, _ := matrix.FromNumbers([][]int{{0, 1}, {1, 0}})
	_, err := lu.Factorize(a)
	fmt.Println(err)
	// Output:
	// Factorize: lu: pivot u11 is zero: lu: zero encountered on the matrix's effective diagonal during elimination
}
