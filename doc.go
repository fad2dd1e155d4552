// Package exactlu solves systems of linear equations exactly.
//
// A system A·x = Y is factorized with Doolittle's method (A = L·U, unit
// diagonal on L, no row exchanges) and solved by forward and backward
// substitution. Every number is a rational with arbitrary-precision
// numerator and denominator, so results carry no rounding at all.
//
// Packages:
//
//	rational/     - immutable exact fractions (math/big underneath)
//	matrix/       - square rational matrices, vectors, products, validators
//	lu/           - Doolittle factorization with step tracing and parallel phases
//	substitution/ - forward and backward triangular solves
//	equation/     - the A·x = Y aggregate: Solve, Factorize, Classify
//	eqtext/       - plain-text "2x1 -1x2 = 1" reader and writer
//	store/        - JSON save and load
//	generate/     - seeded random systems
//	approx/       - float64 cross-check through a pivoting sparse solver
//	cmd/exactlu   - command-line front end
//
// Quick example:
//
//	eq, _ := eqtext.Parse("2x1 -1x2 = 1\n-4x1 +6x2 = 0\n")
//	x, _ := eq.Solve()
//	fmt.Println(x) // [3/4, 1/2]
//
// A zero pivot above the last row fails with lu.ErrDecomposition even when
// the system is solvable after reordering; a zero last pivot means the
// system has no unique solution and surfaces as
// substitution.ErrDivisionByZero.
//
// Installation:
//
//	go get github.com/katalvlaran/exactlu
package exactlu
