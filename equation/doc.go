// Package equation coordinates the exact solve of a linear system A·x = Y.
//
// An Equation owns the coefficient matrix A and the result vector Y. Solve
// factorizes A (package lu), then runs forward and backward substitution
// (package substitution) and returns x. Solving never mutates the Equation,
// so repeated calls return identical results.
//
// The getters hand out deep copies; the only way to change a system is to
// Replace both parts at once. There is no package-level Equation: callers
// own their instance and pass it explicitly to parsers, stores and printers.
//
// Failures keep their kind. Use errors.Is with matrix.ErrDimension,
// lu.ErrDecomposition or substitution.ErrDivisionByZero, or Classify for a
// switchable Kind.
package equation
