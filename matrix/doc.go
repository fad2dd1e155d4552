// Package matrix offers exact square matrices and vectors for linear systems.
//
// The matrix package provides:
//
//   - Matrix, an n×n row-major buffer of rational.Rational with safe
//     accessors (At/Set return ErrOutOfRange instead of panicking).
//   - Vector, the right-hand side and solution type.
//   - Exact products (Mul, MulVec) used to verify L·U == A and A·x == y.
//   - Reflect, the point reflection that turns an upper-triangular system
//     into a lower-triangular one for backward substitution.
//   - Validators (ValidateSquare, ValidateVecLen, ValidateSystem) shared by
//     every kernel, all reporting ErrDimension.
//
// Integer and float inputs are converted to rationals once, at construction;
// nothing downstream ever rounds.
package matrix
