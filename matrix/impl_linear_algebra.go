// SPDX-License-Identifier: MIT
// Package matrix provides exact products and structural predicates on Matrix,
// used to verify factorizations (L·U == A) and solutions (A·x == y).
//
// Notes:
//   - All kernels validate through validators.go and wrap failures with an op tag.
//   - Loops are fixed i→j→k; results are deterministic and exact.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactlu/rational"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opMulVec  = "MulVec"
	opReflect = "Reflect"
)

// opErrorf wraps err with an operation tag, preserving the underlying error via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the exact product C = A·B of two n×n matrices.
// Implementation:
//   - Stage 1: validate both operands are square and of the same size.
//   - Stage 2: triple loop i→j→k accumulating exact sums.
//
// Errors:
//   - ErrDimension (nil operand, size mismatch).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateSquare(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if a.n != b.n {
		return nil, opErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.n, a.n, b.n, b.n, ErrDimension))
	}
	n := a.n
	out := &Matrix{n: n, data: make([]rational.Rational, n*n)}
	var i, j, k int
	var sum rational.Rational
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = rational.Zero()
			for k = 0; k < n; k++ {
				sum = sum.Add(a.data[i*n+k].Mul(b.data[k*n+j]))
			}
			out.data[i*n+j] = sum
		}
	}

	return out, nil
}

// MulVec computes the exact product y = A·x.
// Errors: ErrDimension (nil matrix, len(x) != n).
// Complexity: O(n²).
func MulVec(a *Matrix, x Vector) (Vector, error) {
	if err := ValidateSystem(a, x); err != nil {
		return nil, opErrorf(opMulVec, err)
	}
	n := a.n
	y := make(Vector, n)
	var sum rational.Rational
	for i := 0; i < n; i++ {
		sum = rational.Zero()
		for k := 0; k < n; k++ {
			sum = sum.Add(a.data[i*n+k].Mul(x[k]))
		}
		y[i] = sum
	}

	return y, nil
}

// Reflect returns the point reflection of m: entry (i, j) moves to
// (n-1-i, n-1-j). Every row is reversed and the row order is reversed.
// An upper-triangular matrix reflects to a lower-triangular one and back;
// Reflect(Reflect(m)) equals m.
//
// Errors: ErrDimension (nil or empty matrix).
// Complexity: O(n²).
func Reflect(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, opErrorf(opReflect, err)
	}
	n := len(m.data)
	out := &Matrix{n: m.n, data: make([]rational.Rational, n)}
	// Row-major offset of (i, j) is i*n+j; (n-1-i, n-1-j) maps to len-1-offset.
	for k := range m.data {
		out.data[n-1-k] = m.data[k]
	}

	return out, nil
}

// IsLowerTriangular reports whether every entry above the diagonal is exactly 0.
// A nil matrix is not triangular.
func (m *Matrix) IsLowerTriangular() bool {
	if m == nil {
		return false
	}
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if !m.data[i*m.n+j].IsZero() {
				return false
			}
		}
	}

	return true
}

// IsUnitLowerTriangular reports whether m is lower-triangular with diagonal entries exactly 1.
// A nil matrix is not triangular.
func (m *Matrix) IsUnitLowerTriangular() bool {
	if m == nil {
		return false
	}
	if !m.IsLowerTriangular() {
		return false
	}
	for i := 0; i < m.n; i++ {
		if !m.data[i*m.n+i].IsOne() {
			return false
		}
	}

	return true
}

// IsUpperTriangular reports whether every entry below the diagonal is exactly 0.
// A nil matrix is not triangular.
func (m *Matrix) IsUpperTriangular() bool {
	if m == nil {
		return false
	}
	for i := 1; i < m.n; i++ {
		for j := 0; j < i; j++ {
			if !m.data[i*m.n+j].IsZero() {
				return false
			}
		}
	}

	return true
}
