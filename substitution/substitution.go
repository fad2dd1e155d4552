// SPDX-License-Identifier: MIT

package substitution

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/rational"
)

const (
	opForward  = "Forward"
	opBackward = "Backward"
)

// Forward solves L·z = y for lower-triangular L.
// Implementation:
//   - Stage 1: validate L square and len(y) == n.
//   - Stage 2: for x = 0..n-1: z[x] = (y[x] - Σ_{r<x} L[x][r]·z[r]) / L[x][x].
//
// Entries above the diagonal of L are never read.
//
// Errors:
//   - matrix.ErrDimension (nil L, length mismatch).
//   - ErrDivisionByZero as *ZeroDiagonalError (L[x][x] == 0).
//
// Complexity:
//   - Time O(n²), Space O(n).
func Forward(l *matrix.Matrix, y matrix.Vector) (matrix.Vector, error) {
	if err := matrix.ValidateSystem(l, y); err != nil {
		return nil, fmt.Errorf("%s: %w", opForward, err)
	}
	z, err := forward(l.Rows(), y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opForward, err)
	}

	return z, nil
}

// Backward solves U·x = z for upper-triangular U.
// Implementation:
//   - Stage 1: validate U square and len(z) == n.
//   - Stage 2: point-reflect U (matrix.Reflect) and reverse z; the reflected
//     matrix is lower triangular.
//   - Stage 3: run the forward procedure and reverse its result.
//
// Entries below the diagonal of U are never read.
//
// Errors:
//   - matrix.ErrDimension (nil U, length mismatch).
//   - ErrDivisionByZero as *ZeroDiagonalError; Row is reported in U's own
//     (unreflected) coordinates.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the reflected copy.
func Backward(u *matrix.Matrix, z matrix.Vector) (matrix.Vector, error) {
	if err := matrix.ValidateSystem(u, z); err != nil {
		return nil, fmt.Errorf("%s: %w", opBackward, err)
	}
	reflected, err := matrix.Reflect(u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBackward, err)
	}
	x, err := forward(reflected.Rows(), z.Reverse())
	if err != nil {
		var zd *ZeroDiagonalError
		if errors.As(err, &zd) {
			err = &ZeroDiagonalError{Row: u.Size() - 1 - zd.Row}
		}
		return nil, fmt.Errorf("%s: %w", opBackward, err)
	}

	return x.Reverse(), nil
}

// forward is the shared elimination loop over validated row slices.
func forward(l [][]rational.Rational, y matrix.Vector) (matrix.Vector, error) {
	n := len(y)
	z := make(matrix.Vector, n)
	var x, r int
	var sum rational.Rational
	for x = 0; x < n; x++ {
		sum = rational.Zero()
		for r = 0; r < x; r++ {
			sum = sum.Add(l[x][r].Mul(z[r]))
		}
		v, err := y[x].Sub(sum).Quo(l[x][x])
		if err != nil {
			return nil, &ZeroDiagonalError{Row: x}
		}
		z[x] = v
	}

	return z, nil
}
