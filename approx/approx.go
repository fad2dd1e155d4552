// SPDX-License-Identifier: MIT

// Package approx re-solves a system in float64 with a pivoting sparse LU
// solver. It exists to cross-check exact results and to show how far a
// floating-point solve drifts; it never replaces the exact answer.
package approx

import (
	"errors"
	"fmt"
	"math"

	"github.com/edp1096/sparse"

	"github.com/katalvlaran/exactlu/matrix"
)

// ErrSolve wraps failures reported by the sparse solver (singular matrix and similar).
var ErrSolve = errors.New("approx: float solve failed")

func newConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// Solve returns the float64 solution of m·x = y.
// The sparse solver indexes rows and columns from 1; the returned slice is 0-based.
//
// Errors:
//   - matrix.ErrDimension (shape mismatch).
//   - ErrSolve (factorization or solve failure inside the sparse solver).
func Solve(m *matrix.Matrix, y matrix.Vector) ([]float64, error) {
	if err := matrix.ValidateSystem(m, y); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	n := m.Size()

	mat, err := sparse.Create(int64(n), newConfig())
	if err != nil {
		return nil, fmt.Errorf("Solve: %w: %v", ErrSolve, err)
	}
	defer mat.Destroy()

	a := m.Float64s()
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			mat.GetElement(int64(i), int64(j)).Real += a[i-1][j-1]
		}
	}

	rhs := make([]float64, n+1) // 1-based
	for i, v := range y.Float64s() {
		rhs[i+1] = v
	}

	if err = mat.Factor(); err != nil {
		return nil, fmt.Errorf("Solve: factor: %w: %v", ErrSolve, err)
	}
	sol, err := mat.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w: %v", ErrSolve, err)
	}
	if len(sol) < n+1 {
		return nil, fmt.Errorf("Solve: short solution (%d values): %w", len(sol), ErrSolve)
	}

	out := make([]float64, n)
	copy(out, sol[1:n+1])

	return out, nil
}

// MaxDeviation returns max_i |exact[i] - approx[i]|, comparing the exact
// solution at float64 precision.
// Errors: matrix.ErrDimension when the lengths differ.
func MaxDeviation(exact matrix.Vector, approx []float64) (float64, error) {
	if len(exact) != len(approx) {
		return 0, fmt.Errorf("MaxDeviation: %d vs %d: %w", len(exact), len(approx), matrix.ErrDimension)
	}
	var worst float64
	for i, v := range exact.Float64s() {
		worst = math.Max(worst, math.Abs(v-approx[i]))
	}

	return worst, nil
}
