// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/rational"
)

const opFactorize = "Factorize"

// Factors holds the Doolittle factors of a square matrix A.
//   - L is unit lower triangular.
//   - U is upper triangular.
//   - L·U == A exactly.
type Factors struct {
	L *matrix.Matrix
	U *matrix.Matrix
}

// Reconstruct returns the exact product L·U.
func (f *Factors) Reconstruct() (*matrix.Matrix, error) {
	return matrix.Mul(f.L, f.U)
}

// Determinant returns det(A) as the product of the pivots of U.
func (f *Factors) Determinant() rational.Rational {
	det := rational.One()
	for i := 0; i < f.U.Size(); i++ {
		u, _ := f.U.At(i, i)
		det = det.Mul(u)
	}

	return det
}

// Factorize computes the Doolittle factorization A = L·U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: validate a (non-nil, square); copy A into row slices; set diag(L)=1.
//   - Stage 2: for i=0..n-1, build row i of U (columns j>=i), check the pivot
//     when rows remain below it, then build column i of L (rows j>i).
//
// Behavior highlights:
//   - Exact rational arithmetic throughout; input a is read-only.
//   - Deterministic: fixed i→{j≥i} for U, then {j>i}→i for L, for any worker count.
//   - No partial result on failure.
//
// Inputs:
//   - a: square Matrix (n×n).
//   - opts: WithTracer, WithWorkers.
//
// Returns:
//   - *Factors with freshly allocated L and U.
//
// Errors:
//   - matrix.ErrDimension (nil or malformed a).
//   - ErrDecomposition as *PivotError (U[i,i]==0 with i < n-1).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a *matrix.Matrix, opts ...Option) (*Factors, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}
	o := gatherOptions(opts)

	n := a.Size()
	A := a.Rows()
	L := make([][]rational.Rational, n)
	U := make([][]rational.Rational, n)
	for i := 0; i < n; i++ {
		L[i] = make([]rational.Rational, n)
		U[i] = make([]rational.Rational, n)
		L[i][i] = rational.One()
	}

	t := tracker{tracer: o.tracer, n: n}
	var i int
	for i = 0; i < n; i++ {
		// U[i][j] for j >= i
		row := i
		err := runPhase(o.workers, i, n, func(j int) error {
			U[row][j] = A[row][j].Sub(dot(L[row], U, j, row))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opFactorize, err)
		}
		for j := i; j < n; j++ {
			t.emit(Upper, i, j, U[i][j])
		}

		if i == n-1 {
			break
		}
		// Zero-pivot guard: the L column below needs U[i][i] as divisor.
		pivot := U[i][i]
		if pivot.IsZero() {
			return nil, fmt.Errorf("%s: %w", opFactorize, &PivotError{Index: i, Size: n})
		}

		// L[j][i] for j > i
		col := i
		err = runPhase(o.workers, i+1, n, func(j int) error {
			v, qerr := A[j][col].Sub(dot(L[j], U, col, col)).Quo(pivot)
			if qerr != nil {
				return qerr
			}
			L[j][col] = v
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opFactorize, err)
		}
		for j := i + 1; j < n; j++ {
			t.emit(Lower, j, i, L[j][i])
		}
	}

	Lm, err := matrix.FromRows(L)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}
	Um, err := matrix.FromRows(U)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}

	return &Factors{L: Lm, U: Um}, nil
}

// dot returns Σ_{k<upto} lrow[k]·U[k][col].
func dot(lrow []rational.Rational, U [][]rational.Rational, col, upto int) rational.Rational {
	sum := rational.Zero()
	for k := 0; k < upto; k++ {
		sum = sum.Add(lrow[k].Mul(U[k][col]))
	}

	return sum
}

// runPhase calls fn(j) for j in [from, to). With workers > 1 the calls run
// concurrently, at most workers at a time, and runPhase returns after all of
// them finished (barrier). fn must write only entries owned by j.
func runPhase(workers, from, to int, fn func(j int) error) error {
	if workers <= 1 || to-from < 2 {
		for j := from; j < to; j++ {
			if err := fn(j); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for j := from; j < to; j++ {
		g.Go(func() error { return fn(j) })
	}

	return g.Wait()
}

// tracker numbers steps and forwards them to the tracer.
type tracker struct {
	tracer Tracer
	n      int
	count  int
}

func (t *tracker) emit(f Factor, row, col int, v rational.Rational) {
	if t.tracer == nil {
		return
	}
	t.count++
	s := Step{
		Count:  t.count,
		Total:  t.n * t.n,
		Factor: f,
		Row:    row,
		Col:    col,
		Value:  v,
	}
	if f == Upper {
		s.Formula = upperFormula(row, col, t.n)
	} else {
		s.Formula = lowerFormula(row, col, t.n)
	}
	t.tracer(s)
}
