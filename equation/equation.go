// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/katalvlaran/exactlu/lu"
	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/rational"
	"github.com/katalvlaran/exactlu/substitution"
)

const (
	opNew     = "NewEquation"
	opReplace = "Replace"
	opSolve   = "Solve"
)

// Equation is the system A·x = Y with A square and len(Y) == n.
type Equation struct {
	variables *matrix.Matrix
	result    matrix.Vector
}

// New returns the default 1×1 system [1]·x = [1].
func New() *Equation {
	m, _ := matrix.Identity(1)

	return &Equation{variables: m, result: matrix.Vector{rational.One()}}
}

// NewEquation validates and copies m and y into a new Equation.
// Errors: matrix.ErrDimension.
func NewEquation(m *matrix.Matrix, y matrix.Vector) (*Equation, error) {
	if err := matrix.ValidateSystem(m, y); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return &Equation{variables: m.Clone(), result: y.Clone()}, nil
}

// Size returns n.
func (e *Equation) Size() int { return e.variables.Size() }

// Matrix returns a copy of the coefficient matrix A.
func (e *Equation) Matrix() *matrix.Matrix { return e.variables.Clone() }

// Result returns a copy of the result vector Y.
func (e *Equation) Result() matrix.Vector { return e.result.Clone() }

// Replace swaps in a new system. Both parts are validated first; on error the
// Equation keeps its previous contents.
// Errors: matrix.ErrDimension.
func (e *Equation) Replace(m *matrix.Matrix, y matrix.Vector) error {
	if err := matrix.ValidateSystem(m, y); err != nil {
		return fmt.Errorf("%s: %w", opReplace, err)
	}
	e.variables, e.result = m.Clone(), y.Clone()

	return nil
}

// Solve returns x with A·x == Y exactly.
// Implementation:
//   - Stage 1: validate dimensions before any arithmetic.
//   - Stage 2: lu.Factorize(A) → L, U.
//   - Stage 3: z = substitution.Forward(L, Y); x = substitution.Backward(U, z).
//
// opts are passed to lu.Factorize (tracing, workers).
//
// Errors (propagated unchanged, only prefixed with "Solve: "):
//   - matrix.ErrDimension
//   - lu.ErrDecomposition
//   - substitution.ErrDivisionByZero
func (e *Equation) Solve(opts ...lu.Option) (matrix.Vector, error) {
	f, err := e.Factorize(opts...)
	if err != nil {
		return nil, err
	}
	z, err := substitution.Forward(f.L, e.result)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	x, err := substitution.Backward(f.U, z)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return x, nil
}

// Factorize validates the system and returns the LU factors of A.
func (e *Equation) Factorize(opts ...lu.Option) (*lu.Factors, error) {
	if err := matrix.ValidateSystem(e.variables, e.result); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	f, err := lu.Factorize(e.variables, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return f, nil
}
