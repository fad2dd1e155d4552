// SPDX-License-Identifier: MIT

// Package matrix - square exact-rational storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer of rational.Rational with the index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Convert any integer or float input to exact rationals once, at construction.
//
// Complexity quicksheet:
//   - New/Identity: O(n²); At/Set: O(1); Clone/Rows: O(n²).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/exactlu/rational"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxNew         = "New"
	ctxFromRows    = "FromRows"
	ctxFromNumbers = "FromNumbers"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps an error with a uniform Matrix context.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// cellErrorf wraps an error with a Matrix context and callsite indices.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square n×n matrix of exact rationals.
//   - n holds the dimension (>= 1 for every public constructor).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// Rationals are immutable values, so copying the buffer is a deep copy.
// Every method accepts a nil *Matrix and treats it as an empty matrix.
type Matrix struct {
	n    int
	data []rational.Rational
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an n×n zero matrix.
// Implementation:
//   - Stage 1: validate n > 0; else ErrDimension.
//   - Stage 2: allocate a zero-filled buffer (the Rational zero value is 0).
//
// Errors:
//   - ErrDimension (n <= 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(ctxNew, ErrDimension)
	}

	return &Matrix{n: n, data: make([]rational.Rational, n*n)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = rational.One()
	}

	return m, nil
}

// FromRows copies rows into a new Matrix.
// Implementation:
//   - Stage 1: require len(rows) > 0 and len(rows[i]) == len(rows) for every i.
//   - Stage 2: copy row by row into the flat buffer.
//
// Errors:
//   - ErrDimension for empty, ragged or non-square input.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows(rows [][]rational.Rational) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrDimension)
	}
	m := &Matrix{n: n, data: make([]rational.Rational, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d entries, want %d: %w",
				ctxFromRows, i, len(row), n, ErrDimension)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// FromNumbers builds a Matrix from rows of any integer or float type.
// Integers are taken exactly; floats through their shortest decimal form
// (0.1 becomes 1/10), see rational.FromNumber.
//
// Errors:
//   - ErrDimension for empty, ragged or non-square input.
//   - ErrNumber for NaN or ±Inf entries (wrapped with coordinates).
func FromNumbers[T rational.Number](rows [][]T) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, matrixErrorf(ctxFromNumbers, ErrDimension)
	}
	m := &Matrix{n: n, data: make([]rational.Rational, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d entries, want %d: %w",
				ctxFromNumbers, i, len(row), n, ErrDimension)
		}
		for j, v := range row {
			r, err := rational.FromNumber(v)
			if err != nil {
				return nil, cellErrorf(ctxFromNumbers, i, j, ErrNumber)
			}
			m.data[i*n+j] = r
		}
	}

	return m, nil
}

// Size returns n for an n×n matrix. A nil matrix has size 0.
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrOutOfRange
	}
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (rational.Rational, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return rational.Rational{}, cellErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v rational.Rational) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy. A nil matrix clones to nil.
// Complexity: O(n²).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := make([]rational.Rational, len(m.data))
	copy(cp, m.data)

	return &Matrix{n: m.n, data: cp}
}

// Rows returns a fresh [][]rational.Rational copy of the entries.
// Mutating the result never affects m. A nil matrix yields nil.
func (m *Matrix) Rows() [][]rational.Rational {
	if m == nil {
		return nil
	}
	rows := make([][]rational.Rational, m.n)
	for i := range rows {
		rows[i] = make([]rational.Rational, m.n)
		copy(rows[i], m.data[i*m.n:(i+1)*m.n])
	}

	return rows
}

// Float64s converts every entry to its nearest float64, for display and plotting.
// A nil matrix yields nil.
func (m *Matrix) Float64s() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = make([]float64, m.n)
		for j := range out[i] {
			out[i][j] = m.data[i*m.n+j].Float64()
		}
	}

	return out
}

// Equal reports exact entrywise equality. Two nil matrices are equal.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// String renders the matrix rows as lines of comma-separated fractions.
// Intended for diagnostics; not for hot paths. A nil matrix renders as "".
func (m *Matrix) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			b.WriteString(m.data[i*m.n+j].String())
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
