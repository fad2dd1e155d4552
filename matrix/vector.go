// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/exactlu/rational"
)

// Vector is an ordered sequence of exact rationals, aligned with Matrix rows.
type Vector []rational.Rational

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector { return make(Vector, n) }

// VectorFromNumbers converts values of any integer or float type exactly
// (floats through their shortest decimal form).
// Returns ErrNumber, wrapped with the index, for NaN or ±Inf entries.
func VectorFromNumbers[T rational.Number](vals []T) (Vector, error) {
	v := make(Vector, len(vals))
	for i, x := range vals {
		r, err := rational.FromNumber(x)
		if err != nil {
			return nil, fmt.Errorf("VectorFromNumbers[%d]: %w", i, ErrNumber)
		}
		v[i] = r
	}

	return v, nil
}

// Clone returns an independent copy. A nil vector clones to nil.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	cp := make(Vector, len(v))
	copy(cp, v)

	return cp
}

// Equal reports exact element-wise equality.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !v[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// Reverse returns a new vector with the elements in reverse order.
func (v Vector) Reverse() Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[len(v)-1-i] = v[i]
	}

	return out
}

// Float64s converts every element to its nearest float64.
func (v Vector) Float64s() []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i].Float64()
	}

	return out
}

// String formats v as "[a, b, c]".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i := range v {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(v[i].String())
	}
	b.WriteString("]")

	return b.String()
}
