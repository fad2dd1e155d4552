// SPDX-License-Identifier: MIT

package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/exactlu/equation"
	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/rational"
)

// ErrExhausted is returned when WithNonZeroPivots found no factorizable system
// within the attempt limit.
var ErrExhausted = errors.New("generate: no factorizable system within attempt limit")

// System draws a random integer system A·x = Y, entries uniform in [low, high].
// Implementation:
//   - Stage 1: seed a private *rand.Rand (same seed ⇒ same system).
//   - Stage 2: draw A row by row, then Y.
//   - Stage 3: under WithNonZeroPivots, redraw until lu.Factorize succeeds.
//
// Errors:
//   - ErrExhausted (WithNonZeroPivots only).
//
// Complexity:
//   - Time O(n²) per draw (+ O(n³) factorization check when requested).
func System(opts ...Option) (*equation.Equation, error) {
	o := gatherOptions(opts)
	rng := rand.New(rand.NewSource(o.seed))

	attempts := 1
	if o.nonZero {
		attempts = o.maxAttempts
	}
	for a := 0; a < attempts; a++ {
		eq, err := draw(rng, o)
		if err != nil {
			return nil, err
		}
		if !o.nonZero {
			return eq, nil
		}
		if _, err = eq.Factorize(); err == nil {
			return eq, nil
		}
	}

	return nil, fmt.Errorf("System: %d attempts: %w", attempts, ErrExhausted)
}

func draw(rng *rand.Rand, o options) (*equation.Equation, error) {
	n := o.size
	span := o.high - o.low + 1
	next := func() rational.Rational {
		return rational.FromInt(o.low + rng.Int63n(span))
	}

	rows := make([][]rational.Rational, n)
	for i := range rows {
		rows[i] = make([]rational.Rational, n)
		for j := range rows[i] {
			rows[i][j] = next()
		}
	}
	y := make(matrix.Vector, n)
	for i := range y {
		y[i] = next()
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, err
	}

	return equation.NewEquation(m, y)
}
