// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/exactlu/rational"
)

// Factor names the triangular factor a Step writes into.
type Factor byte

const (
	Upper Factor = 'u' // entry of U
	Lower Factor = 'l' // entry of L
)

// Step describes one computed entry of L or U.
type Step struct {
	Count   int               // 1-based running count, in elimination order
	Total   int               // n², the number of computed entries
	Factor  Factor            // Upper or Lower
	Row     int               // 0-based row of the written entry
	Col     int               // 0-based column of the written entry
	Formula string            // e.g. "l32 = (a32 - l31u12) / u22"
	Value   rational.Rational // the exact value stored
}

// Tracer observes elimination steps. It runs on the goroutine that called
// Factorize, in elimination order.
type Tracer func(Step)

// WriterTracer prints each step as two lines:
//
//	3 / 9
//	3 u13 = a13 -2
//
// Write errors are ignored; tracing is a display aid.
func WriterTracer(w io.Writer) Tracer {
	return func(s Step) {
		_, _ = fmt.Fprintf(w, "%d / %d\n%d %s %s\n", s.Count, s.Total, s.Count, s.Formula, s.Value)
	}
}

// label renders the 1-based subscript of entry (i, j). Subscripts are
// concatenated ("23") while n < 10 and comma-separated ("2,13") otherwise.
func label(i, j, n int) string {
	if n < 10 {
		return strconv.Itoa(i+1) + strconv.Itoa(j+1)
	}

	return strconv.Itoa(i+1) + "," + strconv.Itoa(j+1)
}

// upperFormula renders "u{i}{j} = a{i}{j} - l{i}{k}u{k}{j} ...".
func upperFormula(i, j, n int) string {
	var b strings.Builder
	b.WriteString("u" + label(i, j, n) + " = a" + label(i, j, n))
	for k := 0; k < i; k++ {
		b.WriteString(" - l" + label(i, k, n) + "u" + label(k, j, n))
	}

	return b.String()
}

// lowerFormula renders "l{j}{i} = (a{j}{i} - l{j}{k}u{k}{i} ...) / u{i}{i}".
func lowerFormula(j, i, n int) string {
	var b strings.Builder
	b.WriteString("l" + label(j, i, n) + " = (a" + label(j, i, n))
	for k := 0; k < i; k++ {
		b.WriteString(" - l" + label(j, k, n) + "u" + label(k, i, n))
	}
	b.WriteString(") / u" + label(i, i, n))

	return b.String()
}
