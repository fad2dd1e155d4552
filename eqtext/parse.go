// SPDX-License-Identifier: MIT

package eqtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/exactlu/equation"
	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/rational"
)

// ErrSyntax marks malformed equation text.
var ErrSyntax = errors.New("eqtext: invalid equation syntax")

// SyntaxError locates a parse failure. It matches ErrSyntax via errors.Is.
type SyntaxError struct {
	Line   int    // 1-based line number in the source text
	Text   string // offending line or token
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("eqtext: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap exposes ErrSyntax to errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

type sourceLine struct {
	no   int
	text string
}

// Parse reads a system from src.
// Errors:
//   - ErrSyntax as *SyntaxError (missing or repeated "=", bad coefficient,
//     bad or out-of-range variable index, bad right-hand side, no equations).
func Parse(src string) (*equation.Equation, error) {
	var lines []sourceLine
	for i, raw := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(raw) != "" {
			lines = append(lines, sourceLine{no: i + 1, text: raw})
		}
	}
	if len(lines) == 0 {
		return nil, &SyntaxError{Line: 1, Text: src, Reason: "no equations"}
	}

	n := len(lines)
	rows := make([][]rational.Rational, n)
	rhs := make(matrix.Vector, n)
	for i, ln := range lines {
		row, y, err := parseLine(ln, n)
		if err != nil {
			return nil, err
		}
		rows[i], rhs[i] = row, y
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, err
	}

	return equation.NewEquation(m, rhs)
}

// parseLine parses "<terms> = <rhs>" into a coefficient row of length n.
func parseLine(ln sourceLine, n int) ([]rational.Rational, rational.Rational, error) {
	lhs, rhs, ok := strings.Cut(ln.text, "=")
	if !ok || strings.Contains(rhs, "=") {
		return nil, rational.Rational{}, &SyntaxError{Line: ln.no, Text: ln.text, Reason: "want exactly one '='"}
	}
	y, err := rational.Parse(rhs)
	if err != nil {
		return nil, rational.Rational{}, &SyntaxError{Line: ln.no, Text: strings.TrimSpace(rhs), Reason: "bad right-hand side"}
	}

	row := make([]rational.Rational, n)
	negate := false
	for _, tok := range strings.Fields(lhs) {
		switch tok {
		case "+":
			continue
		case "-":
			negate = !negate
			continue
		}
		idx, coef, err := parseTerm(tok, n)
		if err != nil {
			return nil, rational.Rational{}, &SyntaxError{Line: ln.no, Text: tok, Reason: err.Error()}
		}
		if negate {
			coef = coef.Neg()
			negate = false
		}
		row[idx] = coef // a repeated variable keeps its last coefficient
	}
	if negate {
		return nil, rational.Rational{}, &SyntaxError{Line: ln.no, Text: ln.text, Reason: "dangling sign"}
	}

	return row, y, nil
}

// parseTerm splits "<coef>x<k>" and returns the 0-based index and coefficient.
func parseTerm(tok string, n int) (int, rational.Rational, error) {
	at := strings.LastIndex(tok, "x")
	if at < 0 {
		return 0, rational.Rational{}, errors.New("term has no variable")
	}
	k, err := strconv.Atoi(tok[at+1:])
	if err != nil {
		return 0, rational.Rational{}, errors.New("bad variable index")
	}
	if k < 1 || k > n {
		return 0, rational.Rational{}, fmt.Errorf("variable x%d outside x1..x%d", k, n)
	}

	c := strings.TrimSuffix(tok[:at], "*")
	var coef rational.Rational
	switch c {
	case "", "+":
		coef = rational.One()
	case "-":
		coef = rational.One().Neg()
	default:
		coef, err = rational.Parse(c)
		if err != nil {
			return 0, rational.Rational{}, errors.New("bad coefficient")
		}
	}

	return k - 1, coef, nil
}
