// SPDX-License-Identifier: MIT

package eqtext

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/exactlu/equation"
	"github.com/katalvlaran/exactlu/matrix"
)

const (
	headerSystem  = "System of linear equations:\n\n"
	headerResults = "\nResults:\n\n"
)

// FormatRows renders the equations only, one per line, in the syntax Parse reads:
//
//	2x1 -1x2 -2x3 = 1
func FormatRows(eq *equation.Equation) string {
	var b strings.Builder
	writeRows(&b, eq)

	return b.String()
}

// FormatSystem renders the header and the equations, without results.
func FormatSystem(eq *equation.Equation) string { return Format(eq, nil) }

// Format renders the full display: a header, the equations and, when x is
// non-nil, a "Results:" section with one "xK = value" line per unknown.
func Format(eq *equation.Equation, x matrix.Vector) string {
	var b strings.Builder
	b.WriteString(headerSystem)
	writeRows(&b, eq)
	if x != nil {
		b.WriteString(headerResults)
		for i, v := range x {
			b.WriteString("x" + strconv.Itoa(i+1) + " = " + v.String() + "\n")
		}
	}

	return b.String()
}

func writeRows(b *strings.Builder, eq *equation.Equation) {
	rows := eq.Matrix().Rows()
	y := eq.Result()
	for i, row := range rows {
		for j, v := range row {
			if j > 0 {
				// non-first terms carry an explicit sign
				if v.Sign() >= 0 {
					b.WriteString("+")
				}
			}
			b.WriteString(v.String() + "x" + strconv.Itoa(j+1) + " ")
		}
		b.WriteString("= " + y[i].String() + "\n")
	}
}
