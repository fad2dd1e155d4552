// Package eqtext reads and writes linear systems in plain text.
//
// One equation per non-empty line, variables x1..xn (1-based):
//
//	2x1 -1x2 -2x3 = 1
//	-4x1 +6x2 +3x3 = 2
//	-4x1 -2x2 +8x3 = 3
//
// A term is an optional sign, an optional coefficient and xK. The
// coefficient may be an integer, a decimal, an exponent form or a fraction
// ("1/3x2"); a missing coefficient means 1. Signs may be attached ("+2x2")
// or stand alone ("+ 2x2"). Variables absent from a line have coefficient 0
// and a repeated variable keeps its last coefficient. The number of lines
// fixes n.
//
// Every number is read exactly; "0.1x1" stores 1/10, not a float.
package eqtext
