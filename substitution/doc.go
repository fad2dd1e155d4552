// Package substitution solves triangular systems exactly.
//
// Forward solves L·z = y top-down for a lower-triangular L. Backward solves
// U·x = z for an upper-triangular U by point-reflecting the system (reverse
// every row of U, reverse the row order, reverse z), running the forward
// procedure on the reflected lower-triangular system and reversing the
// answer. Both entry points therefore share one elimination loop.
//
// Diagonal entries are divided by even when they are 1, so externally
// supplied triangular matrices with a general diagonal work too. A zero
// diagonal entry fails with ErrDivisionByZero.
package substitution
