// SPDX-License-Identifier: MIT

package lu

import (
	"errors"
	"fmt"
)

// ErrDecomposition is returned when a zero is encountered on the matrix's
// effective diagonal during elimination. No pivoting is attempted.
var ErrDecomposition = errors.New("lu: zero encountered on the matrix's effective diagonal during elimination")

// PivotError reports which pivot U[Index][Index] (0-based) of an n×n matrix
// (n == Size) was exactly zero. It matches ErrDecomposition via errors.Is.
type PivotError struct {
	Index int
	Size  int
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("lu: pivot u%s is zero: %v", label(e.Index, e.Index, e.Size), ErrDecomposition)
}

// Unwrap exposes ErrDecomposition to errors.Is.
func (e *PivotError) Unwrap() error { return ErrDecomposition }
