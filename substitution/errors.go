// SPDX-License-Identifier: MIT

package substitution

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a triangular solve divides by a zero diagonal entry.
var ErrDivisionByZero = errors.New("substitution: division by zero diagonal entry")

// ZeroDiagonalError reports the 0-based row, in the caller's coordinates, whose
// diagonal entry was zero. It matches ErrDivisionByZero via errors.Is.
type ZeroDiagonalError struct {
	Row int
}

func (e *ZeroDiagonalError) Error() string {
	return fmt.Sprintf("substitution: row %d: %v", e.Row, ErrDivisionByZero)
}

// Unwrap exposes ErrDivisionByZero to errors.Is.
func (e *ZeroDiagonalError) Unwrap() error { return ErrDivisionByZero }
