// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. When context
// is essential, wrap with fmt.Errorf("ctx: %w", ErrX); callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> empty/shape -> dimension mismatch -> index range -> numeric conversion.

var (
	// ErrDimension covers every shape violation of a linear system: the matrix
	// is nil, empty or not square, a row is ragged, or the vector length differs
	// from the matrix size.
	ErrDimension = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNumber signals that an entry could not be converted to an exact rational
	// (NaN or ±Inf input).
	ErrNumber = errors.New("matrix: entry is not a finite number")
)
