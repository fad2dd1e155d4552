// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the shape checks of a linear system.
//  - Keep kernels (lu, substitution, equation) minimal by delegating nil/shape/length checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Length).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures m is a non-nil, non-empty square matrix.
//
// Every public constructor already guarantees squareness; this guard exists for
// nil and zero-value matrices handed in by callers.
// Errors: ErrDimension.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m == nil || m.n <= 0 || len(m.data) != m.n*m.n {
		return validatorErrorf("ValidateSquare", ErrDimension)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(v Vector, n int) error {
	if len(v) != n {
		return fmt.Errorf("ValidateVecLen: got %d, want %d: %w", len(v), n, ErrDimension)
	}

	return nil
}

// ValidateSystem checks that m is square and v has matching length, in that order.
// Errors: ErrDimension.
// Complexity: O(1).
func ValidateSystem(m *Matrix, v Vector) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVecLen(v, m.n); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}
