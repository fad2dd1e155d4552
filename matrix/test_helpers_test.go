// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for matrix tests.
//   • Keep every fixture integral or a simple fraction so expectations stay exact.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/rational"
)

// MustMatrix BUILDS an n×n *Matrix from integer rows or fails the test.
func MustMatrix(t *testing.T, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromNumbers(rows)
	if err != nil {
		t.Fatalf("matrix.FromNumbers(%v): want err == nil, got: %v", rows, err)
	}

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) rational.Rational {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): want err == nil, got: %v", i, j, err)
	}

	return v
}

// Vec BUILDS a Vector from integers.
func Vec(vals ...int64) matrix.Vector {
	v := make(matrix.Vector, len(vals))
	for i, x := range vals {
		v[i] = rational.FromInt(x)
	}

	return v
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}
