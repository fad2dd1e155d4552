// Package matrix_test contains unit tests for the square rational Matrix and Vector.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/rational"
)

func TestNewDefaultZero(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		t.Run(fmt.Sprintf("%dx%d", n, n), func(t *testing.T) {
			m, err := matrix.New(n)
			require.NoError(t, err)
			require.Equal(t, n, m.Size())
			var i, j int
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					if !MustAt(t, m, i, j).IsZero() {
						t.Fatalf("element [%d,%d] of a new Matrix(%dx%d) must be 0", i, j, n, n)
					}
				}
			}
		})
	}
}

func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := matrix.New(n)
		AssertErrorIs(t, err, matrix.ErrDimension)
	}
	_, err := matrix.Identity(0)
	AssertErrorIs(t, err, matrix.ErrDimension)
}

func TestIdentity(t *testing.T) {
	m, err := matrix.Identity(3)
	require.NoError(t, err)
	assert.True(t, m.IsUnitLowerTriangular())
	assert.True(t, m.IsUpperTriangular())
	assert.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", m.String())
}

func TestFromRows_Shape(t *testing.T) {
	_, err := matrix.FromRows(nil)
	AssertErrorIs(t, err, matrix.ErrDimension)

	ragged := [][]rational.Rational{
		{rational.One(), rational.Zero()},
		{rational.One()},
	}
	_, err = matrix.FromRows(ragged)
	AssertErrorIs(t, err, matrix.ErrDimension)

	// 2 rows of 3 columns is not square
	_, err = matrix.FromNumbers([][]int{{1, 2, 3}, {4, 5, 6}})
	AssertErrorIs(t, err, matrix.ErrDimension)
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]rational.Rational{
		{rational.FromInt(1), rational.FromInt(2)},
		{rational.FromInt(3), rational.FromInt(4)},
	}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = rational.FromInt(99)
	assert.Equal(t, "1", MustAt(t, m, 0, 0).String())
}

func TestFromNumbers_Floats(t *testing.T) {
	m, err := matrix.FromNumbers([][]float64{{0.1, 0.5}, {-2, 1e-3}})
	require.NoError(t, err)
	assert.Equal(t, "1/10", MustAt(t, m, 0, 0).String())
	assert.Equal(t, "1/2", MustAt(t, m, 0, 1).String())
	assert.Equal(t, "-2", MustAt(t, m, 1, 0).String())
	assert.Equal(t, "1/1000", MustAt(t, m, 1, 1).String())

	_, err = matrix.FromNumbers([][]float64{{1, math.NaN()}, {0, 1}})
	AssertErrorIs(t, err, matrix.ErrNumber)
}

func TestAtSet_Bounds(t *testing.T) {
	m := MustMatrix(t, [][]int64{{1, 2}, {3, 4}})
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		AssertErrorIs(t, err, matrix.ErrOutOfRange)
		err = m.Set(idx[0], idx[1], rational.One())
		AssertErrorIs(t, err, matrix.ErrOutOfRange)
	}

	require.NoError(t, m.Set(1, 0, rational.MustNew(1, 3)))
	assert.Equal(t, "1/3", MustAt(t, m, 1, 0).String())
}

func TestClone_Independent(t *testing.T) {
	m := MustMatrix(t, [][]int64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(0, 0, rational.FromInt(7)))
	assert.False(t, m.Equal(c))
	assert.Equal(t, "1", MustAt(t, m, 0, 0).String())

	var nilM *matrix.Matrix
	assert.Nil(t, nilM.Clone())
	assert.Nil(t, nilM.Rows())
	assert.Equal(t, 0, nilM.Size())
	assert.True(t, nilM.Equal(nil))
	assert.False(t, m.Equal(nil))
}

func TestRows_Float64s(t *testing.T) {
	m, err := matrix.FromNumbers([][]float64{{0.25, 1}, {3, -0.5}})
	require.NoError(t, err)
	rows := m.Rows()
	rows[0][0] = rational.FromInt(5)
	assert.Equal(t, "1/4", MustAt(t, m, 0, 0).String())
	assert.Equal(t, [][]float64{{0.25, 1}, {3, -0.5}}, m.Float64s())
}

func TestNilMatrix_Queries(t *testing.T) {
	var m *matrix.Matrix
	assert.Nil(t, m.Float64s())
	assert.Equal(t, "", m.String())
	assert.False(t, m.IsLowerTriangular())
	assert.False(t, m.IsUnitLowerTriangular())
	assert.False(t, m.IsUpperTriangular())
}

func TestNilMatrix_AtSet(t *testing.T) {
	var m *matrix.Matrix
	_, err := m.At(0, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	AssertErrorIs(t, m.Set(0, 0, rational.One()), matrix.ErrOutOfRange)
}
