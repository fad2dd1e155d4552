package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactlu/generate"
	"github.com/katalvlaran/exactlu/rational"
)

func TestSystem_Defaults(t *testing.T) {
	eq, err := generate.System()
	require.NoError(t, err)
	require.Equal(t, generate.DefaultSize, eq.Size())
	require.Len(t, eq.Result(), generate.DefaultSize)

	lo, hi := rational.FromInt(generate.DefaultLow), rational.FromInt(generate.DefaultHigh)
	for _, row := range eq.Matrix().Rows() {
		for _, v := range row {
			assert.True(t, v.IsInt())
			assert.True(t, v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0, "%s outside range", v)
		}
	}
}

func TestSystem_Deterministic(t *testing.T) {
	a, err := generate.System(generate.WithSeed(42), generate.WithSize(5))
	require.NoError(t, err)
	b, err := generate.System(generate.WithSeed(42), generate.WithSize(5))
	require.NoError(t, err)
	assert.True(t, a.Matrix().Equal(b.Matrix()))
	assert.True(t, a.Result().Equal(b.Result()))

	c, err := generate.System(generate.WithSeed(43), generate.WithSize(5))
	require.NoError(t, err)
	assert.False(t, a.Matrix().Equal(c.Matrix()))

	// Seed 0 is the default seed.
	d, err := generate.System(generate.WithSeed(0))
	require.NoError(t, err)
	e, err := generate.System()
	require.NoError(t, err)
	assert.True(t, d.Matrix().Equal(e.Matrix()))
}

func TestSystem_Range(t *testing.T) {
	eq, err := generate.System(generate.WithSize(6), generate.WithRange(-2, 2), generate.WithSeed(9))
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, row := range eq.Matrix().Rows() {
		for _, v := range row {
			seen[v.String()] = true
			assert.True(t, v.Cmp(rational.FromInt(-2)) >= 0 && v.Cmp(rational.FromInt(2)) <= 0)
		}
	}
	assert.Greater(t, len(seen), 1)

	fixed, err := generate.System(generate.WithSize(3), generate.WithRange(7, 7))
	require.NoError(t, err)
	for _, v := range fixed.Result() {
		assert.Equal(t, "7", v.String())
	}
}

func TestSystem_NonZeroPivots(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		eq, err := generate.System(
			generate.WithSize(4),
			generate.WithRange(-1, 1),
			generate.WithSeed(seed),
			generate.WithNonZeroPivots(),
		)
		require.NoError(t, err, "seed %d", seed)
		_, err = eq.Factorize()
		require.NoError(t, err, "seed %d", seed)
	}
}

func TestSystem_Exhausted(t *testing.T) {
	// Every entry is 0, so the first pivot is always zero.
	_, err := generate.System(
		generate.WithSize(2),
		generate.WithRange(0, 0),
		generate.WithNonZeroPivots(),
		generate.WithMaxAttempts(3),
	)
	require.ErrorIs(t, err, generate.ErrExhausted)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { generate.WithSize(0) })
	assert.Panics(t, func() { generate.WithRange(5, 4) })
	assert.Panics(t, func() { generate.WithRange(-1<<63, 1<<63-1) })
	assert.Panics(t, func() { generate.WithMaxAttempts(0) })
	assert.NotPanics(t, func() { generate.WithRange(-1, -1) })
}
