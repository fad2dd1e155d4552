package store_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactlu/eqtext"
	"github.com/katalvlaran/exactlu/equation"
	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/store"
)

func mustParse(t *testing.T, src string) *equation.Equation {
	t.Helper()
	eq, err := eqtext.Parse(src)
	require.NoError(t, err)

	return eq
}

func TestSaveLoad_RoundTripExact(t *testing.T) {
	eq := mustParse(t, "1/3x1 +2x2 = 1/7\n-0.1x1 +x2 = 5")

	var buf bytes.Buffer
	require.NoError(t, store.Save(&buf, eq))

	got, err := store.Load(&buf)
	require.NoError(t, err)
	assert.True(t, got.Matrix().Equal(eq.Matrix()))
	assert.True(t, got.Result().Equal(eq.Result()))
}

func TestEncode_Layout(t *testing.T) {
	eq := mustParse(t, "2x1 -1x2 = 1\n-4x1 +6x2 = 0")
	doc := store.Encode(eq)

	assert.Equal(t, [][]float64{{2, -1}, {-4, 6}}, doc.Matrix)
	assert.Equal(t, []float64{1, 0}, doc.Result)
	assert.Equal(t, []float64{0.75, 0.5}, doc.XVector)
	require.NotNil(t, doc.Exact)
	assert.Equal(t, "[3/4, 1/2]", matrix.Vector(doc.Exact.XVector).String())

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"XVector":["3/4","1/2"]`)
	assert.Contains(t, string(raw), `"Matrix":[[2,-1],[-4,6]]`)
}

func TestEncode_UnsolvableOmitsXVector(t *testing.T) {
	eq := mustParse(t, "0x1 +1x2 = 1\n1x1 +0x2 = 1")
	doc := store.Encode(eq)
	assert.Nil(t, doc.XVector)
	assert.Nil(t, doc.Exact.XVector)

	var buf bytes.Buffer
	require.NoError(t, store.Save(&buf, eq))
	assert.NotContains(t, buf.String(), "XVector")

	back, err := store.Load(&buf)
	require.NoError(t, err)
	assert.True(t, back.Matrix().Equal(eq.Matrix()))
}

func TestLoad_FloatOnlyDocument(t *testing.T) {
	src := `{"Matrix": [[1, 0], [0, 2]], "Result": [0.1, 1], "XVector": [0.1, 0.5]}`
	eq, err := store.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "[1/10, 1]", eq.Result().String())

	x, err := eq.Solve()
	require.NoError(t, err)
	assert.Equal(t, "[1/10, 1/2]", x.String())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"not json", "hello", store.ErrFormat},
		{"no matrix", `{}`, store.ErrFormat},
		{"bad exact number", `{"Exact": {"Matrix": [["x"]], "Result": ["1"]}}`, store.ErrFormat},
		{"ragged", `{"Matrix": [[1, 2], [3]], "Result": [1, 2]}`, matrix.ErrDimension},
		{"result length", `{"Exact": {"Matrix": [["1"]], "Result": ["1", "2"]}}`, matrix.ErrDimension},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eq, err := store.Load(strings.NewReader(tc.src))
			require.Nil(t, eq)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := store.Decode(nil)
	assert.ErrorIs(t, err, store.ErrFormat)
}

func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.json")
	eq := mustParse(t, "3x1 +1x2 = 2\n1x1 +2x2 = 1/2")

	require.NoError(t, store.SaveFile(path, eq))
	got, err := store.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, got.Matrix().Equal(eq.Matrix()))
	assert.True(t, got.Result().Equal(eq.Result()))

	_, err = store.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSave_OutOfFloatRange(t *testing.T) {
	eq := mustParse(t, "1e400x1 = 1\n")
	doc := store.Encode(eq)
	assert.Nil(t, doc.Matrix)
	assert.Nil(t, doc.Result)
	assert.Nil(t, doc.XVector)
	require.NotNil(t, doc.Exact)
	require.Len(t, doc.Exact.XVector, 1)

	var buf bytes.Buffer
	require.NoError(t, store.Save(&buf, eq))

	got, err := store.Load(&buf)
	require.NoError(t, err)
	assert.True(t, got.Matrix().Equal(eq.Matrix()))
	x, err := got.Solve()
	require.NoError(t, err)
	assert.Equal(t, "1", x[0].Mul(eq.Matrix().Rows()[0][0]).String())
}
