// SPDX-License-Identifier: MIT

// Package store persists an equation.Equation as JSON.
//
// Document layout:
//
//	{
//	  "Matrix":  [[2, -1], [-4, 6]],
//	  "Result":  [1, 2],
//	  "XVector": [1, 0.5],
//	  "Exact": {
//	    "Matrix":  [["2", "-1"], ["-4", "6"]],
//	    "Result":  ["1", "2"],
//	    "XVector": ["1", "1/2"]
//	  }
//	}
//
// The float fields are readable by tools that only know plain numbers; Exact
// keeps every rational lossless and is preferred on load. Files lacking Exact
// load from the float fields, each number converted through its shortest
// decimal form. XVector is written only when the system solves, and the
// float fields only when every value fits a float64.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/exactlu/equation"
	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/rational"
)

// ErrFormat marks a document that is not a valid equation file.
var ErrFormat = errors.New("store: invalid equation document")

// Document is the on-disk JSON form.
type Document struct {
	Matrix  [][]float64 `json:"Matrix,omitempty"`
	Result  []float64   `json:"Result,omitempty"`
	XVector []float64   `json:"XVector,omitempty"`
	Exact   *Exact      `json:"Exact,omitempty"`
}

// Exact carries the lossless rational values.
type Exact struct {
	Matrix  [][]rational.Rational `json:"Matrix"`
	Result  []rational.Rational   `json:"Result"`
	XVector []rational.Rational   `json:"XVector,omitempty"`
}

// Encode builds the Document for eq. The solution is included when Solve succeeds.
// The float fields are left out when any value falls outside float64 range;
// Exact then carries the document alone.
func Encode(eq *equation.Equation) *Document {
	m := eq.Matrix()
	y := eq.Result()
	doc := &Document{Exact: &Exact{Matrix: m.Rows(), Result: y}}
	x, err := eq.Solve()
	if err == nil {
		doc.Exact.XVector = x
	}

	rows, res, xs := m.Float64s(), y.Float64s(), []float64(nil)
	if err == nil {
		xs = x.Float64s()
	}
	if !finite(rows...) || !finite(res, xs) {
		return doc
	}
	doc.Matrix, doc.Result, doc.XVector = rows, res, xs

	return doc
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vals ...[]float64) bool {
	for _, vs := range vals {
		for _, v := range vs {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return false
			}
		}
	}

	return true
}

// Decode rebuilds an Equation from doc, preferring the Exact section.
// Errors: ErrFormat (missing matrix, non-finite numbers), matrix.ErrDimension.
func Decode(doc *Document) (*equation.Equation, error) {
	if doc == nil {
		return nil, ErrFormat
	}
	var (
		m   *matrix.Matrix
		y   matrix.Vector
		err error
	)
	if doc.Exact != nil && len(doc.Exact.Matrix) > 0 {
		m, err = matrix.FromRows(doc.Exact.Matrix)
		y = matrix.Vector(doc.Exact.Result)
	} else {
		if len(doc.Matrix) == 0 {
			return nil, fmt.Errorf("Decode: no matrix: %w", ErrFormat)
		}
		m, err = matrix.FromNumbers(doc.Matrix)
		if err == nil {
			y, err = matrix.VectorFromNumbers(doc.Result)
		}
	}
	if err != nil {
		if errors.Is(err, matrix.ErrNumber) {
			return nil, fmt.Errorf("Decode: %w: %w", ErrFormat, err)
		}
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return equation.NewEquation(m, y)
}

// Save writes eq to w as indented JSON.
func Save(w io.Writer, eq *equation.Equation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Encode(eq)); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}

// Load reads an equation document from r.
func Load(r io.Reader) (*equation.Equation, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("Load: %w: %w", ErrFormat, err)
	}

	return Decode(&doc)
}

// SaveFile writes eq to path, replacing any existing file.
func SaveFile(path string, eq *equation.Equation) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveFile: %w", cerr)
		}
	}()

	return Save(f, eq)
}

// LoadFile reads an equation document from path.
func LoadFile(path string) (*equation.Equation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}
