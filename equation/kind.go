// SPDX-License-Identifier: MIT

package equation

import (
	"errors"

	"github.com/katalvlaran/exactlu/lu"
	"github.com/katalvlaran/exactlu/matrix"
	"github.com/katalvlaran/exactlu/substitution"
)

// Kind is the outcome class of a Solve call.
type Kind int

const (
	KindNone           Kind = iota // err == nil
	KindDimension                  // matrix.ErrDimension
	KindDecomposition              // lu.ErrDecomposition
	KindDivisionByZero             // substitution.ErrDivisionByZero
	KindOther                      // anything else
)

var kindNames = [...]string{
	KindNone:           "none",
	KindDimension:      "dimension",
	KindDecomposition:  "decomposition",
	KindDivisionByZero: "division by zero",
	KindOther:          "other",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Classify maps err to its Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, matrix.ErrDimension):
		return KindDimension
	case errors.Is(err, lu.ErrDecomposition):
		return KindDecomposition
	case errors.Is(err, substitution.ErrDivisionByZero):
		return KindDivisionByZero
	default:
		return KindOther
	}
}
