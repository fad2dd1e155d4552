// SPDX-License-Identifier: MIT

// Package rational - exact fraction value type used by every numeric kernel.
//
// Purpose:
//   - Provide an immutable fraction with arbitrary-precision numerator and denominator.
//   - Keep the invariant "denominator > 0, gcd(num, den) == 1" after every operation.
//   - Convert floating-point input through its shortest exact decimal, never by truncation.
//
// Notes:
//   - Rational wraps *big.Rat; every operation allocates a fresh big.Rat and
//     never mutates its operands, so values may be shared freely.
//   - The zero value is a valid 0.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrDivisionByZero is returned by Quo and New when the divisor is exactly zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNotFinite is returned when a NaN or ±Inf float is converted.
	ErrNotFinite = errors.New("rational: NaN or Inf is not a rational number")

	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("rational: invalid syntax")
)

// Rational is an exact fraction. The zero value is 0.
type Rational struct {
	r *big.Rat // nil means 0; never mutated after construction
}

// Number lists the built-in numeric types accepted by FromNumber.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

var (
	bigZero = new(big.Rat)
	bigOne  = big.NewRat(1, 1)
)

// Zero returns the rational 0.
func Zero() Rational { return Rational{} }

// One returns the rational 1.
func One() Rational { return Rational{r: bigOne} }

// New returns num/den reduced to lowest terms.
// Returns ErrDivisionByZero if den == 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}

	return Rational{r: big.NewRat(num, den)}, nil
}

// MustNew is New that panics on a zero denominator. Intended for literals.
func MustNew(num, den int64) Rational {
	v, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("rational: MustNew(%d, %d): %v", num, den, err))
	}

	return v
}

// FromInt returns the integer v as a rational.
func FromInt(v int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(v)}
}

// FromBig returns a copy of v. A nil v is 0.
func FromBig(v *big.Rat) Rational {
	if v == nil {
		return Rational{}
	}

	return Rational{r: new(big.Rat).Set(v)}
}

// FromFloat converts f through its shortest decimal representation, so 0.1
// becomes 1/10 rather than the binary expansion of the nearest double.
// Returns ErrNotFinite for NaN and ±Inf.
func FromFloat(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, ErrNotFinite
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		// FormatFloat output of a finite value always parses.
		return Rational{}, fmt.Errorf("FromFloat(%g): %w", f, ErrSyntax)
	}

	return Rational{r: r}, nil
}

// FromNumber converts any built-in integer or float type (named types included).
// Integers convert exactly; floats follow FromFloat.
func FromNumber[T Number](v T) (Rational, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Rational{r: new(big.Rat).SetInt(new(big.Int).SetUint64(rv.Uint()))}, nil
	case reflect.Float32:
		return fromFloat32(float32(rv.Float()))
	default:
		return FromFloat(rv.Float())
	}
}

func fromFloat32(f float32) (Rational, error) {
	g := float64(f)
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return Rational{}, ErrNotFinite
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(g, 'g', -1, 32))
	if !ok {
		return Rational{}, fmt.Errorf("FromFloat(%g): %w", f, ErrSyntax)
	}

	return Rational{r: r}, nil
}

// Parse accepts integers ("-3"), decimals ("0.25"), exponents ("1e-3") and
// fractions ("3/4", "-7/2"). Surrounding blanks are ignored.
func Parse(s string) (Rational, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	if num, den, ok := strings.Cut(t, "/"); ok {
		d, ok := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !ok {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}
		if d.Sign() == 0 {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrDivisionByZero)
		}
		n, ok := new(big.Int).SetString(strings.TrimSpace(num), 10)
		if !ok {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}

		return Rational{r: new(big.Rat).SetFrac(n, d)}, nil
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return Rational{r: r}, nil
}

// MustParse is Parse that panics on error. Intended for literals in tests and examples.
func MustParse(s string) Rational {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

func (a Rational) big() *big.Rat {
	if a.r == nil {
		return bigZero
	}

	return a.r
}

// Big returns a copy of the underlying value.
func (a Rational) Big() *big.Rat { return new(big.Rat).Set(a.big()) }

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.big(), b.big())}
}

// Sub returns a - b.
func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.big(), b.big())}
}

// Mul returns a * b.
func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.big(), b.big())}
}

// Quo returns a / b, or ErrDivisionByZero if b is exactly zero.
func (a Rational) Quo(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivisionByZero
	}

	return Rational{r: new(big.Rat).Quo(a.big(), b.big())}, nil
}

// Neg returns -a.
func (a Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(a.big())}
}

// Sign returns -1, 0 or +1.
func (a Rational) Sign() int { return a.big().Sign() }

// IsZero reports whether a == 0.
func (a Rational) IsZero() bool { return a.Sign() == 0 }

// IsOne reports whether a == 1.
func (a Rational) IsOne() bool { return a.big().Cmp(bigOne) == 0 }

// IsInt reports whether the denominator is 1.
func (a Rational) IsInt() bool { return a.big().IsInt() }

// Cmp compares a and b and returns -1, 0 or +1.
func (a Rational) Cmp(b Rational) int { return a.big().Cmp(b.big()) }

// Equal reports exact equality.
func (a Rational) Equal(b Rational) bool { return a.Cmp(b) == 0 }

// Num returns a copy of the numerator (sign included).
func (a Rational) Num() *big.Int { return new(big.Int).Set(a.big().Num()) }

// Denom returns a copy of the denominator, always > 0.
func (a Rational) Denom() *big.Int { return new(big.Int).Set(a.big().Denom()) }

// Float64 returns the nearest float64. Use only at presentation boundaries.
func (a Rational) Float64() float64 {
	f, _ := a.big().Float64()
	return f
}

// String formats a as "n" for integers and "n/d" otherwise.
func (a Rational) String() string {
	r := a.big()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.String()
}
