// SPDX-License-Identifier: MIT

// Package generate: functional configuration for random systems.
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package generate

import "math"

// ---------- Defaults (single source of truth) ----------
const (
	// DefaultSize is the number of equations (and unknowns).
	DefaultSize = 8

	// DefaultLow and DefaultHigh bound every coefficient and right-hand side (inclusive).
	DefaultLow  = -50
	DefaultHigh = 50

	// DefaultSeed is used when callers pass seed == 0.
	DefaultSeed int64 = 1

	// DefaultMaxAttempts bounds the retries of WithNonZeroPivots.
	DefaultMaxAttempts = 100
)

// ---------- Internal panic messages (no magic strings) ----------
const (
	panicSizeInvalid     = "generate: WithSize: size must be >= 1"
	panicRangeInvalid    = "generate: WithRange: need low <= high and a range below math.MaxInt64"
	panicAttemptsInvalid = "generate: WithMaxAttempts: attempts must be >= 1"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	size        int
	low, high   int64
	seed        int64
	nonZero     bool
	maxAttempts int
}

func defaultOptions() options {
	return options{
		size:        DefaultSize,
		low:         DefaultLow,
		high:        DefaultHigh,
		seed:        DefaultSeed,
		maxAttempts: DefaultMaxAttempts,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSize sets the system dimension n. Panics if size < 1.
func WithSize(size int) Option {
	if size < 1 {
		panic(panicSizeInvalid)
	}

	return func(o *options) { o.size = size }
}

// WithRange sets the inclusive integer range of every entry.
// Panics if low > high or the range holds more than math.MaxInt64 values.
func WithRange(low, high int64) Option {
	if low > high || high-low < 0 || high-low == math.MaxInt64 {
		panic(panicRangeInvalid)
	}

	return func(o *options) { o.low, o.high = low, high }
}

// WithSeed fixes the random stream. Seed 0 selects DefaultSeed, so the zero
// configuration is reproducible too.
func WithSeed(seed int64) Option {
	return func(o *options) {
		if seed == 0 {
			seed = DefaultSeed
		}
		o.seed = seed
	}
}

// WithNonZeroPivots redraws the system until it factorizes without pivoting.
func WithNonZeroPivots() Option {
	return func(o *options) { o.nonZero = true }
}

// WithMaxAttempts bounds the draws made under WithNonZeroPivots. Panics if attempts < 1.
func WithMaxAttempts(attempts int) Option {
	if attempts < 1 {
		panic(panicAttemptsInvalid)
	}

	return func(o *options) { o.maxAttempts = attempts }
}
