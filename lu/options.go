// SPDX-License-Identifier: MIT

// Package lu: functional configuration for Factorize.
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package lu

// DefaultWorkers runs the factorization on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "lu: WithWorkers: workers must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	tracer  Tracer // nil disables tracing
	workers int    // >= 1; DefaultWorkers
}

func gatherOptions(opts []Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTracer installs t to receive every elimination step. A nil t disables tracing.
// Tracing never changes numeric results.
func WithTracer(t Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithWorkers bounds the goroutines used inside one elimination phase.
// Panics if workers < 1 (programmer error).
//
// Notes:
//   - Worth it only for larger n; rational products dominate the cost there.
//   - Output is bit-for-bit identical to the sequential path for any worker count.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = workers }
}
