// SPDX-License-Identifier: MIT

package distance

import "runtime"

// Option configures Compute.
type Option func(o *options)

type options struct {
	metric    Metric
	workers   int
	unordered bool
}

// Defaults.
const (
	// DefaultMetric is the allelic-mismatch metric.
	DefaultMetric = AllelicMismatch

	// DefaultUnordered keeps positional slot comparison.
	DefaultUnordered = false
)

func defaultOptions() options {
	return options{
		metric:    DefaultMetric,
		workers:   runtime.GOMAXPROCS(0),
		unordered: DefaultUnordered,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMetric selects the distance metric.
func WithMetric(m Metric) Option {
	return func(o *options) { o.metric = m }
}

// WithWorkers bounds the number of concurrent row tasks.
// n <= 0 keeps the default of runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithUnorderedGenotypes sorts the alleles of every call before the
// allelic-mismatch comparison, treating 0/1 and 1/0 as the same genotype.
// Dosage metrics are unaffected.
func WithUnorderedGenotypes() Option {
	return func(o *options) { o.unordered = true }
}
