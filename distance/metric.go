// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/genonet/genotype"
)

// Metric selects the pairwise distance function.
type Metric int

const (
	// AllelicMismatch counts positional allele mismatches (slot 0 vs 0, slot 1 vs 1).
	AllelicMismatch Metric = iota

	// Euclidean is the L2 distance between mean-imputed 0/1/2 dosage vectors.
	Euclidean

	// Hamming counts variants whose mean-imputed dosages differ.
	Hamming
)

// String returns the configuration name of the metric.
func (m Metric) String() string {
	switch m {
	case AllelicMismatch:
		return "allelic"
	case Euclidean:
		return "euclidean"
	case Hamming:
		return "hamming"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps a configuration name (case-insensitive) to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "allelic", "mismatch", "allelic-mismatch":
		return AllelicMismatch, nil
	case "euclidean":
		return Euclidean, nil
	case "hamming":
		return Hamming, nil
	default:
		return 0, fmt.Errorf("distance: %q: %w", name, ErrUnknownMetric)
	}
}

// allelicMismatch counts mismatching allele slots over two equal-length rows.
// A variant where either call is Missing contributes 0.
// Complexity: O(V).
func allelicMismatch(a, b []genotype.Call) float64 {
	var d int
	b = b[:len(a)]
	for k, x := range a {
		y := b[k]
		if x.IsMissing() || y.IsMissing() {
			continue
		}
		if x.A0 != y.A0 {
			d++
		}
		if x.A1 != y.A1 {
			d++
		}
	}

	return float64(d)
}

// euclidean returns the L2 distance between two dosage rows.
// Complexity: O(V).
func euclidean(a, b []float64) float64 {
	var sum float64
	b = b[:len(a)]
	for k, x := range a {
		diff := x - b[k]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}

// hamming counts positions where two dosage rows differ.
// Complexity: O(V).
func hamming(a, b []float64) float64 {
	var d int
	b = b[:len(a)]
	for k, x := range a {
		if x != b[k] {
			d++
		}
	}

	return float64(d)
}
