// SPDX-License-Identifier: MIT

package genotype

import "errors"

// Sentinel errors for genotype matrix construction.
var (
	// ErrEmptySampleID indicates a sample identifier is the empty string.
	ErrEmptySampleID = errors.New("genotype: sample ID is empty")

	// ErrDuplicateSample indicates the same sample identifier was supplied twice.
	ErrDuplicateSample = errors.New("genotype: duplicate sample ID")

	// ErrCallCount indicates a variant record whose call count differs from the sample count.
	ErrCallCount = errors.New("genotype: call count does not match sample count")

	// ErrRaggedRows indicates per-sample genotype rows of differing lengths.
	ErrRaggedRows = errors.New("genotype: variant vectors differ in length")

	// ErrBadAllele indicates a negative allele index in a call that is not Missing.
	ErrBadAllele = errors.New("genotype: invalid allele index")

	// ErrNilSource indicates Collect was called without a Source.
	ErrNilSource = errors.New("genotype: source is nil")
)
