// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Call, Record and Source declarations shared by the matrix builder and adapters.

package genotype

import "strconv"

// missingAllele marks both slots of the Missing call.
const missingAllele int32 = -1

// Call is one diploid genotype call: allele indices for slot 0 and slot 1.
//
// Allele indices are non-negative (0 = reference, 1.. = alternates).
// A call with both slots set to -1 is the distinguished Missing value.
type Call struct {
	// A0 is the allele index in slot 0.
	A0 int32

	// A1 is the allele index in slot 1.
	A1 int32
}

// Missing is the distinguished MISSING genotype call.
var Missing = Call{A0: missingAllele, A1: missingAllele}

// NewCall returns the call (a0, a1) preserving slot order.
// Both indices must fit in an int32; parsers reject wider values first.
func NewCall(a0, a1 int) Call {
	return Call{A0: int32(a0), A1: int32(a1)}
}

// IsMissing reports whether c is the Missing call.
func (c Call) IsMissing() bool {
	return c == Missing
}

// Canonical returns c with its alleles sorted ascending, so that (1,0) and
// (0,1) compare equal. Missing is returned unchanged.
func (c Call) Canonical() Call {
	if c.A1 < c.A0 {
		return Call{A0: c.A1, A1: c.A0}
	}

	return c
}

// Dosage returns the alternate-allele dosage (0, 1 or 2) of a biallelic call.
// ok is false for Missing and for calls that carry an allele index above 1.
func (c Call) Dosage() (dosage float64, ok bool) {
	if c.A0 < 0 || c.A1 < 0 || c.A0 > 1 || c.A1 > 1 {
		return 0, false
	}

	return float64(c.A0 + c.A1), true
}

// String renders the call in VCF-like unphased notation ("0/1", "./.").
func (c Call) String() string {
	if c.IsMissing() {
		return "./."
	}

	return strconv.Itoa(int(c.A0)) + "/" + strconv.Itoa(int(c.A1))
}

// valid reports whether c is Missing or carries two non-negative alleles.
func (c Call) valid() bool {
	return c.IsMissing() || (c.A0 >= 0 && c.A1 >= 0)
}

// Record is one variant: its identifier and one call per sample, in the
// sample order announced by Source.Samples.
type Record struct {
	// ID identifies the variant (e.g. "chr1:12345" or an rsID).
	ID string

	// Calls holds exactly one Call per sample.
	Calls []Call
}

// Source streams variant records for a fixed sample set.
//
// Samples is called once before the first Next. Next returns io.EOF after
// the last record; any other error aborts collection.
type Source interface {
	// Samples returns the sample identifiers in column order.
	Samples() []string

	// Next returns the next variant record or io.EOF.
	Next() (Record, error)
}
