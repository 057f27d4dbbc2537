// SPDX-License-Identifier: MIT

package vcf

import "errors"

// Sentinel errors for VCF parsing.
var (
	// ErrNoHeader indicates the stream ended before a "#CHROM" header line.
	ErrNoHeader = errors.New("vcf: missing #CHROM header line")

	// ErrMalformedLine indicates a data line with fewer columns than the header.
	ErrMalformedLine = errors.New("vcf: malformed data line")

	// ErrMalformedGenotype indicates a GT value with a non-numeric allele.
	ErrMalformedGenotype = errors.New("vcf: malformed GT value")
)
