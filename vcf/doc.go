// Package vcf adapts Variant Call Format text into a genotype.Source.
//
// Only what the relationship engine needs is parsed: the sample names from
// the "#CHROM" header line and, per data line, the GT subfield of every
// sample column. Plain text, gzip and BGZF (multi-member gzip) inputs are
// accepted; compression is detected from the stream's magic bytes.
//
// Call policy:
//
//   - "a/b" and "a|b" become genotype.NewCall(a, b) with slot order kept.
//   - Any call with a "." allele ("./.", "./1", "."), a non-diploid ploidy,
//     or a sample whose FORMAT lacks GT becomes genotype.Missing.
//   - A non-numeric allele is a fatal ErrMalformedGenotype naming the sample
//     and line.
package vcf
