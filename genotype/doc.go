// Package genotype holds the in-memory genotype matrix consumed by the
// distance engine: one row of diploid calls per sample, one column per variant.
//
// What & Why
//
//   - Call is a fixed-schema pair of allele indices (slot 0, slot 1) or the
//     distinguished Missing value. Slot order is preserved exactly as read;
//     no unphased normalization happens here.
//   - Matrix stores every sample's calls contiguously (row-major, N×V), so the
//     pairwise distance kernels walk two flat slices per pair.
//   - Source abstracts any per-variant genotype stream (see package vcf).
//     Collect drains a Source into a Matrix and enforces the construction
//     invariants.
//
// Error Conditions
//
//   - ErrEmptySampleID    : a sample identifier is "".
//   - ErrDuplicateSample  : the same sample identifier occurs twice.
//   - ErrCallCount        : a variant record carries a different number of calls than samples.
//   - ErrRaggedRows       : per-sample rows passed to NewMatrix differ in length.
//   - ErrBadAllele        : a call holds a negative allele index that is not Missing.
//
// All of them are fatal: the Matrix is never partially built. Every returned
// error wraps the sentinel and names the offending sample or variant.
//
// Lifecycle
//
//	A Matrix is immutable once returned. Row returns a read-only view into the
//	backing storage; callers must not modify it.
package genotype
