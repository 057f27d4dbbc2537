// Package distance computes the symmetric pairwise genetic distance matrix
// of a genotype.Matrix.
//
// What & Why
//
//	Every unordered sample pair (i, j) is compared exactly once; the value is
//	written to (i, j) and mirrored to (j, i), so the result is exactly
//	symmetric with a zero diagonal. The work is O(N²·V) and dominates the
//	whole pipeline, so rows of the upper triangle are spread across a bounded
//	errgroup and each task owns a disjoint set of cells in one flat,
//	pre-allocated slice; no locking is needed.
//
// Metrics
//
//   - AllelicMismatch (default): for each variant compare slot 0 with slot 0
//     and slot 1 with slot 1; each mismatching slot adds 1. A variant where
//     either call is Missing contributes 0. With WithUnorderedGenotypes the
//     alleles of each call are sorted first, so 0/1 and 1/0 are equal.
//     Range: integers in [0, 2·V].
//   - Euclidean: L2 distance between 0/1/2 dosage vectors, missing dosages
//     imputed with the per-variant mean.
//   - Hamming: number of variants whose (imputed) dosages differ.
//
// Cancellation
//
//	Compute watches its context between rows and every few hundred pairs
//	inside a row. A cancelled computation returns the context error and no
//	matrix; partial results are never exposed.
//
// Complexity
//
//	Time O(N²·V / workers), memory O(N² + N·V).
package distance
