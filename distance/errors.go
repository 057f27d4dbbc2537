// SPDX-License-Identifier: MIT

package distance

import "errors"

// Sentinel errors for distance computation and matrix ingestion.
var (
	// ErrNilGenotypes indicates Compute was given a nil genotype matrix.
	ErrNilGenotypes = errors.New("distance: genotype matrix is nil")

	// ErrUnknownMetric indicates an unrecognized metric value or name.
	ErrUnknownMetric = errors.New("distance: unknown metric")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("distance: index out of range")

	// ErrUnknownSample indicates a sample ID absent from the matrix.
	ErrUnknownSample = errors.New("distance: unknown sample id")

	// ErrDuplicateSample indicates the same sample ID labels two rows.
	ErrDuplicateSample = errors.New("distance: duplicate sample id")

	// ErrDimensionMismatch indicates the row count, row lengths and ID count disagree.
	ErrDimensionMismatch = errors.New("distance: dimension mismatch")

	// ErrAsymmetry indicates D[i][j] != D[j][i] beyond the tolerance.
	ErrAsymmetry = errors.New("distance: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal indicates a diagonal entry beyond the tolerance.
	ErrNonZeroDiagonal = errors.New("distance: diagonal not zero within eps")

	// ErrBadValue indicates a NaN, ±Inf or negative distance.
	ErrBadValue = errors.New("distance: NaN, Inf or negative entry")
)
