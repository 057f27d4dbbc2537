// SPDX-License-Identifier: MIT
//
// File: compute.go
// Role: parallel O(N²·V) pairwise distance kernel.

package distance

import (
	"context"
	"fmt"

	"github.com/katalvlaran/genonet/genotype"
	"golang.org/x/sync/errgroup"
)

// ctxCheckEvery is how many pairs a row task computes between context checks.
const ctxCheckEvery = 256

// pairFunc returns the distance between samples i and j.
type pairFunc func(i, j int) float64

// Compute returns the N×N distance matrix of gm.
//
// Steps:
//  1. Validate input and gather options; N < 2 returns the trivial (all-zero) matrix.
//  2. Prepare the metric kernel over contiguous per-sample rows
//     (canonicalized calls or the imputed dosage view when required).
//  3. Schedule one task per row i < N-1 on an errgroup limited to the worker
//     count. Task i computes D[i][j] for j > i and mirrors it into D[j][i];
//     no two tasks touch the same cell.
//  4. On cancellation return the context error and discard the matrix.
//
// Complexity: O(N²·V) time, O(N² + N·V) memory.
func Compute(ctx context.Context, gm *genotype.Matrix, opts ...Option) (*Matrix, error) {
	// 1) Validate input and resolve options.
	if gm == nil {
		return nil, ErrNilGenotypes
	}
	o := gatherOptions(opts)

	// 2) Bind the metric to per-sample row slices.
	pair, err := kernel(gm, o)
	if err != nil {
		return nil, err
	}

	// N < 2 has no off-diagonal cells; the zero matrix is the answer.
	dm := newMatrix(gm.Samples())
	if dm.n < 2 {
		return dm, nil
	}

	// 3) + 4) Fill the upper triangle in parallel; a cancelled run yields no matrix.
	if err = fillMatrix(ctx, dm, pair, o.workers); err != nil {
		return nil, err
	}

	return dm, nil
}

// fillMatrix runs one fillRow task per row i < n-1 on at most workers goroutines.
func fillMatrix(ctx context.Context, dm *Matrix, pair pairFunc, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < dm.n-1; i++ {
		// Stop scheduling once any task failed or the caller cancelled.
		if gctx.Err() != nil {
			break
		}
		// g.Go blocks while workers tasks are in flight.
		g.Go(func() error {
			return fillRow(gctx, dm, i, pair)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// errgroup cancels gctx only on task failure; honour an outer cancel that
	// arrived after the last task finished checking.
	return ctx.Err()
}

// fillRow computes the upper-triangle part of row i and mirrors it.
func fillRow(ctx context.Context, dm *Matrix, i int, pair pairFunc) error {
	n := dm.n
	for j := i + 1; j < n; j++ {
		// Poll the context every ctxCheckEvery pairs, not every pair.
		if (j-i)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		// Row i owns cells (i, j>i) and their mirrors (j, i); no other task writes them.
		d := pair(i, j)
		dm.data[i*n+j] = d
		dm.data[j*n+i] = d
	}

	// Short rows may never reach a poll; check once on the way out.
	return ctx.Err()
}

// kernel binds the configured metric to gm's row storage.
func kernel(gm *genotype.Matrix, o options) (pairFunc, error) {
	n, v := gm.NumSamples(), gm.NumVariants()

	switch o.metric {
	case AllelicMismatch:
		// Zero-copy views over the row-major call storage.
		rows := make([][]genotype.Call, n)
		for i := range rows {
			rows[i] = gm.Row(i)
		}
		// Unordered comparison canonicalizes once up front, into one flat block.
		if o.unordered {
			flat := make([]genotype.Call, n*v)
			for i := range rows {
				dst := flat[i*v : (i+1)*v : (i+1)*v]
				for k, c := range rows[i] {
					dst[k] = c.Canonical()
				}
				rows[i] = dst
			}
		}

		return func(i, j int) float64 { return allelicMismatch(rows[i], rows[j]) }, nil

	case Euclidean, Hamming:
		// Dosage metrics read the imputed view; capped slices keep rows disjoint.
		dos := gm.Dosages()
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = dos[i*v : (i+1)*v : (i+1)*v]
		}
		if o.metric == Euclidean {
			return func(i, j int) float64 { return euclidean(rows[i], rows[j]) }, nil
		}

		return func(i, j int) float64 { return hamming(rows[i], rows[j]) }, nil

	default:
		return nil, fmt.Errorf("distance: %v: %w", o.metric, ErrUnknownMetric)
	}
}
