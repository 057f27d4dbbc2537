// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: immutable N×V genotype matrix with contiguous per-sample rows.

package genotype

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ctxCheckEvery is how many variant records Collect reads between context checks.
const ctxCheckEvery = 1024

// Matrix is an immutable [samples][variants] table of genotype calls.
//
// calls holds N*V entries in row-major order: the calls of sample i occupy
// calls[i*V : (i+1)*V].
type Matrix struct {
	ids      []string       // sample IDs in row order
	index    map[string]int // sample ID → row
	variants []string       // variant IDs in column order
	v        int            // variant count
	calls    []Call         // flat row-major storage, len == len(ids)*v
}

// NewMatrix builds a Matrix from one row of calls per sample.
//
// Steps:
//  1. Validate the sample IDs (non-empty, unique).
//  2. Validate that ids and rows align and every row has the same length.
//  3. Validate every call (Missing or non-negative alleles).
//  4. Copy rows into flat row-major storage.
//
// Complexity: O(N·V) time and memory.
func NewMatrix(ids []string, rows [][]Call) (*Matrix, error) {
	index, err := indexSamples(ids)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("genotype: %d rows for %d samples: %w", len(rows), len(ids), ErrRaggedRows)
	}

	v := 0
	if len(rows) > 0 {
		v = len(rows[0])
	}
	calls := make([]Call, 0, len(ids)*v)
	for i, row := range rows {
		if len(row) != v {
			return nil, fmt.Errorf("genotype: sample %q has %d variants, sample %q has %d: %w",
				ids[i], len(row), ids[0], v, ErrRaggedRows)
		}
		for j, c := range row {
			if !c.valid() {
				return nil, fmt.Errorf("genotype: sample %q variant %d call %v: %w", ids[i], j, c, ErrBadAllele)
			}
		}
		calls = append(calls, row...)
	}

	return &Matrix{
		ids:      append([]string(nil), ids...),
		index:    index,
		variants: defaultVariantIDs(v),
		v:        v,
		calls:    calls,
	}, nil
}

// Collect drains src into a Matrix.
//
// Steps:
//  1. Read and validate the sample IDs announced by src.
//  2. Read records until io.EOF, validating call counts and allele indices.
//     The context is checked every ctxCheckEvery records.
//  3. Transpose the variant-major buffer into sample-major rows.
//
// Any error aborts collection; no partial Matrix is returned.
// Complexity: O(N·V) time, O(N·V) memory (two copies during the transpose).
func Collect(ctx context.Context, src Source) (*Matrix, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	ids := src.Samples()
	index, err := indexSamples(ids)
	if err != nil {
		return nil, err
	}
	n := len(ids)

	var (
		buf      []Call   // variant-major: buf[v*n+s]
		variants []string // variant IDs in read order
	)
	for v := 0; ; v++ {
		if v%ctxCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("genotype: reading variant #%d: %w", v, err)
		}
		if len(rec.Calls) != n {
			return nil, fmt.Errorf("genotype: variant %q (#%d) has %d calls for %d samples: %w",
				rec.ID, v, len(rec.Calls), n, ErrCallCount)
		}
		for s, c := range rec.Calls {
			if !c.valid() {
				return nil, fmt.Errorf("genotype: sample %q variant %q call %v: %w", ids[s], rec.ID, c, ErrBadAllele)
			}
		}

		buf = append(buf, rec.Calls...)
		variants = append(variants, rec.ID)
	}

	nv := len(variants)
	calls := make([]Call, n*nv)
	for v := 0; v < nv; v++ {
		base := v * n
		for s := 0; s < n; s++ {
			calls[s*nv+v] = buf[base+s]
		}
	}

	return &Matrix{
		ids:      append([]string(nil), ids...),
		index:    index,
		variants: variants,
		v:        nv,
		calls:    calls,
	}, nil
}

// indexSamples validates ids and returns the ID → row lookup.
func indexSamples(ids []string) (map[string]int, error) {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("genotype: sample #%d: %w", i, ErrEmptySampleID)
		}
		if prev, dup := index[id]; dup {
			return nil, fmt.Errorf("genotype: sample %q at columns %d and %d: %w", id, prev, i, ErrDuplicateSample)
		}
		index[id] = i
	}

	return index, nil
}

// defaultVariantIDs names variants by position when the input carried none.
func defaultVariantIDs(v int) []string {
	out := make([]string, v)
	for j := range out {
		out[j] = fmt.Sprintf("v%d", j)
	}

	return out
}

// NumSamples returns N.
func (m *Matrix) NumSamples() int { return len(m.ids) }

// NumVariants returns V.
func (m *Matrix) NumVariants() int { return m.v }

// Samples returns a copy of the sample IDs in row order.
func (m *Matrix) Samples() []string {
	return append([]string(nil), m.ids...)
}

// Variants returns a copy of the variant IDs in column order.
func (m *Matrix) Variants() []string {
	return append([]string(nil), m.variants...)
}

// Index returns the row of sample id.
func (m *Matrix) Index(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// Row returns the calls of sample i as a read-only view of the backing storage.
// Complexity: O(1).
func (m *Matrix) Row(i int) []Call {
	return m.calls[i*m.v : (i+1)*m.v : (i+1)*m.v]
}

// At returns the call of sample i at variant j.
func (m *Matrix) At(i, j int) Call {
	return m.calls[i*m.v+j]
}
