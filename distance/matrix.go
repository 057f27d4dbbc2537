// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: immutable, labelled N×N distance matrix over flat row-major storage.

package distance

import (
	"fmt"
	"strings"
)

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square, symmetric matrix of pairwise distances labelled by sample ID.
// data holds n*n elements in row-major order.
type Matrix struct {
	ids   []string       // sample IDs in row order
	index map[string]int // sample ID → row
	n     int            // number of samples
	data  []float64      // flat backing storage, len == n*n
}

// newMatrix allocates a zero matrix for ids. ids must already be unique.
// Complexity: O(n²) time and memory.
func newMatrix(ids []string) *Matrix {
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	return &Matrix{
		ids:   append([]string(nil), ids...),
		index: index,
		n:     n,
		data:  make([]float64, n*n),
	}
}

// FromRows builds a Matrix from labelled rows, e.g. a parsed CSV export.
//
// Steps:
//  1. Validate IDs are unique and len(ids) == len(rows) == len(rows[i]).
//  2. Copy rows into flat storage.
//  3. Validate entries (finite, non-negative), zero diagonal and symmetry
//     within DefaultEpsilon.
//
// Complexity: O(n²).
func FromRows(ids []string, rows [][]float64) (*Matrix, error) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("distance: sample %q: %w", id, ErrDuplicateSample)
		}
		seen[id] = struct{}{}
	}
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("distance: %d rows for %d samples: %w", len(rows), len(ids), ErrDimensionMismatch)
	}

	m := newMatrix(ids)
	for i, row := range rows {
		if len(row) != m.n {
			return nil, fmt.Errorf("distance: row %q has %d entries, want %d: %w", ids[i], len(row), m.n, ErrDimensionMismatch)
		}
		copy(m.data[i*m.n:(i+1)*m.n], row)
	}

	if err := Validate(m, DefaultEpsilon); err != nil {
		return nil, err
	}

	return m, nil
}

// Size returns N, the number of samples.
// Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// Samples returns a copy of the sample IDs in row order.
func (m *Matrix) Samples() []string {
	return append([]string(nil), m.ids...)
}

// Index returns the row of sample id.
func (m *Matrix) Index(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// At retrieves the distance at (row, col).
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrixErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.n+col], nil
}

// Between returns the distance between two samples by ID.
func (m *Matrix) Between(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("distance: %q: %w", a, ErrUnknownSample)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("distance: %q: %w", b, ErrUnknownSample)
	}

	return m.data[i*m.n+j], nil
}

// Row returns row i as a read-only view of the backing storage.
// Complexity: O(1).
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// String implements fmt.Stringer for debugging.
// Complexity: O(n²).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(m.ids[i])
		sb.WriteString(" [")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
