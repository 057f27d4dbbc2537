// SPDX-License-Identifier: MIT
//
// File: matrix_csv.go
// Role: distance matrix ↔ CSV (header of IDs, then N rows, %.6f).

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/genonet/distance"
)

// MatrixPrecision is the number of decimal places written per cell.
const MatrixPrecision = 6

// WriteMatrixCSV writes dm to w as a header row of sample IDs followed by one
// row per sample.
// Complexity: O(N²).
func WriteMatrixCSV(w io.Writer, dm *distance.Matrix) error {
	if dm == nil {
		return ErrNilMatrix
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(dm.Samples()); err != nil {
		return err
	}

	record := make([]string, dm.Size())
	for i := 0; i < dm.Size(); i++ {
		for j, v := range dm.Row(i) {
			record[j] = strconv.FormatFloat(v, 'f', MatrixPrecision, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadMatrixCSV parses the WriteMatrixCSV format.
//
// An input with no header row, such as the lone newline written for a
// 0-sample matrix, reads back as an empty matrix. Otherwise every header
// cell must be a non-empty ID, every row must have one value per header
// column and there must be exactly one row per column; the result passes
// the same validation as distance.FromRows.
func ReadMatrixCSV(r io.Reader) (*distance.Matrix, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		// csv skips blank lines, so "" and "\n" both land here.
		return distance.FromRows(nil, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("export: header: %w", err)
	}
	for j, id := range header {
		if id == "" {
			return nil, fmt.Errorf("export: header column %d: %w", j+1, ErrBadHeader)
		}
	}

	var rows [][]float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("export: line %d: %w", line, err)
		}
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, fmt.Errorf("export: line %d column %q: %q: %w", line, header[j], cell, ErrBadValue)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return distance.FromRows(header, rows)
}
