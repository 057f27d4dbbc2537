// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrNilMatrix indicates a nil distance matrix was passed for export.
	ErrNilMatrix = errors.New("export: distance matrix is nil")

	// ErrNilTree indicates a nil spanning tree was passed to NewNetwork.
	ErrNilTree = errors.New("export: spanning tree is nil")

	// ErrBadHeader indicates a matrix CSV header with an empty sample ID.
	ErrBadHeader = errors.New("export: empty sample ID in header row")

	// ErrBadValue indicates a matrix CSV cell that is not a number.
	ErrBadValue = errors.New("export: malformed matrix value")

	// ErrUnknownLayout indicates an unsupported layout name.
	ErrUnknownLayout = errors.New("export: unknown layout")

	// ErrLayoutSize indicates a layout returned the wrong number of positions.
	ErrLayoutSize = errors.New("export: layout position count mismatch")
)
