// Package export serialises the two products of the engine for external
// reporting and visualisation tools.
//
// Matrix path:
//
//	WriteMatrixCSV writes a header row of sample IDs followed by the N matrix
//	rows, comma-separated with six decimal places. ReadMatrixCSV parses that
//	format back into a validated distance.Matrix.
//
// Network path:
//
//	NewNetwork turns a minimum spanning tree into a Network record: nodes with
//	site label, 2-D position and color; edges with source, target and weight;
//	and the site → color legend. WriteNetworkJSON encodes it.
//
// Reproducibility:
//
//   - Colors are a pure function of the set of site labels: labels are
//     sorted and indexed into a fixed Palette; sitemap.Unknown is always
//     UnknownColor.
//   - CircleLayout and SpringLayout involve no randomness, so the same tree
//     always yields the same coordinates.
//
// CreateFile opens an output path, gzip-compressing it when the name ends
// in ".gz".
package export
