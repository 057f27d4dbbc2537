// SPDX-License-Identifier: MIT

// Package graph builds the complete, undirected, weighted relationship graph
// over genotyped samples.
//
// Every sample becomes a Vertex carrying its collection-site label; every
// unordered pair {i, j}, i != j, becomes exactly one Edge weighted by the
// distance matrix entry D[i][j]. The graph is therefore always complete
// (|E| = N·(N-1)/2), has no self-loops and no parallel edges, and is
// immutable once Build returns.
//
// Site attachment is forgiving: a sample missing from the site map gets the
// sitemap.Unknown label and a MissingSite warning; a site-map entry for a
// sample without genotype data is reported as an UnusedSite warning and
// otherwise ignored. Warnings are logged and kept on the Graph.
//
// Determinism:
//   - Vertices() follows the distance matrix row order.
//   - Edges() follows (i, j) index order with i < j; every Edge has From < To
//     in lexicographic ID order, which is the canonical endpoint order used by
//     the spanning-tree tie-break.
package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/genonet/distance"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilMatrix indicates Build was called without a distance matrix.
	ErrNilMatrix = errors.New("graph: distance matrix is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrLoopNotAllowed indicates a weight query for a vertex with itself.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Vertex is one sample node.
type Vertex struct {
	// ID is the unique sample identifier.
	ID string

	// Site is the collection-site label, sitemap.Unknown when unmapped.
	Site string
}

// Edge is one undirected weighted connection between two samples.
//
// From < To lexicographically; the pair identifies the edge uniquely.
type Edge struct {
	// ID is a stable identifier ("e1", "e2", ...) in emission order.
	ID string

	// From is the lexicographically smaller endpoint ID.
	From string

	// To is the lexicographically larger endpoint ID.
	To string

	// Weight is the genetic distance between the endpoints.
	Weight float64
}

// WarningKind classifies recoverable conditions met during Build.
type WarningKind int

const (
	// MissingSite: a genotyped sample has no site-map entry; its site is Unknown.
	MissingSite WarningKind = iota

	// UnusedSite: a site-map entry has no genotyped sample; it is ignored.
	UnusedSite
)

// String returns a short name for the warning kind.
func (k WarningKind) String() string {
	switch k {
	case MissingSite:
		return "missing-site"
	case UnusedSite:
		return "unused-site"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is one recorded, non-fatal condition.
type Warning struct {
	Kind     WarningKind
	SampleID string
}

// String renders the warning as logged.
func (w Warning) String() string {
	switch w.Kind {
	case MissingSite:
		return fmt.Sprintf("sample %q not found in site map; site set to Unknown", w.SampleID)
	case UnusedSite:
		return fmt.Sprintf("site map sample %q not present in genotype data; ignored", w.SampleID)
	default:
		return fmt.Sprintf("%v: %q", w.Kind, w.SampleID)
	}
}

// Graph is the immutable complete relationship graph.
type Graph struct {
	vertices []Vertex         // row order of the distance matrix
	index    map[string]int   // vertex ID → position in vertices
	edges    []Edge           // (i, j) order, i < j
	dm       *distance.Matrix // source weights, immutable
	warnings []Warning        // MissingSite in vertex order, then UnusedSite in ID order
}

// Stats is a read-only summary of a Graph.
type Stats struct {
	VertexCount      int
	EdgeCount        int
	SiteCount        int // distinct site labels, Unknown included
	MissingSiteCount int
	UnusedSiteCount  int
}
