// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/genonet/graph"
)

// ErrNilGraph indicates that an MST algorithm was called with a nil graph.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that a spanning tree covering all vertices could
// not be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Tree is a minimum spanning network.
//
// Vertices are the source graph's vertices in the same order. Edges are the
// N-1 accepted edges, ascending in the (Weight, From, To) order.
type Tree struct {
	Vertices    []graph.Vertex
	Edges       []graph.Edge
	TotalWeight float64
}

// edgeLess is the strict total order on edges used by both algorithms.
func edgeLess(a, b graph.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}
