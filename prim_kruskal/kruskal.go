// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/genonet/graph"
)

// Kruskal computes the minimum spanning network of g.
//
// Steps:
//  1. Validate g; N < 2 returns a tree with no edges.
//  2. Copy the edge list and sort it by (Weight, From, To).
//  3. Initialise the union-find arena over vertex positions.
//  4. Accept each edge whose endpoints lie in different components;
//     stop once N-1 edges are accepted.
//  5. Fewer than N-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *graph.Graph) (*Tree, error) {
	// 1. Validate; fewer than two vertices need no edges.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	tree := &Tree{Vertices: g.Vertices(), Edges: []graph.Edge{}}
	if n < 2 {
		return tree, nil
	}

	// 2. Sort a copy of the edges by (Weight, From, To). The key is total,
	//    so the result does not depend on the sort's stability.
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool { return edgeLess(edges[i], edges[j]) })

	// 3. One singleton set per vertex position.
	sets := newDSU(n)
	tree.Edges = make([]graph.Edge, 0, n-1)

	// 4. Greedy scan in key order.
	for _, e := range edges {
		// Endpoints always resolve: every edge was emitted from g's own rows.
		u, _ := g.Index(e.From)
		v, _ := g.Index(e.To)
		// Same component: the edge would close a cycle.
		if !sets.union(u, v) {
			continue
		}
		tree.Edges = append(tree.Edges, e)
		tree.TotalWeight += e.Weight
		// N-1 edges span every vertex; the rest can only form cycles.
		if len(tree.Edges) == n-1 {
			break
		}
	}

	// 5. A short edge set means some vertex was never reached.
	if len(tree.Edges) != n-1 {
		return nil, fmt.Errorf("prim_kruskal: %d of %d edges accepted: %w", len(tree.Edges), n-1, ErrDisconnected)
	}

	return tree, nil
}
