// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/genonet/graph"
)

// Prim computes the minimum spanning network of g by growing it from root.
//
// Steps:
//  1. Validate g and root; N < 2 returns a tree with no edges.
//  2. best[v] holds the cheapest known edge from the tree to v, compared by
//     (Weight, From, To); has[v] marks whether one is known.
//  3. N-1 times: pick the outside vertex with the least best edge, add it,
//     then relax every remaining outside vertex against it.
//  4. Sort the accepted edges into Kruskal's order and sum their weights.
//
// Complexity: O(V²) time, O(V) memory, optimal for a complete graph.
func Prim(g *graph.Graph, root string) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	tree := &Tree{Vertices: g.Vertices(), Edges: []graph.Edge{}}
	if n == 0 {
		return tree, nil
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	r, ok := g.Index(root)
	if !ok {
		return nil, fmt.Errorf("prim_kruskal: root %q: %w", root, graph.ErrVertexNotFound)
	}
	if n == 1 {
		return tree, nil
	}

	inTree := make([]bool, n)
	best := make([]graph.Edge, n)
	has := make([]bool, n)

	relax := func(u int) {
		for v := 0; v < n; v++ {
			if inTree[v] || v == u {
				continue
			}
			e := g.EdgeAt(u, v)
			if !has[v] || edgeLess(e, best[v]) {
				best[v], has[v] = e, true
			}
		}
	}

	inTree[r] = true
	relax(r)
	tree.Edges = make([]graph.Edge, 0, n-1)
	for len(tree.Edges) < n-1 {
		u := -1
		for v := 0; v < n; v++ {
			if inTree[v] || !has[v] {
				continue
			}
			if u < 0 || edgeLess(best[v], best[u]) {
				u = v
			}
		}
		if u < 0 {
			return nil, fmt.Errorf("prim_kruskal: %d of %d edges accepted: %w", len(tree.Edges), n-1, ErrDisconnected)
		}
		inTree[u] = true
		tree.Edges = append(tree.Edges, best[u])
		relax(u)
	}

	sort.Slice(tree.Edges, func(i, j int) bool { return edgeLess(tree.Edges[i], tree.Edges[j]) })
	for _, e := range tree.Edges {
		tree.TotalWeight += e.Weight
	}

	return tree, nil
}
