// Package prim_kruskal reduces a complete relationship graph to its minimum
// spanning network: the spanning tree of least total genetic distance.
//
// What & Why
//
//   - The relationship graph over N samples is complete, so it is always
//     connected and always has a spanning tree with exactly N-1 edges.
//   - The minimum spanning network keeps, for every sample, its cheapest route
//     into the rest of the population. It is the structure handed to the
//     exporter for visualisation.
//
// Algorithms Provided
//
//   - Kruskal(g *graph.Graph) (*Tree, error)
//
//   - Strategy: sort every edge by the total order (Weight, From, To), then
//     accept edges in that order unless both endpoints already share a
//     component of the arena union-find. Stop after N-1 acceptances.
//
//   - Complexity: O(E log E + α(V)·E) time, O(E + V) memory, E = V·(V-1)/2.
//
//   - Prim(g *graph.Graph, root string) (*Tree, error)
//
//   - Strategy: dense O(V²) Prim over the complete graph, growing from root.
//     Candidate edges are compared with the same total order as Kruskal.
//
//   - Use-Case: independent cross-check of Kruskal; both return the same Tree.
//
// Determinism
//
//	Weights alone do not order edges when distances tie, and allelic distances
//	are small integers, so ties are the norm. Edges are therefore compared by
//	(Weight, From, To) where From < To lexicographically. This is a strict
//	total order on the edge set, which makes the minimum spanning tree unique:
//	the result never depends on sample order, map iteration or which algorithm
//	produced it.
//
// Error Conditions
//
//   - ErrNilGraph: graph is nil.
//   - ErrEmptyRoot (Prim only): root == "" on a non-empty graph.
//   - graph.ErrVertexNotFound (Prim only): root is not a vertex.
//   - ErrDisconnected: fewer than N-1 edges could be accepted. It cannot occur
//     for a graph produced by graph.Build.
//
// Fewer than two samples is not an error: the tree has the graph's vertices
// and no edges.
package prim_kruskal
