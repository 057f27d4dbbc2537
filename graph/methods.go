// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only queries over a built Graph.
//
// Determinism:
//   - Vertices() and VertexIDs() follow distance-matrix row order.
//   - Edges() follows (i, j) emission order.

package graph

import "fmt"

// Vertices returns a copy of the vertices in row order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	return append([]Vertex(nil), g.vertices...)
}

// VertexIDs returns the vertex IDs in row order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []string {
	ids := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.ID
	}

	return ids
}

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id string) (Vertex, error) {
	i, ok := g.index[id]
	if !ok {
		return Vertex{}, fmt.Errorf("graph: %q: %w", id, ErrVertexNotFound)
	}

	return g.vertices[i], nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Edges returns a copy of the edge list in emission order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|, always |V|·(|V|-1)/2.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Weight returns the weight of the edge between a and b.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
//   - ErrLoopNotAllowed if a == b.
//
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, error) {
	i, ok := g.index[a]
	if !ok {
		return 0, fmt.Errorf("graph: %q: %w", a, ErrVertexNotFound)
	}
	j, ok := g.index[b]
	if !ok {
		return 0, fmt.Errorf("graph: %q: %w", b, ErrVertexNotFound)
	}
	if i == j {
		return 0, fmt.Errorf("graph: %q: %w", a, ErrLoopNotAllowed)
	}

	return g.dm.Row(i)[j], nil
}

// Index returns the row position of vertex id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// EdgeAt returns the edge between the vertices at rows i and j.
// It panics when i == j or either row is out of range; callers iterate row
// indices they already own, so a bad pair is a programming error.
// Complexity: O(1); the position follows from the (i, j) emission order.
func (g *Graph) EdgeAt(i, j int) Edge {
	n := len(g.vertices)
	if i == j {
		panic(fmt.Sprintf("graph: EdgeAt(%d, %d): %v", i, j, ErrLoopNotAllowed))
	}
	if i < 0 || j < 0 || i >= n || j >= n {
		panic(fmt.Sprintf("graph: EdgeAt(%d, %d): row out of range [0, %d)", i, j, n))
	}
	if i > j {
		i, j = j, i
	}

	return g.edges[i*n-i*(i+1)/2+j-i-1]
}

// Warnings returns a copy of the warnings recorded during Build.
func (g *Graph) Warnings() []Warning {
	return append([]Warning(nil), g.warnings...)
}

// Stats summarises g.
// Complexity: O(V + W).
func (g *Graph) Stats() Stats {
	sites := make(map[string]struct{})
	for _, v := range g.vertices {
		sites[v.Site] = struct{}{}
	}
	s := Stats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		SiteCount:   len(sites),
	}
	for _, w := range g.warnings {
		switch w.Kind {
		case MissingSite:
			s.MissingSiteCount++
		case UnusedSite:
			s.UnusedSiteCount++
		}
	}

	return s
}
