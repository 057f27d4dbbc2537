// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: breadth-first check that a Tree spans its vertices without cycles.

package prim_kruskal

import (
	"errors"
	"fmt"
)

// ErrNotTree indicates a Tree whose edges do not form a spanning tree.
var ErrNotTree = errors.New("prim_kruskal: not a spanning tree")

// Validate checks that t has exactly |V|-1 edges between known, distinct
// vertices and that a breadth-first walk from the first vertex reaches every
// vertex. With |V|-1 edges, connectivity implies acyclicity.
//
// Complexity: O(V + E).
func (t *Tree) Validate() error {
	n := len(t.Vertices)
	if n == 0 {
		if len(t.Edges) != 0 {
			return fmt.Errorf("prim_kruskal: %d edges without vertices: %w", len(t.Edges), ErrNotTree)
		}
		return nil
	}
	if len(t.Edges) != n-1 {
		return fmt.Errorf("prim_kruskal: %d edges for %d vertices: %w", len(t.Edges), n, ErrNotTree)
	}

	index := make(map[string]int, n)
	for i, v := range t.Vertices {
		index[v.ID] = i
	}
	adj := make([][]int, n)
	for _, e := range t.Edges {
		u, ok := index[e.From]
		if !ok {
			return fmt.Errorf("prim_kruskal: edge %s: unknown vertex %q: %w", e.ID, e.From, ErrNotTree)
		}
		v, ok := index[e.To]
		if !ok {
			return fmt.Errorf("prim_kruskal: edge %s: unknown vertex %q: %w", e.ID, e.To, ErrNotTree)
		}
		if u == v {
			return fmt.Errorf("prim_kruskal: edge %s is a loop: %w", e.ID, ErrNotTree)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	visited[0] = true
	queue = append(queue, 0)
	reached := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if visited[v] {
				continue
			}
			visited[v] = true
			reached++
			queue = append(queue, v)
		}
	}
	if reached != n {
		return fmt.Errorf("prim_kruskal: %d of %d vertices reachable: %w", reached, n, ErrNotTree)
	}

	return nil
}
