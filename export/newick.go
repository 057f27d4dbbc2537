// SPDX-License-Identifier: MIT
//
// File: newick.go
// Role: spanning tree → Newick, for phylogenetic tree viewers.

package export

import (
	"io"
	"sort"
	"strconv"

	"github.com/evolbioinfo/gotree/tree"

	"github.com/katalvlaran/genonet/prim_kruskal"
)

// WriteNewick writes t in Newick format followed by a newline.
//
// The tree is rooted at the lexicographically smallest sample with two or
// more neighbours, so the root always carries a parenthesised child list.
// A two-sample tree is rooted at its smaller ID. Every sample, including
// internal ones, is a named node and branch lengths are distances.
// Children are attached in ascending ID order, so output is reproducible.
// An empty tree is written as ";".
//
// Complexity: O(V log V + E).
func WriteNewick(w io.Writer, t *prim_kruskal.Tree) error {
	if t == nil {
		return ErrNilTree
	}

	type arc struct {
		to     string
		length float64
	}
	adj := make(map[string][]arc, len(t.Vertices))
	for _, e := range t.Edges {
		adj[e.From] = append(adj[e.From], arc{to: e.To, length: e.Weight})
		adj[e.To] = append(adj[e.To], arc{to: e.From, length: e.Weight})
	}

	var s string
	switch len(t.Vertices) {
	case 0:
		s = ";"
	case 1:
		s = t.Vertices[0].ID + ";"
	case 2:
		// Both ends are leaves; hang the larger ID off the smaller one.
		a, b := t.Vertices[0].ID, t.Vertices[1].ID
		if b < a {
			a, b = b, a
		}
		length := 0.0
		if l := adj[a]; len(l) > 0 {
			length = l[0].length
		}
		s = "(" + b + ":" + strconv.FormatFloat(length, 'f', -1, 64) + ")" + a + ";"
	default:
		// A spanning tree on three or more vertices always has one of degree >= 2.
		root := ""
		for _, v := range t.Vertices {
			if len(adj[v.ID]) >= 2 && (root == "" || v.ID < root) {
				root = v.ID
			}
		}

		nt := tree.NewTree()
		nodes := make(map[string]*tree.Node, len(t.Vertices))
		rn := nt.NewNode()
		rn.SetName(root)
		nt.SetRoot(rn)
		nodes[root] = rn

		// BFS from the root; each unseen neighbour becomes a child.
		queue := []string{root}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			next := adj[id]
			sort.Slice(next, func(i, j int) bool { return next[i].to < next[j].to })
			for _, a := range next {
				if _, seen := nodes[a.to]; seen {
					continue
				}
				child := nt.NewNode()
				child.SetName(a.to)
				nodes[a.to] = child
				nt.ConnectNodes(nodes[id], child).SetLength(a.length)
				queue = append(queue, a.to)
			}
		}
		s = nt.Newick()
	}

	_, err := io.WriteString(w, s+"\n")

	return err
}
