// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: spanning tree → serialisable network record.

package export

import (
	"fmt"

	"github.com/katalvlaran/genonet/prim_kruskal"
)

// Node is one exported sample.
type Node struct {
	ID    string  `json:"id"`
	Site  string  `json:"site"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// Link is one exported tree edge.
type Link struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Network is the minimum spanning network as handed to a visualisation tool.
type Network struct {
	Nodes       []Node            `json:"nodes"`
	Edges       []Link            `json:"edges"`
	Colors      map[string]string `json:"colors"` // site → color legend
	TotalWeight float64           `json:"total_weight"`
}

// NewNetwork lays out tree and attaches site colors.
//
// Steps:
//  1. Validate tree; a nil layout selects CircleLayout.
//  2. Compute positions, one per vertex.
//  3. Assign colors from the sorted distinct site labels.
//  4. Copy vertices into Nodes and tree edges into Links, keeping their order.
//
// Complexity: that of the layout, plus O(V log V + E).
func NewNetwork(tree *prim_kruskal.Tree, layout Layout) (*Network, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if layout == nil {
		layout = CircleLayout{}
	}

	pos := layout.Positions(tree)
	if len(pos) != len(tree.Vertices) {
		return nil, fmt.Errorf("export: %d positions for %d vertices: %w", len(pos), len(tree.Vertices), ErrLayoutSize)
	}

	sites := make([]string, len(tree.Vertices))
	for i, v := range tree.Vertices {
		sites[i] = v.Site
	}
	colors := AssignColors(sites)

	n := &Network{
		Nodes:       make([]Node, len(tree.Vertices)),
		Edges:       make([]Link, len(tree.Edges)),
		Colors:      colors,
		TotalWeight: tree.TotalWeight,
	}
	for i, v := range tree.Vertices {
		n.Nodes[i] = Node{ID: v.ID, Site: v.Site, X: pos[i].X, Y: pos[i].Y, Color: colors[v.Site]}
	}
	for i, e := range tree.Edges {
		n.Edges[i] = Link{ID: e.ID, Source: e.From, Target: e.To, Weight: e.Weight}
	}

	return n, nil
}
