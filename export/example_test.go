package export_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/genonet/distance"
	"github.com/katalvlaran/genonet/export"
	"github.com/katalvlaran/genonet/graph"
	"github.com/katalvlaran/genonet/prim_kruskal"
	"github.com/katalvlaran/genonet/sitemap"
)

// ExampleWriteMatrixCSV shows the matrix export format.
func ExampleWriteMatrixCSV() {
	dm, _ := distance.FromRows([]string{"A", "B", "C"}, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	_ = export.WriteMatrixCSV(os.Stdout, dm)
	// Output:
	// A,B,C
	// 0.000000,1.000000,3.000000
	// 1.000000,0.000000,2.000000
	// 3.000000,2.000000,0.000000
}

// ExampleNewNetwork exports the minimum spanning network with site colors.
func ExampleNewNetwork() {
	dm, _ := distance.FromRows([]string{"A", "B", "C"}, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	sites, _ := sitemap.New(map[string]string{"A": "Ridge", "B": "Creek", "C": "Creek"})
	g, _ := graph.Build(dm, sites)
	tree, _ := prim_kruskal.Kruskal(g)

	n, err := export.NewNetwork(tree, export.CircleLayout{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, node := range n.Nodes {
		fmt.Println(node.ID, node.Site, node.Color)
	}
	for _, e := range n.Edges {
		fmt.Printf("%s-%s %g\n", e.Source, e.Target, e.Weight)
	}
	// Output:
	// A Ridge #E6C050
	// B Creek #27AEEF
	// C Creek #27AEEF
	// A-B 1
	// B-C 2
}
