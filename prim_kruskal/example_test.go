package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/genonet/distance"
	"github.com/katalvlaran/genonet/graph"
	"github.com/katalvlaran/genonet/prim_kruskal"
)

// ExampleKruskal reduces the A, B, C triangle to {A-B, B-C}; A-C is the
// heaviest edge and closes a cycle.
func ExampleKruskal() {
	dm, _ := distance.FromRows([]string{"A", "B", "C"}, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	g, _ := graph.Build(dm, nil)

	tree, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", tree.TotalWeight)
	for _, e := range tree.Edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim grows the same envelope-shaped network from D.
func ExamplePrim() {
	dm, _ := distance.FromRows([]string{"A", "B", "C", "D"}, [][]float64{
		{0, 4, 1, 4},
		{4, 0, 2, 3},
		{1, 2, 0, 5},
		{4, 3, 5, 0},
	})
	g, _ := graph.Build(dm, nil)

	tree, err := prim_kruskal.Prim(g, "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", tree.TotalWeight)
	for _, e := range tree.Edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 6, Edges: A-C B-C B-D
}
