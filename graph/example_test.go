package graph_test

import (
	"fmt"

	"github.com/katalvlaran/genonet/distance"
	"github.com/katalvlaran/genonet/graph"
	"github.com/katalvlaran/genonet/sitemap"
)

// ExampleBuild shows the complete graph over three samples, one of them unmapped.
func ExampleBuild() {
	dm, _ := distance.FromRows([]string{"A", "B", "C"}, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	sites, _ := sitemap.New(map[string]string{"A": "North", "B": "South"})

	g, err := graph.Build(dm, sites)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s %s-%s %g\n", e.ID, e.From, e.To, e.Weight)
	}
	for _, w := range g.Warnings() {
		fmt.Println(w)
	}
	// Output:
	// e1 A-B 1
	// e2 A-C 3
	// e3 B-C 2
	// sample "C" not found in site map; site set to Unknown
}
