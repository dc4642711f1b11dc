package core_test

import (
	"fmt"

	"github.com/katalvlaran/skewmatch/core"
)

// ExampleGraph builds a triangle and walks the adjacency of vertex 0.
func ExampleGraph() {
	g := core.NewGraph()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_, _ = g.AddEdge(a, b)
	_, _ = g.AddEdge(b, c)
	_, _ = g.AddEdge(c, a)

	nei, _ := g.Neighbors(a)
	for _, nb := range nei {
		fmt.Printf("vertex %d via edge %d\n", nb.Vertex, nb.Edge)
	}
	// Output:
	// vertex 1 via edge 0
	// vertex 2 via edge 2
}
