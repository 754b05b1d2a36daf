package core_test

import (
	"fmt"

	"github.com/katalvlaran/multiroute/core"
)

// ExampleGraph builds a small distance layer and inspects it.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 10)
	_ = g.AddEdge(2, 3, 10)
	g.AddNode(4) // a city with no roads yet

	w, _ := g.Weight(2, 1)
	ids, _ := g.NeighborIDs(2)
	fmt.Println("nodes:", g.Nodes())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("2-1:", w)
	fmt.Println("adjacent to 2:", ids)
	// Output:
	// nodes: [1 2 3 4]
	// edges: 2
	// 2-1: 10
	// adjacent to 2: [1 3]
}
