package graph_test

import (
	"fmt"

	"github.com/matzehuels/arcgraph/pkg/graph"
)

func ExampleNew() {
	// Directed graph with three weighted nodes.
	g, _ := graph.New(3, true, []int{1, 2, 3})
	_ = g.InsertArc(0, 1, 10)
	_ = g.InsertArc(1, 2, 20)

	w, _ := g.Arc(0, 1)
	fmt.Println("arc 0->1:", w)
	_, err := g.Arc(1, 0)
	fmt.Println("arc 1->0:", err)
	// Output:
	// arc 0->1: 10
	// arc 1->0: arc not found: 1->0
}

func ExampleNewDense() {
	// Undirected matrix-backed graph: one insert stores both directions.
	g, _ := graph.NewDense(3, false, make([]float64, 3))
	_ = g.InsertArc(0, 2, 1.5)

	a, _ := g.Arc(0, 2)
	b, _ := g.Arc(2, 0)
	fmt.Println(a, b)
	// Output:
	// 1.5 1.5
}

func ExampleGraph_Neighbors() {
	g, _ := graph.New(4, true, make([]int, 4))
	_ = g.InsertArc(1, 2, 20)
	_ = g.InsertArc(1, 3, 30)

	for to, w := range g.Neighbors(1) {
		fmt.Printf("1->%d weight %d\n", to, w)
	}
	// Output:
	// 1->2 weight 20
	// 1->3 weight 30
}
