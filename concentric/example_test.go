package concentric_test

import (
	"fmt"

	"github.com/katalvlaran/graphlayout/concentric"
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

// Example lays out a small star graph and shows that the hub lands
// strictly closer to the origin than its leaves.
func Example() {
	g := graph.New()
	_ = g.AddNode("hub")
	for _, leaf := range []string{"a", "b", "c"} {
		_ = g.AddNode(leaf)
		_, _ = g.AddEdge("hub", leaf)
	}

	if err := concentric.NewConcentric(layoutopts.NewConcentricOptions()).Apply(g); err != nil {
		panic(err)
	}

	hub, _ := g.Position("hub")
	leaf, _ := g.Position("a")
	fmt.Println(hub.X*hub.X+hub.Y*hub.Y < leaf.X*leaf.X+leaf.Y*leaf.Y)
	// Output:
	// true
}
