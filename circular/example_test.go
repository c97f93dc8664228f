package circular_test

import (
	"fmt"

	"github.com/katalvlaran/graphlayout/circular"
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

func Example() {
	g := graph.New()
	_ = g.AddNode("a")
	_ = g.AddNode("b")
	_ = g.AddNode("c")
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")

	if err := circular.NewCise(layoutopts.NewCiseOptions()).Apply(g); err != nil {
		panic(err)
	}

	for _, id := range g.Nodes() {
		p, _ := g.Position(id)
		fmt.Println(id, p.Set)
	}
	// Output:
	// a true
	// b true
	// c true
}
