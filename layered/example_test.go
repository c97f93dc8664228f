package layered_test

import (
	"fmt"

	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layered"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

func Example() {
	g := graph.New()
	_ = g.AddNode("a")
	_ = g.AddNode("b")
	_, _ = g.AddEdge("a", "b")

	if err := layered.NewDagre(layoutopts.NewDagreOptions()).Apply(g); err != nil {
		panic(err)
	}

	pa, _ := g.Position("a")
	pb, _ := g.Position("b")
	fmt.Println(pa.Y < pb.Y)
	// Output:
	// true
}
