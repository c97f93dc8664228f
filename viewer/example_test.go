package viewer_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/viewer"
)

// Example renders a two-node graph to SVG and confirms the output contains
// the expected SVG elements.
func Example() {
	g := graph.New()
	_ = g.AddNode("a")
	_ = g.AddNode("b")
	_ = g.SetPosition("a", 0, 0)
	_ = g.SetPosition("b", 100, 0)
	_, _ = g.AddEdge("a", "b")

	var buf bytes.Buffer
	if err := viewer.Render(&buf, g, viewer.DefaultOptions()); err != nil {
		fmt.Println("error:", err)
		return
	}

	out := buf.String()
	fmt.Println(strings.Contains(out, "<svg"), strings.Contains(out, "<circle"), strings.Contains(out, "<line"))
	// Output:
	// true true true
}
