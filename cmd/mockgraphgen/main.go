// Command mockgraphgen emits a synthetic graph (star, wheel, path, cycle,
// grid, or random) in JSON, CSV, or DOT for exercising layout engines and
// the REST API without a real dataset.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/graphlayout/formats"
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/mockgraph"
)

func main() {
	topology := flag.String("topology", "star", "star|wheel|path|cycle|grid|random")
	format := flag.String("format", "json", "json|csv|dot")
	n := flag.Int("n", 10, "node count (star/wheel/path/cycle/random)")
	rows := flag.Int("rows", 3, "grid rows")
	cols := flag.Int("cols", 3, "grid cols")
	p := flag.Float64("p", 0.3, "edge probability (random)")
	seed := flag.Int64("seed", 1, "PRNG seed (random)")
	flag.Parse()

	g, err := build(*topology, *n, *rows, *cols, *p, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mockgraphgen:", err)
		os.Exit(1)
	}

	out, err := encode(g, *format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mockgraphgen:", err)
		os.Exit(1)
	}

	os.Stdout.Write(out)
}

func build(topology string, n, rows, cols int, p float64, seed int64) (*graph.Graph, error) {
	switch topology {
	case "star":
		return mockgraph.Star(n)
	case "wheel":
		return mockgraph.Wheel(n)
	case "path":
		return mockgraph.Path(n)
	case "cycle":
		return mockgraph.Cycle(n)
	case "grid":
		return mockgraph.Grid(rows, cols)
	case "random":
		return mockgraph.Random(n, p, seed)
	default:
		return nil, fmt.Errorf("unknown topology %q", topology)
	}
}

func encode(g *graph.Graph, format string) ([]byte, error) {
	switch format {
	case "json":
		return formats.WriteJSON(g)
	case "csv":
		return formats.WriteCSV(g)
	case "dot":
		return formats.WriteDOT(g)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
