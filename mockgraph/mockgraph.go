// Package mockgraph builds small synthetic graphs for exercising layout
// engines, the REST API, and the viewer without needing a real dataset.
// Each constructor returns a ready-to-use *graph.Graph with deterministic
// node and edge IDs.
package mockgraph

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/rng"
)

// ErrTooFewNodes is returned when n is too small for the requested topology.
var ErrTooFewNodes = errors.New("mockgraph: too few nodes requested")

const centerNodeID = "center"

// Star builds a hub-and-spoke graph: one "center" node connected to n-1
// leaves "0".."n-2". n must be at least 2.
func Star(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("mockgraph.Star: n=%d: %w", n, ErrTooFewNodes)
	}

	g := graph.New()
	if err := g.AddNode(centerNodeID); err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		leaf := strconv.Itoa(i)
		if err := g.AddNode(leaf); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(centerNodeID, leaf); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Wheel builds Star(n) plus a ring connecting its n-1 leaves in index
// order, forming a wheel. n must be at least 4.
func Wheel(n int) (*graph.Graph, error) {
	if n < 4 {
		return nil, fmt.Errorf("mockgraph.Wheel: n=%d: %w", n, ErrTooFewNodes)
	}

	g, err := Star(n)
	if err != nil {
		return nil, err
	}
	rim := n - 1
	for i := 0; i < rim; i++ {
		from := strconv.Itoa(i)
		to := strconv.Itoa((i + 1) % rim)
		if _, err := g.AddEdge(from, to); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Path builds a simple path 0 -> 1 -> ... -> n-1. n must be at least 2.
func Path(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("mockgraph.Path: n=%d: %w", n, ErrTooFewNodes)
	}

	g := graph.New()
	for i := 0; i < n; i++ {
		if err := g.AddNode(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n-1; i++ {
		if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds Path(n) plus a closing edge n-1 -> 0. n must be at least 3.
func Cycle(n int) (*graph.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("mockgraph.Cycle: n=%d: %w", n, ErrTooFewNodes)
	}

	g, err := Path(n)
	if err != nil {
		return nil, err
	}
	if _, err := g.AddEdge(strconv.Itoa(n-1), strconv.Itoa(0)); err != nil {
		return nil, err
	}

	return g, nil
}

// Grid builds a rows*cols 4-neighborhood grid, node IDs "r,c" in row-major
// order, connecting each cell to its right and bottom neighbor. rows and
// cols must each be at least 1.
func Grid(rows, cols int) (*graph.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("mockgraph.Grid: rows=%d cols=%d: %w", rows, cols, ErrTooFewNodes)
	}

	g := graph.New()
	id := func(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddNode(id(r, c)); err != nil {
				return nil, err
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if _, err := g.AddEdge(id(r, c), id(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if _, err := g.AddEdge(id(r, c), id(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Random builds an Erdos-Renyi-style graph over n nodes "0".."n-1", adding
// each of the n*(n-1)/2 possible undirected pairs independently with
// probability p, using a PRNG seeded by seed for reproducibility.
func Random(n int, p float64, seed int64) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("mockgraph.Random: n=%d: %w", n, ErrTooFewNodes)
	}

	g := graph.New()
	for i := 0; i < n; i++ {
		if err := g.AddNode(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}

	r := rng.New(seed)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
