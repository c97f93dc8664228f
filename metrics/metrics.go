// Package metrics computes descriptive statistics over a laid-out graph
// (edge length spread, node spacing) and exposes them as Prometheus
// gauges so a long-running server can track layout quality across
// requests.
package metrics

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/graphlayout/bfs"
	"github.com/katalvlaran/graphlayout/dijkstra"
	"github.com/katalvlaran/graphlayout/graph"
)

// ErrNoPositions is returned when every node in the graph lacks a
// position, so no spread statistic can be computed.
var ErrNoPositions = errors.New("metrics: graph has no positioned nodes")

// EdgeLengthStats summarizes the Euclidean length of every edge whose both
// endpoints carry a position. Dangling and unpositioned edges are skipped.
type EdgeLengthStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// ComputeEdgeLengthStats measures edge lengths across g, as they stand
// after a layout call.
func ComputeEdgeLengthStats(g *graph.Graph) (EdgeLengthStats, error) {
	var lengths []float64
	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok || e.IsSelfLoop() {
			continue
		}
		ps, ok1 := g.Position(e.Source)
		pt, ok2 := g.Position(e.Target)
		if !ok1 || !ok2 || !ps.Set || !pt.Set {
			continue
		}
		lengths = append(lengths, math.Hypot(pt.X-ps.X, pt.Y-ps.Y))
	}
	if len(lengths) == 0 {
		return EdgeLengthStats{}, ErrNoPositions
	}

	return summarize(lengths), nil
}

// NodeSpreadStats summarizes the pairwise nearest-neighbor distance across
// every positioned node — a proxy for how evenly a layout spaces nodes.
type NodeSpreadStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// ComputeNodeSpreadStats measures, for each positioned node, the distance
// to its closest positioned neighbor.
func ComputeNodeSpreadStats(g *graph.Graph) (NodeSpreadStats, error) {
	ids := g.Nodes()
	type pt struct {
		x, y float64
	}
	pts := make(map[string]pt, len(ids))
	for _, id := range ids {
		p, ok := g.Position(id)
		if ok && p.Set {
			pts[id] = pt{p.X, p.Y}
		}
	}
	if len(pts) < 2 {
		return NodeSpreadStats{}, ErrNoPositions
	}

	keys := make([]string, 0, len(pts))
	for id := range pts {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	nearest := make([]float64, 0, len(keys))
	for _, a := range keys {
		best := math.Inf(1)
		for _, b := range keys {
			if a == b {
				continue
			}
			d := math.Hypot(pts[a].x-pts[b].x, pts[a].y-pts[b].y)
			if d < best {
				best = d
			}
		}
		nearest = append(nearest, best)
	}

	s := summarize(nearest)

	return NodeSpreadStats(s), nil
}

// ShortestPathSpreadStats summarizes the shortest-path distance (edges
// weighted by their drawn Euclidean length) between every pair of
// reachable nodes — a diameter-style diagnostic of how spread-out a
// layout's connectivity is, as opposed to NodeSpreadStats' raw proximity.
type ShortestPathSpreadStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// ComputeShortestPathSpreadStats runs dijkstra.Dijkstra from every node and
// summarizes the resulting finite pairwise distances. ErrNoPositions is
// returned if g has fewer than two nodes or no pair is mutually reachable.
func ComputeShortestPathSpreadStats(g *graph.Graph) (ShortestPathSpreadStats, error) {
	ids := g.Nodes()
	if len(ids) < 2 {
		return ShortestPathSpreadStats{}, ErrNoPositions
	}

	var distances []float64
	for _, src := range ids {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		if err != nil {
			return ShortestPathSpreadStats{}, err
		}
		for _, dst := range ids {
			if dst == src {
				continue
			}
			if d := dist[dst]; d < math.MaxFloat64 {
				distances = append(distances, d)
			}
		}
	}
	if len(distances) == 0 {
		return ShortestPathSpreadStats{}, ErrNoPositions
	}

	return ShortestPathSpreadStats(summarize(distances)), nil
}

// ComponentCount returns the number of connected components in g, ignoring
// edge direction. A freshly parsed or generated graph is usually one
// component; a layout that scatters an otherwise-connected graph into
// disjoint clusters is a sign the parser or the caller dropped edges, and
// this is the cheapest check that would catch it.
func ComponentCount(g *graph.Graph) int {
	seen := make(map[string]bool, g.NodeCount())
	components := 0
	for _, id := range g.Nodes() {
		if seen[id] {
			continue
		}
		components++
		res, err := bfs.BFS(g, id)
		if err != nil {
			// BFS only fails here on a nil graph or a vanished start node,
			// neither of which can happen mid-loop; treat the node as its
			// own singleton component rather than panic.
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
	}

	return components
}

func summarize(values []float64) EdgeLengthStats {
	n := len(values)
	sum, min, max := 0.0, values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(n)

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	return EdgeLengthStats{
		Count:  n,
		Min:    min,
		Max:    max,
		Mean:   mean,
		StdDev: math.Sqrt(variance),
	}
}
