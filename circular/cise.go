// Package circular implements the CiSE circular layout: nodes are
// placed on one or more circles of fixed radius. With no clusters, every
// node shares one circle. With clusters, each non-empty cluster gets its
// own small circle, and the small circles' centers are themselves spaced
// around a larger outer circle; nodes absent from every cluster land on a
// final, outermost circle of their own.
package circular

import (
	"math"
	"sort"

	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

// circleRadius is the fixed radius every individual circle (the lone
// circle, or each cluster's small circle) is drawn at.
const circleRadius = 100.0

// Cise is the CiSE circular layout engine.
type Cise struct {
	opts *layoutopts.CiseOptions
}

// NewCise builds a Cise engine from opts.
func NewCise(opts *layoutopts.CiseOptions) *Cise {
	return &Cise{opts: opts}
}

// Name implements layout.LayoutEngine.
func (c *Cise) Name() string { return "cise" }

// Description implements layout.LayoutEngine.
func (c *Cise) Description() string {
	return "CiSE: circular layout with optional per-cluster rings"
}

// Apply implements layout.LayoutEngine.
func (c *Cise) Apply(g *graph.Graph) error {
	all := g.Nodes()
	if len(all) == 0 {
		return nil
	}

	clusters := nonEmptyClusters(c.opts.Clusters)
	if len(clusters) == 0 {
		return c.ArrangeCircle(g, circleRadius)
	}

	outerRadius := 2*circleRadius + c.opts.CircleSpacing
	clustered := make(map[string]bool)
	for ci, cluster := range clusters {
		angle := 2 * math.Pi * float64(ci) / float64(len(clusters))
		center := [2]float64{outerRadius * math.Cos(angle), outerRadius * math.Sin(angle)}
		if err := placeOnCircle(g, cluster, circleRadius, center); err != nil {
			return err
		}
		for _, id := range cluster {
			clustered[id] = true
		}
	}

	var orphans []string
	for _, id := range all {
		if !clustered[id] {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) == 0 {
		return nil
	}

	return placeOnCircle(g, orphans, outerRadius+circleRadius, [2]float64{})
}

// ArrangeCircle implements layout.Circular: it places every node currently
// in g on a single circle of the given radius, centered at the origin,
// equally spaced by angle in enumeration order.
func (c *Cise) ArrangeCircle(g *graph.Graph, radius float64) error {
	return placeOnCircle(g, g.Nodes(), radius, [2]float64{})
}

// OptimizeOrdering implements layout.Circular: it reorders every node
// currently in g by ascending node degree, breaking ties by the nodes'
// existing relative order, and re-angles them on a single circle of
// radius circleRadius. This is a heuristic stand-in for true crossing
// minimization; callers that want the un-reordered enumeration order
// should call ArrangeCircle directly instead.
func (c *Cise) OptimizeOrdering(g *graph.Graph) error {
	return placeOnCircle(g, orderByDegree(g, g.Nodes()), circleRadius, [2]float64{})
}

// orderByDegree sorts a copy of nodeIDs by ascending degree, stable on
// ties, as the ordering-optimization heuristic.
func orderByDegree(g *graph.Graph, nodeIDs []string) []string {
	ordered := append([]string(nil), nodeIDs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return g.Degree(ordered[i]) < g.Degree(ordered[j])
	})

	return ordered
}

// placeOnCircle writes positions for nodeIDs equally spaced by angle
// around a circle of the given radius centered at center, in the order
// nodeIDs is given. Node IDs that no longer exist in g are skipped,
// tolerating a cluster that references a removed node.
func placeOnCircle(g *graph.Graph, nodeIDs []string, radius float64, center [2]float64) error {
	n := len(nodeIDs)
	if n == 0 {
		return nil
	}
	for i, id := range nodeIDs {
		if !g.HasNode(id) {
			continue
		}
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := center[0] + radius*math.Cos(theta)
		y := center[1] + radius*math.Sin(theta)
		if err := g.SetPosition(id, x, y); err != nil {
			return err
		}
	}

	return nil
}

// nonEmptyClusters filters out empty cluster entries; only non-empty
// clusters get circles, and only their count feeds outer-circle spacing.
func nonEmptyClusters(clusters [][]string) [][]string {
	out := make([][]string, 0, len(clusters))
	for _, cl := range clusters {
		if len(cl) > 0 {
			out = append(out, cl)
		}
	}

	return out
}
