// Package concentric implements the Concentric layout: nodes are
// grouped into levels by node degree (or, for "id", one single level
// holding every node), then placed evenly around rings whose radius grows
// with level index.
package concentric

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

// ErrUnsupportedConcentricBy is returned when ConcentricBy names anything
// other than "degree" or "id".
var ErrUnsupportedConcentricBy = errors.New("Unsupported concentric_by value")

// Concentric is the concentric-ring layout engine.
type Concentric struct {
	opts *layoutopts.ConcentricOptions
}

// NewConcentric builds a Concentric engine from opts.
func NewConcentric(opts *layoutopts.ConcentricOptions) *Concentric {
	return &Concentric{opts: opts}
}

// Name implements layout.LayoutEngine.
func (c *Concentric) Name() string { return "concentric" }

// Description implements layout.LayoutEngine.
func (c *Concentric) Description() string {
	return "concentric rings grouped by node degree or a single id-based ring"
}

// Apply implements layout.LayoutEngine.
func (c *Concentric) Apply(g *graph.Graph) error {
	levels, err := c.AssignLevels(g)
	if err != nil {
		return err
	}

	return c.PositionNodes(g, levels)
}

// AssignLevels groups nodes into levels per ConcentricBy:
//
//   - "degree" (the default, "" included): nodes with equal degree share a
//     level; levels are ordered so the highest-degree group is innermost
//     (level 0), so a star's hub lands on the innermost ring.
//   - "id": a single level containing every node.
//   - anything else: ErrUnsupportedConcentricBy, wrapping the bad value.
func (c *Concentric) AssignLevels(g *graph.Graph) ([][]string, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}

	switch c.opts.ConcentricBy {
	case "degree", "":
		return groupByDegree(g, nodes), nil
	case "id":
		return [][]string{nodes}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConcentricBy, c.opts.ConcentricBy)
	}
}

// groupByDegree buckets nodes sharing a degree into one level each,
// ordered from highest degree (level 0, innermost) to lowest (outermost).
func groupByDegree(g *graph.Graph, nodes []string) [][]string {
	byDegree := make(map[int][]string)
	degrees := make([]int, 0)
	seen := make(map[int]bool)
	for _, id := range nodes {
		d := g.Degree(id)
		byDegree[d] = append(byDegree[d], id)
		if !seen[d] {
			seen[d] = true
			degrees = append(degrees, d)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))

	levels := make([][]string, 0, len(degrees))
	for _, d := range degrees {
		group := byDegree[d]
		sort.Strings(group)
		levels = append(levels, group)
	}

	return levels
}

// PositionNodes places level i's nodes evenly around a circle of radius
// (i+1)*LevelWidth, centered at the origin, in enumeration order.
func (c *Concentric) PositionNodes(g *graph.Graph, levels [][]string) error {
	for level, ids := range levels {
		radius := float64(level+1) * c.opts.LevelWidth
		n := len(ids)
		for i, id := range ids {
			theta := 2 * math.Pi * float64(i) / float64(n)
			x := radius * math.Cos(theta)
			y := radius * math.Sin(theta)
			if err := g.SetPosition(id, x, y); err != nil {
				return err
			}
		}
	}

	return nil
}
