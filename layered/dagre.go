package layered

import (
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

// Dagre is the Dagre layered layout engine. Align is
// round-tripped through DagreOptions but does not vary this engine's
// geometry.
type Dagre struct {
	opts *layoutopts.DagreOptions
}

// NewDagre builds a Dagre engine from opts.
func NewDagre(opts *layoutopts.DagreOptions) *Dagre {
	return &Dagre{opts: opts}
}

// Name implements layout.LayoutEngine.
func (d *Dagre) Name() string { return "dagre" }

// Description implements layout.LayoutEngine.
func (d *Dagre) Description() string {
	return "Dagre: layered (Sugiyama-style) layout with selectable rank direction"
}

// Apply implements layout.LayoutEngine.
func (d *Dagre) Apply(g *graph.Graph) error {
	return run(g, params{
		nodeSeparation: d.opts.NodeSeparation,
		rankSeparation: d.opts.RankSeparation,
		direction:      d.opts.RankDirection,
		ranker:         d.opts.Ranker,
		breakCycles:    d.opts.Acyclic,
	})
}

// AssignLayers implements layout.Layered.
func (d *Dagre) AssignLayers(g *graph.Graph) ([][]string, error) {
	return assignLayers(g, g.Nodes(), d.opts.Ranker)
}

// BreakCycles implements layout.Layered.
func (d *Dagre) BreakCycles(g *graph.Graph, _ [][]string) error {
	if d.opts.Acyclic {
		breakCyclesDFS(g)
	}

	return nil
}

// MinimizeCrossings implements layout.Layered.
func (d *Dagre) MinimizeCrossings(layers [][]string, g *graph.Graph) error {
	minimizeCrossings(layers, g)
	return nil
}

// CountCrossings implements layout.Layered.
func (d *Dagre) CountCrossings(layer1, layer2 []string, g *graph.Graph) int {
	return countCrossings(layer1, layer2, g)
}
