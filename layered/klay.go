package layered

import (
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

// Klay is the KLay layered layout engine. Its cosmetic options
// (NodePlacement, CrossMinimization, CycleBreaking, EdgeRouting,
// MergeEdges) are round-tripped through KlayOptions but do not vary this
// engine's geometry.
type Klay struct {
	opts *layoutopts.KlayOptions
}

// NewKlay builds a Klay engine from opts.
func NewKlay(opts *layoutopts.KlayOptions) *Klay {
	return &Klay{opts: opts}
}

// Name implements layout.LayoutEngine.
func (k *Klay) Name() string { return "klay" }

// Description implements layout.LayoutEngine.
func (k *Klay) Description() string {
	return "KLay: layered (Sugiyama-style) layout, top-to-bottom"
}

// Apply implements layout.LayoutEngine.
func (k *Klay) Apply(g *graph.Graph) error {
	return run(g, params{
		nodeSeparation: k.opts.NodeSpacing,
		rankSeparation: k.opts.LayerSpacing,
		direction:      "TB",
		ranker:         "longest-path",
		breakCycles:    true,
	})
}

// AssignLayers implements layout.Layered.
func (k *Klay) AssignLayers(g *graph.Graph) ([][]string, error) {
	return assignLayersLongestPath(g, g.Nodes())
}

// BreakCycles implements layout.Layered.
func (k *Klay) BreakCycles(g *graph.Graph, _ [][]string) error {
	breakCyclesDFS(g)
	return nil
}

// MinimizeCrossings implements layout.Layered.
func (k *Klay) MinimizeCrossings(layers [][]string, g *graph.Graph) error {
	minimizeCrossings(layers, g)
	return nil
}

// CountCrossings implements layout.Layered.
func (k *Klay) CountCrossings(layer1, layer2 []string, g *graph.Graph) int {
	return countCrossings(layer1, layer2, g)
}
