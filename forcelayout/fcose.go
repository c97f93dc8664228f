package forcelayout

import (
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

// Fcose is the fast Compound Spring Embedder layout engine.
type Fcose struct {
	opts *layoutopts.FcoseOptions
}

// NewFcose builds an Fcose engine from opts.
func NewFcose(opts *layoutopts.FcoseOptions) *Fcose {
	return &Fcose{opts: opts}
}

// Name implements layout.LayoutEngine.
func (f *Fcose) Name() string { return "fcose" }

// Description implements layout.LayoutEngine.
func (f *Fcose) Description() string {
	return "fast Compound Spring Embedder: force-directed placement with overlap removal"
}

// Apply implements layout.LayoutEngine.
func (f *Fcose) Apply(g *graph.Graph) error {
	return run(g, params{
		nodeRepulsion:   f.opts.NodeRepulsion,
		idealEdgeLength: f.opts.IdealEdgeLength,
		nodeOverlap:     f.opts.NodeOverlap,
		iterations:      f.opts.Quality.Iterations(),
		seed:            f.opts.Seed,
		removeOverlap:   true,
	})
}
