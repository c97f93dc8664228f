package forcelayout

import (
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

// CoseBilkent is the original CoSE (Bilkent) layout engine: the
// same spring-embedder loop as Fcose, run for a fixed iteration count and
// without the overlap-removal post-pass.
type CoseBilkent struct {
	opts *layoutopts.CoseBilkentOptions
}

// NewCoseBilkent builds a CoseBilkent engine from opts.
func NewCoseBilkent(opts *layoutopts.CoseBilkentOptions) *CoseBilkent {
	return &CoseBilkent{opts: opts}
}

// Name implements layout.LayoutEngine.
func (c *CoseBilkent) Name() string { return "cose-bilkent" }

// Description implements layout.LayoutEngine.
func (c *CoseBilkent) Description() string {
	return "CoSE (Bilkent): force-directed placement without overlap removal"
}

// Apply implements layout.LayoutEngine.
func (c *CoseBilkent) Apply(g *graph.Graph) error {
	return run(g, params{
		nodeRepulsion:   c.opts.NodeRepulsion,
		idealEdgeLength: c.opts.IdealEdgeLength,
		nodeOverlap:     c.opts.NodeOverlap,
		iterations:      layoutopts.CoseBilkentIterations,
		seed:            c.opts.Seed,
		removeOverlap:   false,
	})
}
