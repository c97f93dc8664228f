package layout_test

import (
	"github.com/katalvlaran/graphlayout/circular"
	"github.com/katalvlaran/graphlayout/concentric"
	"github.com/katalvlaran/graphlayout/forcelayout"
	"github.com/katalvlaran/graphlayout/layered"
	"github.com/katalvlaran/graphlayout/layout"
)

// Compile-time checks that each engine satisfies its capability traits in
// addition to LayoutEngine.
var (
	_ layout.LayoutEngine  = (*forcelayout.Fcose)(nil)
	_ layout.LayoutEngine  = (*forcelayout.CoseBilkent)(nil)
	_ layout.LayoutEngine  = (*circular.Cise)(nil)
	_ layout.LayoutEngine  = (*concentric.Concentric)(nil)
	_ layout.LayoutEngine  = (*layered.Klay)(nil)
	_ layout.LayoutEngine  = (*layered.Dagre)(nil)
	_ layout.ForceDirected = (*forcelayout.Fcose)(nil)
	_ layout.ForceDirected = (*forcelayout.CoseBilkent)(nil)
	_ layout.Circular      = (*circular.Cise)(nil)
	_ layout.Hierarchical  = (*concentric.Concentric)(nil)
	_ layout.Layered       = (*layered.Klay)(nil)
	_ layout.Layered       = (*layered.Dagre)(nil)
)
