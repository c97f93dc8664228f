// Package layout hosts the capability trait layer and the
// dispatcher that selects one of the six engines by options type.
//
// Algorithms compose from phases, not from inheritance: a layered engine
// satisfies Layered and LayoutEngine; a force-directed engine satisfies
// ForceDirected and LayoutEngine. The dispatcher only needs LayoutEngine —
// the narrower traits exist so phases are independently testable and
// reusable (e.g. KLay and Dagre run the same cycle-breaking routine from
// package layered).
package layout

import "github.com/katalvlaran/graphlayout/graph"

// LayoutEngine is the contract every algorithm implements: mutate the
// graph's node positions in place and report success or a descriptive
// error. No engine retains a reference to g after Apply returns.
type LayoutEngine interface {
	Apply(g *graph.Graph) error
	Name() string
	Description() string
}

// ForceDirected decomposes a spring-embedder engine into its three phases.
type ForceDirected interface {
	CalcRepulsion(g *graph.Graph) [][2]float64
	CalcAttraction(g *graph.Graph) [][2]float64
	ApplyForces(g *graph.Graph, forces [][2]float64) error
}

// Layered decomposes a Sugiyama-style engine into its phases.
type Layered interface {
	AssignLayers(g *graph.Graph) ([][]string, error)
	BreakCycles(g *graph.Graph, layers [][]string) error
	MinimizeCrossings(layers [][]string, g *graph.Graph) error
	CountCrossings(layer1, layer2 []string, g *graph.Graph) int
}

// Circular decomposes a circle-arrangement engine into its phases.
type Circular interface {
	ArrangeCircle(g *graph.Graph, radius float64) error
	OptimizeOrdering(g *graph.Graph) error
}

// Hierarchical decomposes a level-based engine (concentric) into its phases.
type Hierarchical interface {
	AssignLevels(g *graph.Graph) ([][]string, error)
	PositionNodes(g *graph.Graph, levels [][]string) error
}
