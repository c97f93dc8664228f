package forcelayout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlayout/forcelayout"
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddNode("b"))
	require.NoError(t, g.AddNode("c"))
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c")
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a")
	require.NoError(t, err)

	return g
}

func TestFcoseAssignsDistinctPositions(t *testing.T) {
	g := buildTriangle(t)
	opts := layoutopts.NewFcoseOptions(layoutopts.WithQuality(layoutopts.QualityDraft))
	opts.Seed = 42

	require.NoError(t, forcelayout.NewFcose(opts).Apply(g))

	seen := map[[2]float64]bool{}
	for _, id := range g.Nodes() {
		p, ok := g.Position(id)
		require.True(t, ok)
		require.True(t, p.Set)
		seen[[2]float64{p.X, p.Y}] = true
	}
	require.Len(t, seen, 3)
}

func TestFcoseIsDeterministicForSameSeed(t *testing.T) {
	opts := layoutopts.NewFcoseOptions(layoutopts.WithQuality(layoutopts.QualityDraft))
	opts.Seed = 7

	g1 := buildTriangle(t)
	require.NoError(t, forcelayout.NewFcose(opts).Apply(g1))

	g2 := buildTriangle(t)
	require.NoError(t, forcelayout.NewFcose(opts).Apply(g2))

	for _, id := range g1.Nodes() {
		p1, _ := g1.Position(id)
		p2, _ := g2.Position(id)
		require.InDelta(t, p1.X, p2.X, 1e-9)
		require.InDelta(t, p1.Y, p2.Y, 1e-9)
	}
}

func TestFcoseToleratesDanglingEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a"))
	_, err := g.AddEdge("a", "ghost")
	require.NoError(t, err)

	opts := layoutopts.NewFcoseOptions(layoutopts.WithQuality(layoutopts.QualityDraft))
	require.NoError(t, forcelayout.NewFcose(opts).Apply(g))

	p, ok := g.Position("a")
	require.True(t, ok)
	require.True(t, p.Set)
}

func TestCoseBilkentRuns(t *testing.T) {
	g := buildTriangle(t)
	opts := layoutopts.NewCoseBilkentOptions()
	opts.Seed = 1

	require.NoError(t, forcelayout.NewCoseBilkent(opts).Apply(g))

	for _, id := range g.Nodes() {
		p, ok := g.Position(id)
		require.True(t, ok)
		require.True(t, p.Set)
	}
}

// TestFcoseTwoNodeEdgeApproachesIdealLength starts two connected nodes
// 100 apart and checks the spring pulls them toward the 50-unit rest
// length over the default iteration budget.
func TestFcoseTwoNodeEdgeApproachesIdealLength(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddNode("b"))
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	require.NoError(t, g.SetPosition("a", 0, 0))
	require.NoError(t, g.SetPosition("b", 100, 0))

	opts := layoutopts.NewFcoseOptions()
	require.NoError(t, forcelayout.NewFcose(opts).Apply(g))

	pa, _ := g.Position("a")
	pb, _ := g.Position("b")
	d := math.Hypot(pb.X-pa.X, pb.Y-pa.Y)
	require.Less(t, math.Abs(d-opts.IdealEdgeLength), math.Abs(100-opts.IdealEdgeLength))
}

// TestRepulsionMagnitude pins the pairwise repulsion law on a two-node
// graph at distance d: |F| = C/d², directed apart along the connecting
// line.
func TestRepulsionMagnitude(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddNode("b"))
	require.NoError(t, g.SetPosition("a", 0, 0))
	require.NoError(t, g.SetPosition("b", 10, 0))

	opts := layoutopts.NewFcoseOptions(layoutopts.WithNodeRepulsion(4500))
	forces := forcelayout.NewFcose(opts).CalcRepulsion(g)

	require.Len(t, forces, 2)
	want := 4500.0 / (10 * 10)
	require.InDelta(t, -want, forces[0][0], 1e-9) // "a" pushed toward -x
	require.InDelta(t, 0, forces[0][1], 1e-9)
	require.InDelta(t, want, forces[1][0], 1e-9) // "b" pushed toward +x
	require.InDelta(t, 0, forces[1][1], 1e-9)
}

// TestAttractionMagnitude pins the spring law on a single edge at distance
// d: |F| = (d-k)/3, pulling the endpoints together when d > k.
func TestAttractionMagnitude(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddNode("b"))
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	require.NoError(t, g.SetPosition("a", 0, 0))
	require.NoError(t, g.SetPosition("b", 80, 0))

	opts := layoutopts.NewFcoseOptions(layoutopts.WithIdealEdgeLength(50))
	forces := forcelayout.NewFcose(opts).CalcAttraction(g)

	require.Len(t, forces, 2)
	want := (80.0 - 50.0) / 3
	require.InDelta(t, want, forces[0][0], 1e-9) // "a" pulled toward +x
	require.InDelta(t, -want, forces[1][0], 1e-9) // "b" pulled toward -x
}

// TestNearbyPairContributesNoForce checks the numerical guard: a pair (or
// edge) whose separation is under the guard threshold contributes nothing
// instead of blowing up.
func TestNearbyPairContributesNoForce(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddNode("b"))
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	require.NoError(t, g.SetPosition("a", 0, 0))
	require.NoError(t, g.SetPosition("b", 0.01, 0))

	engine := forcelayout.NewFcose(layoutopts.NewFcoseOptions())
	for _, forces := range [][][2]float64{engine.CalcRepulsion(g), engine.CalcAttraction(g)} {
		for _, f := range forces {
			require.Zero(t, f[0])
			require.Zero(t, f[1])
		}
	}
}

func TestEmptyGraphIsNoop(t *testing.T) {
	g := graph.New()
	opts := layoutopts.NewFcoseOptions()
	require.NoError(t, forcelayout.NewFcose(opts).Apply(g))
}

// TestFcoseOverlapRemovalClearsMinDistance checks that
// after fCoSE's overlap-removal pass, every pair's separation is at least
// min_distance = 2r(1 - overlap/100), r=10.
func TestFcoseOverlapRemovalClearsMinDistance(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(id))
	}
	// Seed all four nodes at (or near) the same point so repulsion alone
	// cannot reliably separate them within the iteration budget; only the
	// dedicated overlap pass guarantees the invariant.
	require.NoError(t, g.SetPosition("a", 0, 0))
	require.NoError(t, g.SetPosition("b", 0.001, 0))
	require.NoError(t, g.SetPosition("c", 0, 0.001))
	require.NoError(t, g.SetPosition("d", 0.001, 0.001))

	opts := layoutopts.NewFcoseOptions(layoutopts.WithQuality(layoutopts.QualityDraft))
	opts.NodeOverlap = 10
	opts.Seed = 99

	require.NoError(t, forcelayout.NewFcose(opts).Apply(g))

	const minDistance = 2 * 10 * (1 - 10.0/100)
	ids := g.Nodes()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pi, _ := g.Position(ids[i])
			pj, _ := g.Position(ids[j])
			dx, dy := pi.X-pj.X, pi.Y-pj.Y
			d := dx*dx + dy*dy
			require.GreaterOrEqual(t, d, (minDistance-1e-6)*(minDistance-1e-6))
		}
	}
}
