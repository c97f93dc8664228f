package circular_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlayout/circular"
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

func buildCycle(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = string(rune('a' + i))
		require.NoError(t, g.AddNode(ids[i]))
	}
	for i := 0; i < n; i++ {
		_, err := g.AddEdge(ids[i], ids[(i+1)%n])
		require.NoError(t, err)
	}

	return g
}

func TestCiseSingleCircleAllSamePlacedOnRing(t *testing.T) {
	g := buildCycle(t, 5)
	opts := layoutopts.NewCiseOptions()

	require.NoError(t, circular.NewCise(opts).Apply(g))

	var radius float64
	for i, id := range g.Nodes() {
		p, ok := g.Position(id)
		require.True(t, ok)
		require.True(t, p.Set)
		r := math.Hypot(p.X, p.Y)
		if i == 0 {
			radius = r
		} else {
			require.InDelta(t, radius, r, 1e-6)
		}
	}
}

func TestCiseClustersGetDistinctRadii(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(id))
	}
	opts := layoutopts.NewCiseOptions(layoutopts.WithClusters([][]string{{"a", "b"}, {"c", "d"}}))

	require.NoError(t, circular.NewCise(opts).Apply(g))

	pa, _ := g.Position("a")
	pc, _ := g.Position("c")
	require.NotEqual(t, math.Hypot(pa.X, pa.Y), math.Hypot(pc.X, pc.Y))
}

func TestCiseEmptyGraphIsNoop(t *testing.T) {
	g := graph.New()
	opts := layoutopts.NewCiseOptions()
	require.NoError(t, circular.NewCise(opts).Apply(g))
}
