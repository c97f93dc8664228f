// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlayout/dijkstra"
	"github.com/katalvlaran/graphlayout/graph"
)

// linear builds a chain of nodes along the X axis, so the edge between
// consecutive nodes i and i+1 has weight spacing[i].
func linear(t *testing.T, ids []string, spacing []float64) *graph.Graph {
	t.Helper()
	g := graph.New()
	x := 0.0
	for i, id := range ids {
		require.NoError(t, g.AddNode(id))
		require.NoError(t, g.SetPosition(id, x, 0))
		if i < len(spacing) {
			x += spacing[i]
		}
	}
	for i := 0; i+1 < len(ids); i++ {
		_, err := g.AddEdge(ids[i], ids[i+1])
		require.NoError(t, err)
	}

	return g
}

func TestDijkstraEmptySource(t *testing.T) {
	g := graph.New()
	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstraNilGraphWithoutSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstraNilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstraSourceNotFound(t *testing.T) {
	g := graph.New()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestDijkstraTriangleNoPath(t *testing.T) {
	// A-B weight 1, B-C weight 2, A-C weight 3 (by direct placement).
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddNode("C"))
	require.NoError(t, g.SetPosition("A", 0, 0))
	require.NoError(t, g.SetPosition("B", 1, 0))
	require.NoError(t, g.SetPosition("C", 3, 0))
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.InDelta(t, 3, dist["C"], 1e-9) // via A-B-C: 1+2=3, ties direct A-C=3
	require.Nil(t, prev)
}

func TestDijkstraTriangleWithPath(t *testing.T) {
	g := linear(t, []string{"A", "B", "C"}, []float64{1, 2})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	require.InDelta(t, 0, dist["A"], 1e-9)
	require.InDelta(t, 1, dist["B"], 1e-9)
	require.InDelta(t, 3, dist["C"], 1e-9)
	require.Equal(t, "A", prev["B"])
	require.Equal(t, "B", prev["C"])
}

func TestDijkstraChainWithPath(t *testing.T) {
	// A-B-C-D-E, with D-F-G branching off.
	g := graph.New()
	for _, id := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.SetPosition("A", 0, 0))
	require.NoError(t, g.SetPosition("B", 1, 0))
	require.NoError(t, g.SetPosition("C", 2, 0))
	require.NoError(t, g.SetPosition("D", 3, 0))
	require.NoError(t, g.SetPosition("E", 4, 0))
	require.NoError(t, g.SetPosition("F", 3, 1))
	require.NoError(t, g.SetPosition("G", 3, 2))
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"D", "F"}, {"F", "G"},
	} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	expected := map[string]float64{
		"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5,
	}
	for id, want := range expected {
		require.InDelta(t, want, dist[id], 1e-9, "dist[%s]", id)
	}
	require.Equal(t, "A", prev["B"])
	require.Equal(t, "B", prev["C"])
	require.Equal(t, "C", prev["D"])
}

func TestDijkstraUnpositionedEdgesWeighOne(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddNode("C"))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.InDelta(t, 1, dist["B"], 1e-9)
	require.InDelta(t, 2, dist["C"], 1e-9)
}

func TestDijkstraMaxDistanceLimits(t *testing.T) {
	g := linear(t, []string{"A", "B", "C", "D"}, []float64{1, 1, 1})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)

	require.InDelta(t, 0, dist["A"], 1e-9)
	require.InDelta(t, 1, dist["B"], 1e-9)
	require.Equal(t, math.MaxFloat64, dist["C"])
	require.Equal(t, math.MaxFloat64, dist["D"])
}

func TestDijkstraMaxDistanceZero(t *testing.T) {
	g := linear(t, []string{"A", "B"}, []float64{1})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	require.InDelta(t, 0, dist["A"], 1e-9)
	require.Equal(t, math.MaxFloat64, dist["B"])
}

func TestDijkstraSingleNodeReturnsZero(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("Solo"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.InDelta(t, 0, dist["Solo"], 1e-9)
	require.Equal(t, "", prev["Solo"])
}

func TestDijkstraEmptyGraphReturnsNodeNotFound(t *testing.T) {
	g := graph.New()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Any"))
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestDijkstraSelfLoopZeroWeight(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("X"))
	_, err := g.AddEdge("X", "X")
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.InDelta(t, 0, dist["X"], 1e-9)
	require.Equal(t, "", prev["X"])
}

func TestWithMaxDistanceNegativePanics(t *testing.T) {
	require.Panics(t, func() {
		_ = dijkstra.WithMaxDistance(-1)
	})
}
