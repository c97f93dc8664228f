// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// graph.Graph, weighting each edge by the Euclidean distance between its
// endpoints' current positions.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes, processing nodes in order of increasing distance
// using a min-heap priority queue and relaxing edges as it goes.
//
// Notes on implementation choices:
//
//   - Edges are treated as undirected connections between Source and Target,
//     the same convention bfs.BFS uses for graph.Graph.
//   - An edge whose endpoints don't both carry a set Position weighs 1; this
//     keeps the algorithm usable before a layout has run, matching the
//     "dangling or unpositioned edges weigh 1" rule documented in types.go.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries once a node is finalized.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/graphlayout/graph"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes reachable in g. It accepts functional options to
// customize behavior (ReturnPath, MaxDistance).
//
// Returns:
//
//   - dist: map from node ID to minimum distance (math.MaxFloat64 if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err: one of the sentinel errors, or nil on success.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrNodeNotFound).
func Dijkstra(g *graph.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, ErrNodeNotFound
	}

	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(nodes))
	}

	r.init(nodes)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v]=math.MaxFloat64 for all nodes except Source (0), and seeds the heap.
func (r *runner) init(nodes []string) {
	for _, v := range nodes {
		r.dist[v] = math.MaxFloat64
		r.visited[v] = false
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0

	r.pq = make(nodePQ, 0, len(nodes))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the node with minimum distance and relaxes
// its incident edges, stopping once the heap empties or the frontier
// distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		r.relax(u)
	}
}

// relax examines each edge incident to u (undirected) and attempts to
// improve the distance to its other endpoint.
func (r *runner) relax(u string) {
	for _, e := range r.g.IncidentEdges(u) {
		v := e.Target
		if v == u {
			v = e.Source
		}
		if v == u {
			continue // self-loop
		}

		w := edgeWeight(r.g, e.Source, e.Target)
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// edgeWeight is the Euclidean distance between a's and b's current
// positions, or 1 if either endpoint has no position set yet.
func edgeWeight(g *graph.Graph, a, b string) float64 {
	pa, okA := g.Position(a)
	pb, okB := g.Position(b)
	if !okA || !okB || !pa.Set || !pb.Set {
		return 1
	}

	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist, using the
// lazy-decrease-key approach: stale entries are skipped via visited[].
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
