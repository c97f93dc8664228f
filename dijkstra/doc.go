// Package dijkstra provides a single-source shortest-path search over a
// graph.Graph, used by metrics to compute a diameter-style spread statistic
// over a finished layout.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Edge weight is the Euclidean distance between the edge's two endpoints'
//     current positions; an edge with an unpositioned endpoint weighs 1.
//   - Supports optional path reconstruction and a distance cap.
//
// API reference:
//
//	func Dijkstra(
//	    g *graph.Graph,
//	    opts ...Option,
//	) (dist map[string]float64, prev map[string]string, err error)
//
//	  - g:    the graph to search.
//	  - opts: zero or more functional options, including:
//	      • Source(string):         required, the starting node ID.
//	      • WithReturnPath():       if set, returns a predecessor map; otherwise prev == nil.
//	      • WithMaxDistance(float64): if set, explores only nodes with distance <= given value.
//	  - dist: map[v] = minimal distance from Source to v, or math.MaxFloat64 if unreachable.
//	  - prev: map[v] = immediate predecessor of v on one shortest path from Source,
//	           or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//	  - err:  one of the sentinel errors (ErrEmptySource, ErrNilGraph, ErrNodeNotFound), or nil.
//
// Thread safety:
//
//   - Dijkstra itself is not thread-safe if the same *graph.Graph is modified
//     concurrently from another goroutine mid-search.
package dijkstra
