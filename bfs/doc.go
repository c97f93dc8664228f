// Package bfs provides breadth-first traversal over a graph.Graph, used by
// metrics to report component counts and reachability without pulling the
// layout engines themselves into that computation.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and connected components — metrics.ComponentCount
//     uses BFS to report how many disconnected pieces a laid-out graph has,
//     useful for catching layout bugs that scatter a connected input across
//     unrelated regions of the canvas.
//
// Determinism
//
//	graph.Graph.IncidentEdges returns edges in Edges() (lexicographic ID)
//	order, and BFS enqueues neighbors in that order, so the visit sequence
//	is fully reproducible.
//
// Edges are undirected for traversal: a graph.Edge with Source s and
// Target t connects s and t symmetrically, matching graph.Graph.Degree
// and graph.Graph.IncidentEdges.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, "start")
//	if err != nil {
//	    // ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, or a hook error
//	}
//
//	result, err = bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	    bfs.WithOnEnqueue(func(id string, depth int) { /* ... */ }),
//	    bfs.WithOnDequeue(func(id string, depth int) { /* ... */ }),
//	    bfs.WithOnVisit(func(id string, depth int) error { /* ... */ return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):      hook before a node is enqueued.
//   - WithOnDequeue(fn):      hook immediately before visiting a node.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    if an invalid Option is supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
