// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeWithID/RemoveEdge/Edges/
//       EdgeCount/Degree/IncidentEdges.
//
// Determinism:
//   - Edges() returns edge IDs sorted lexicographically ascending.
//   - nextEdgeID() is monotonic: "e0", "e1", "e2", ... matching the
//     fallback scheme formats.ParseJSON uses for edges missing an id.
//
// Behavior:
//   - Parallel edges and self-loops are always permitted.
//   - Endpoints are NOT required to exist. Dangling edges are stored as-is;
//     force/rank loops are responsible for skipping them.
package graph

import (
	"sort"
	"strconv"
)

// AddEdge creates a new edge between source and target with an
// auto-generated ID ("e<N>") and returns that ID. Endpoints need not
// already exist in the graph.
func (g *Graph) AddEdge(source, target string) (string, error) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	id := g.nextEdgeID()
	g.edges[id] = &Edge{ID: id, Source: source, Target: target, Attrs: make(map[string]AttrValue)}

	return id, nil
}

// AddEdgeWithID creates a new edge with an explicit ID, as file-format
// parsers do when the source data names its edges. Returns
// ErrEmptyEdgeID or ErrDuplicateEdgeID on invalid input.
func (g *Graph) AddEdgeWithID(id, source, target string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.edges[id]; exists {
		return ErrDuplicateEdgeID
	}
	g.edges[id] = &Edge{ID: id, Source: source, Target: target, Attrs: make(map[string]AttrValue)}

	return nil
}

// nextEdgeID returns the next auto-generated edge ID. Caller must hold muEdge.
func (g *Graph) nextEdgeID() string {
	id := "e" + strconv.FormatUint(g.nextEdgeSeq, 10)
	g.nextEdgeSeq++

	return id
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(id string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.edges[id]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)

	return nil
}

// Edge returns the edge with the given ID, or (nil, false) if absent.
func (g *Graph) Edge(id string) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[id]

	return e, ok
}

// Edges returns all edge IDs in lexicographic ascending order.
func (g *Graph) Edges() []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	ids := make([]string, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgeCount returns the number of edges currently in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// IncidentEdges returns, in Edges() order, every edge whose Source or
// Target equals id.
func (g *Graph) IncidentEdges(id string) []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	ids := make([]string, 0, len(g.edges))
	for eid := range g.edges {
		ids = append(ids, eid)
	}
	sort.Strings(ids)

	out := make([]*Edge, 0)
	for _, eid := range ids {
		e := g.edges[eid]
		if e.Source == id || e.Target == id {
			out = append(out, e)
		}
	}

	return out
}

// Degree returns the number of edges incident to id (an edge touching id
// as both Source and Target — a self-loop — counts once). Used by
// concentric's "degree" grouping and circular's optimize_ordering.
func (g *Graph) Degree(id string) int {
	return len(g.IncidentEdges(id))
}
