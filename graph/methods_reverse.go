package graph

// ReverseEdge swaps an edge's Source and Target in place. Layered engines
// use this to eliminate backward edges during cycle breaking: the
// edge's identity and attributes are preserved, only direction flips.
func (g *Graph) ReverseEdge(id string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Source, e.Target = e.Target, e.Source

	return nil
}
