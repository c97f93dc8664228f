package formats

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphlayout/graph"
)

type jsonGraph struct {
	Nodes []jsonNodeRaw `json:"nodes"`
	Edges []jsonEdgeRaw `json:"edges"`
}

// jsonNodeRaw and jsonEdgeRaw capture every field via a raw map so unknown
// keys become attributes instead of being rejected or discarded.
type jsonNodeRaw map[string]interface{}
type jsonEdgeRaw map[string]interface{}

// jsonNativeNode and jsonNativeEdge mirror the map-keyed document form,
// where nodes/edges are objects keyed by ID and position is a two-element
// [x, y] array (or null while unset).
type jsonNativeNode struct {
	ID       string                 `json:"id"`
	Position []float64              `json:"position"`
	Metadata map[string]interface{} `json:"metadata"`
}

type jsonNativeEdge struct {
	ID       string                 `json:"id"`
	Source   string                 `json:"source"`
	Target   string                 `json:"target"`
	Metadata map[string]interface{} `json:"metadata"`
}

// ParseJSON decodes content as a graph document in either of two shapes:
// the map-keyed form {"nodes": {id: node}, "edges": {id: edge}} mirroring
// the graph package's own id -> Node / id -> Edge model, or the array form
// {"nodes": [{id, x?, y?, ...extras}], "edges": [{id?, source, target,
// ...extras}]}. The shape is sniffed from whether "nodes"/"edges" hold a
// JSON object or a JSON array. In the array form, unrecognized node/edge
// fields become string, number, or bool attributes and edges missing an
// id get "e<index>".
func ParseJSON(content []byte) (*graph.Graph, error) {
	var shapes struct {
		Nodes json.RawMessage `json:"nodes"`
		Edges json.RawMessage `json:"edges"`
	}
	if err := json.Unmarshal(content, &shapes); err != nil {
		return nil, fmt.Errorf("formats: parse JSON: %w", err)
	}

	if isJSONObject(shapes.Nodes) || isJSONObject(shapes.Edges) {
		return parseJSONNative(shapes.Nodes, shapes.Edges)
	}

	return parseJSONArrays(shapes.Nodes, shapes.Edges)
}

// isJSONObject reports whether raw's first significant byte opens a JSON
// object.
func isJSONObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}

	return false
}

// parseJSONNative decodes the map-keyed form, iterating keys in sorted
// order so edge insertion stays deterministic. The map key is the
// authoritative ID; an embedded "id" field stands in for an empty key.
func parseJSONNative(rawNodes, rawEdges json.RawMessage) (*graph.Graph, error) {
	var nodes map[string]jsonNativeNode
	if len(rawNodes) > 0 {
		if err := json.Unmarshal(rawNodes, &nodes); err != nil {
			return nil, fmt.Errorf("formats: parse JSON nodes: %w", err)
		}
	}
	var edges map[string]jsonNativeEdge
	if len(rawEdges) > 0 {
		if err := json.Unmarshal(rawEdges, &edges); err != nil {
			return nil, fmt.Errorf("formats: parse JSON edges: %w", err)
		}
	}

	g := graph.New()

	nodeIDs := make([]string, 0, len(nodes))
	for id := range nodes {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)
	for _, id := range nodeIDs {
		n := nodes[id]
		if id == "" {
			id = n.ID
		}
		if id == "" {
			continue
		}
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
		if len(n.Position) >= 2 {
			if err := g.SetPosition(id, n.Position[0], n.Position[1]); err != nil {
				return nil, err
			}
		}
		for key, val := range n.Metadata {
			if err := setAttr(g, id, key, val); err != nil {
				return nil, err
			}
		}
	}

	edgeIDs := make([]string, 0, len(edges))
	for id := range edges {
		edgeIDs = append(edgeIDs, id)
	}
	sort.Strings(edgeIDs)
	for _, id := range edgeIDs {
		e := edges[id]
		if id == "" {
			id = e.ID
		}
		if id == "" || e.Source == "" || e.Target == "" {
			continue
		}
		if err := g.AddEdgeWithID(id, e.Source, e.Target); err != nil {
			return nil, err
		}
		stored, ok := g.Edge(id)
		if !ok {
			continue
		}
		for key, val := range e.Metadata {
			if av, ok := toAttr(val); ok {
				stored.Attrs[key] = av
			}
		}
	}

	return g, nil
}

// parseJSONArrays decodes the array form.
func parseJSONArrays(rawNodes, rawEdges json.RawMessage) (*graph.Graph, error) {
	var doc jsonGraph
	if len(rawNodes) > 0 {
		if err := json.Unmarshal(rawNodes, &doc.Nodes); err != nil {
			return nil, fmt.Errorf("formats: parse JSON nodes: %w", err)
		}
	}
	if len(rawEdges) > 0 {
		if err := json.Unmarshal(rawEdges, &doc.Edges); err != nil {
			return nil, fmt.Errorf("formats: parse JSON edges: %w", err)
		}
	}

	g := graph.New()
	for _, raw := range doc.Nodes {
		id, _ := raw["id"].(string)
		if id == "" {
			continue
		}
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
		if x, okx := raw["x"].(float64); okx {
			if y, oky := raw["y"].(float64); oky {
				if err := g.SetPosition(id, x, y); err != nil {
					return nil, err
				}
			}
		}
		for key, val := range raw {
			if key == "id" || key == "x" || key == "y" {
				continue
			}
			if err := setAttr(g, id, key, val); err != nil {
				return nil, err
			}
		}
	}

	for i, raw := range doc.Edges {
		source, _ := raw["source"].(string)
		target, _ := raw["target"].(string)
		if source == "" || target == "" {
			continue
		}
		id, _ := raw["id"].(string)
		if id == "" {
			id = fmt.Sprintf("e%d", i)
		}
		if err := g.AddEdgeWithID(id, source, target); err != nil {
			return nil, err
		}
		for key, val := range raw {
			if key == "id" || key == "source" || key == "target" {
				continue
			}
			if e, ok := g.Edge(id); ok {
				if av, ok := toAttr(val); ok {
					e.Attrs[key] = av
				}
			}
		}
	}

	return g, nil
}

func setAttr(g *graph.Graph, nodeID, key string, val interface{}) error {
	av, ok := toAttr(val)
	if !ok {
		return nil
	}

	return g.SetAttr(nodeID, key, av)
}

func toAttr(val interface{}) (graph.AttrValue, bool) {
	switch v := val.(type) {
	case string:
		return graph.StringAttr(v), true
	case float64:
		return graph.NumberAttr(v), true
	case bool:
		return graph.BoolAttr(v), true
	default:
		return graph.AttrValue{}, false
	}
}

// WriteJSON serializes g into the array-shaped {"nodes":[...],"edges":[...]}
// document ParseJSON accepts, so round-tripping a graph through this
// package is lossless for IDs, positions, and scalar attributes.
func WriteJSON(g *graph.Graph) ([]byte, error) {
	doc := jsonGraph{}
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		rec := jsonNodeRaw{"id": id}
		if n.Pos.Set {
			rec["x"] = n.Pos.X
			rec["y"] = n.Pos.Y
		}
		for k, v := range n.Attrs {
			rec[k] = fromAttr(v)
		}
		doc.Nodes = append(doc.Nodes, rec)
	}
	for _, id := range g.Edges() {
		e, _ := g.Edge(id)
		rec := jsonEdgeRaw{"id": id, "source": e.Source, "target": e.Target}
		for k, v := range e.Attrs {
			rec[k] = fromAttr(v)
		}
		doc.Edges = append(doc.Edges, rec)
	}

	return json.Marshal(doc)
}

func fromAttr(v graph.AttrValue) interface{} {
	switch v.Kind() {
	case graph.AttrString:
		s, _ := v.StringValue()
		return s
	case graph.AttrNumber:
		n, _ := v.NumberValue()
		return n
	case graph.AttrBool:
		b, _ := v.BoolValue()
		return b
	default:
		return nil
	}
}
