package formats

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphlayout/graph"
)

// ParseCSV sniffs content's header row: a "source"/"target" column marks
// an edge list, otherwise it is parsed as a node list requiring an "id"
// column.
func ParseCSV(content []byte) (*graph.Graph, error) {
	r := csv.NewReader(strings.NewReader(string(content)))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("formats: read CSV header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	if _, hasSource := idx["source"]; hasSource {
		return parseCSVEdgeList(r, header, idx)
	}
	if _, hasTarget := idx["target"]; hasTarget {
		return parseCSVEdgeList(r, header, idx)
	}

	return parseCSVNodeList(r, header, idx)
}

func parseCSVNodeList(r *csv.Reader, header []string, idx map[string]int) (*graph.Graph, error) {
	idCol, ok := idx["id"]
	if !ok {
		return nil, fmt.Errorf("formats: CSV node list must have an 'id' column")
	}
	xCol, hasX := idx["x"]
	yCol, hasY := idx["y"]

	g := graph.New()
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if idCol >= len(record) {
			continue
		}
		id := strings.TrimSpace(record[idCol])
		if id == "" {
			continue
		}
		if err := g.AddNode(id); err != nil {
			return nil, err
		}

		if hasX && hasY && xCol < len(record) && yCol < len(record) {
			x, errX := strconv.ParseFloat(strings.TrimSpace(record[xCol]), 64)
			y, errY := strconv.ParseFloat(strings.TrimSpace(record[yCol]), 64)
			if errX == nil && errY == nil {
				if err := g.SetPosition(id, x, y); err != nil {
					return nil, err
				}
			}
		}

		for i, h := range header {
			if i == idCol || i >= len(record) {
				continue
			}
			if hasX && i == xCol {
				continue
			}
			if hasY && i == yCol {
				continue
			}
			if err := g.SetAttr(id, h, graph.StringAttr(record[i])); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// WriteCSV serializes g as an edge-list CSV ("source,target,id") that
// ParseCSV reads back. An edge list has no node-only rows, so nodes with
// no incident edge are not represented; prefer JSON or DOT for graphs
// that may contain isolated nodes.
func WriteCSV(g *graph.Graph) ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write([]string{"source", "target", "id"}); err != nil {
		return nil, err
	}
	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		if err := w.Write([]string{e.Source, e.Target, eid}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return []byte(sb.String()), nil
}

func parseCSVEdgeList(r *csv.Reader, header []string, idx map[string]int) (*graph.Graph, error) {
	sourceCol, ok := idx["source"]
	if !ok {
		return nil, fmt.Errorf("formats: CSV edge list must have a 'source' column")
	}
	targetCol, ok := idx["target"]
	if !ok {
		return nil, fmt.Errorf("formats: CSV edge list must have a 'target' column")
	}
	idCol, hasID := idx["id"]

	g := graph.New()
	row := 0
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if sourceCol >= len(record) || targetCol >= len(record) {
			continue
		}
		source := strings.TrimSpace(record[sourceCol])
		target := strings.TrimSpace(record[targetCol])
		if source == "" || target == "" {
			continue
		}
		if err := g.AddNode(source); err != nil {
			return nil, err
		}
		if err := g.AddNode(target); err != nil {
			return nil, err
		}

		id := ""
		if hasID && idCol < len(record) {
			id = strings.TrimSpace(record[idCol])
		}
		if id == "" {
			id = fmt.Sprintf("e%d", row)
		}
		if err := g.AddEdgeWithID(id, source, target); err != nil {
			return nil, err
		}

		for i, h := range header {
			if i == sourceCol || i == targetCol || i >= len(record) {
				continue
			}
			if hasID && i == idCol {
				continue
			}
			if e, ok := g.Edge(id); ok {
				e.Attrs[h] = graph.StringAttr(record[i])
			}
		}

		row++
	}

	return g, nil
}
