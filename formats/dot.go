package formats

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphlayout/graph"
)

// ParseDOT performs a permissive, single-pass scan of a DOT source: it
// recognizes edge statements ("a -> b" or "a -- b"), bracketed node
// attribute statements ("a [label=...]"), and bare node statements ("a;"),
// skipping comments, graph-level attributes, and anything else it does
// not recognize rather than failing the whole file.
func ParseDOT(content []byte) (*graph.Graph, error) {
	g := graph.New()
	seen := make(map[string]bool)
	ensure := func(id string) error {
		id = unquote(strings.TrimSpace(id))
		if id == "" || seen[id] {
			return nil
		}
		seen[id] = true

		return g.AddNode(id)
	}

	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	started := false
	edgeSeq := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !started {
			if strings.HasPrefix(line, "digraph") || strings.HasPrefix(line, "graph") {
				started = true
			}
			continue
		}

		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "}") {
			continue
		}
		if strings.Contains(line, "=") && !strings.Contains(line, "->") &&
			!strings.Contains(line, "--") && !strings.Contains(line, "[") {
			continue
		}

		switch {
		case strings.Contains(line, "->") || strings.Contains(line, "--"):
			sep := "->"
			if !strings.Contains(line, "->") {
				sep = "--"
			}
			parts := strings.SplitN(line, sep, 2)
			if len(parts) < 2 {
				continue
			}
			source := unquote(strings.TrimSpace(parts[0]))
			rest := strings.SplitN(parts[1], ";", 2)[0]
			rest = strings.SplitN(rest, "[", 2)[0]
			target := unquote(strings.TrimSpace(rest))
			if source == "" || target == "" {
				continue
			}
			if err := ensure(source); err != nil {
				return nil, err
			}
			if err := ensure(target); err != nil {
				return nil, err
			}
			id := fmt.Sprintf("e%d_%s_%s", edgeSeq, source, target)
			edgeSeq++
			if err := g.AddEdgeWithID(id, source, target); err != nil {
				return nil, err
			}

		case strings.Contains(line, "["):
			id := unquote(strings.TrimSpace(strings.SplitN(line, "[", 2)[0]))
			if err := ensure(id); err != nil {
				return nil, err
			}
			for key, val := range parseDOTAttrs(line) {
				if err := g.SetAttr(id, key, graph.StringAttr(val)); err != nil {
					return nil, err
				}
			}

		default:
			id := unquote(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if err := ensure(id); err != nil {
				return nil, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("formats: scan DOT: %w", err)
	}

	return g, nil
}

// WriteDOT serializes g as a digraph document ParseDOT reads back: one
// bare statement per node, then one "a -> b" statement per edge.
func WriteDOT(g *graph.Graph) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	for _, id := range g.Nodes() {
		fmt.Fprintf(&sb, "  %q;\n", id)
	}
	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "  %q -> %q;\n", e.Source, e.Target)
	}
	sb.WriteString("}\n")

	return []byte(sb.String()), nil
}

// parseDOTAttrs extracts the k=v pairs from a bracketed attribute list,
// tolerating missing brackets or malformed pairs by returning what it can.
func parseDOTAttrs(line string) map[string]string {
	open := strings.Index(line, "[")
	if open < 0 {
		return nil
	}
	body := line[open+1:]
	if end := strings.Index(body, "]"); end >= 0 {
		body = body[:end]
	}

	attrs := make(map[string]string)
	for _, pair := range strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ';' }) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := unquote(strings.TrimSpace(kv[0]))
		val := unquote(strings.TrimSpace(kv[1]))
		if key != "" {
			attrs[key] = val
		}
	}

	return attrs
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}
