// Package viewer renders a laid-out graph to SVG using ajstarks/svgo, so a
// caller can preview layout output without a browser-side renderer.
package viewer

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/graphlayout/graph"
)

// ErrNoPositions is returned when g has no positioned nodes to render.
var ErrNoPositions = errors.New("viewer: graph has no positioned nodes")

// Options configures the rendered SVG canvas and node/edge styling.
type Options struct {
	Margin     float64
	NodeRadius int
	NodeColor  string
	EdgeColor  string
	ShowLabels bool
}

// DefaultOptions returns sensible rendering defaults.
func DefaultOptions() Options {
	return Options{
		Margin:     40,
		NodeRadius: 8,
		NodeColor:  "steelblue",
		EdgeColor:  "#999",
		ShowLabels: true,
	}
}

// Render writes g as an SVG document to w, translating node positions
// (without scaling) onto a canvas sized to their bounding box plus
// Options.Margin of padding on each side.
// Returns ErrNoPositions if no node carries a set position.
func Render(w io.Writer, g *graph.Graph, opts Options) error {
	nodes := g.Nodes()
	type pt struct{ x, y float64 }
	positions := make(map[string]pt, len(nodes))

	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	first := true
	for _, id := range nodes {
		p, ok := g.Position(id)
		if !ok || !p.Set {
			continue
		}
		positions[id] = pt{p.X, p.Y}
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if first {
		return ErrNoPositions
	}

	width := int(maxX-minX+2*opts.Margin) + 1
	height := int(maxY-minY+2*opts.Margin) + 1
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	toCanvas := func(p pt) (int, int) {
		return int(p.x - minX + opts.Margin), int(p.y - minY + opts.Margin)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)

	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		ps, okS := positions[e.Source]
		pt2, okT := positions[e.Target]
		if !okS || !okT {
			continue
		}
		x1, y1 := toCanvas(ps)
		x2, y2 := toCanvas(pt2)
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:%s;stroke-width:1", opts.EdgeColor))
	}

	for _, id := range nodes {
		p, ok := positions[id]
		if !ok {
			continue
		}
		x, y := toCanvas(p)
		canvas.Circle(x, y, opts.NodeRadius, fmt.Sprintf("fill:%s", opts.NodeColor))
		if opts.ShowLabels {
			canvas.Text(x+opts.NodeRadius+2, y, id, "font-size:10px;font-family:sans-serif")
		}
	}

	canvas.End()

	return nil
}
