package forcelayout

import (
	"math"

	"github.com/katalvlaran/graphlayout/graph"
)

// The phase methods below expose one force-accumulation step of the shared
// loop so each phase can be exercised in isolation: the returned buffer is
// parallel to g.Nodes() and holds the net (x, y) force on each node given
// the positions currently stored in the graph. Nodes without a set
// position contribute nothing and receive no force.

// CalcRepulsion implements layout.ForceDirected for Fcose.
func (f *Fcose) CalcRepulsion(g *graph.Graph) [][2]float64 {
	return calcRepulsion(g, f.opts.NodeRepulsion)
}

// CalcAttraction implements layout.ForceDirected for Fcose.
func (f *Fcose) CalcAttraction(g *graph.Graph) [][2]float64 {
	return calcAttraction(g, f.opts.IdealEdgeLength)
}

// ApplyForces implements layout.ForceDirected for Fcose.
func (f *Fcose) ApplyForces(g *graph.Graph, forces [][2]float64) error {
	return applyForces(g, forces)
}

// CalcRepulsion implements layout.ForceDirected for CoseBilkent.
func (c *CoseBilkent) CalcRepulsion(g *graph.Graph) [][2]float64 {
	return calcRepulsion(g, c.opts.NodeRepulsion)
}

// CalcAttraction implements layout.ForceDirected for CoseBilkent.
func (c *CoseBilkent) CalcAttraction(g *graph.Graph) [][2]float64 {
	return calcAttraction(g, c.opts.IdealEdgeLength)
}

// ApplyForces implements layout.ForceDirected for CoseBilkent.
func (c *CoseBilkent) ApplyForces(g *graph.Graph, forces [][2]float64) error {
	return applyForces(g, forces)
}

// setPositions snapshots the set positions of every node, keyed by the
// node's index in the g.Nodes() enumeration.
func setPositions(g *graph.Graph, nodes []string) map[int][2]float64 {
	pos := make(map[int][2]float64, len(nodes))
	for i, id := range nodes {
		if p, ok := g.Position(id); ok && p.Set {
			pos[i] = [2]float64{p.X, p.Y}
		}
	}

	return pos
}

func calcRepulsion(g *graph.Graph, nodeRepulsion float64) [][2]float64 {
	nodes := g.Nodes()
	pos := setPositions(g, nodes)
	forces := make([][2]float64, len(nodes))
	for i := range nodes {
		pi, ok := pos[i]
		if !ok {
			continue
		}
		for j := i + 1; j < len(nodes); j++ {
			pj, ok := pos[j]
			if !ok {
				continue
			}
			ddx, ddy := pi[0]-pj[0], pi[1]-pj[1]
			d2 := ddx*ddx + ddy*ddy
			if d2 < guardDistance {
				continue
			}
			d := math.Sqrt(d2)
			force := nodeRepulsion / d2
			ux, uy := ddx/d, ddy/d
			forces[i] = add(forces[i], ux*force, uy*force)
			forces[j] = add(forces[j], -ux*force, -uy*force)
		}
	}

	return forces
}

func calcAttraction(g *graph.Graph, idealEdgeLength float64) [][2]float64 {
	nodes := g.Nodes()
	pos := setPositions(g, nodes)
	index := make(map[string]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	forces := make([][2]float64, len(nodes))
	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok || e.IsSelfLoop() {
			continue
		}
		si, ok := index[e.Source]
		if !ok {
			continue
		}
		ti, ok := index[e.Target]
		if !ok {
			continue
		}
		ps, ok := pos[si]
		if !ok {
			continue
		}
		pt, ok := pos[ti]
		if !ok {
			continue
		}
		ddx, ddy := pt[0]-ps[0], pt[1]-ps[1]
		d := math.Hypot(ddx, ddy)
		if d < guardDistance {
			continue
		}
		force := (d - idealEdgeLength) / 3
		ux, uy := ddx/d, ddy/d
		forces[si] = add(forces[si], ux*force, uy*force)
		forces[ti] = add(forces[ti], -ux*force, -uy*force)
	}

	return forces
}

func applyForces(g *graph.Graph, forces [][2]float64) error {
	nodes := g.Nodes()
	for i, id := range nodes {
		if i >= len(forces) {
			break
		}
		p, ok := g.Position(id)
		if !ok || !p.Set {
			continue
		}
		f := forces[i]
		if err := g.SetPosition(id, p.X+f[0]*damping, p.Y+f[1]*damping); err != nil {
			return err
		}
	}

	return nil
}
