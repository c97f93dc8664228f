// Package forcelayout implements the two spring-embedder algorithms
// (fCoSE, CoSE-Bilkent): repulsion between every node pair,
// attraction along edges, damped displacement, and — for fCoSE only — a
// post-pass that nudges overlapping nodes apart.
//
// Both engines share one iteration loop (run); they differ only in
// whether the overlap-removal pass runs and in their default iteration
// count, which is why CoseBilkent wraps the same loop with that pass
// disabled rather than duplicating it.
package forcelayout

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/rng"
)

// params collects the tunables the shared loop needs, independent of
// which options type the caller started from.
type params struct {
	nodeRepulsion   float64
	idealEdgeLength float64
	nodeOverlap     float64
	iterations      int
	seed            int64
	removeOverlap   bool
}

const (
	// damping shrinks net displacement each iteration so the system settles
	// rather than oscillating.
	damping = 0.1
	// initRadius bounds the random disc nodes are scattered into before the
	// first iteration.
	initRadius = 100.0
	// guardDistance is the numerical floor below which a node pair or edge
	// contributes no force at all: dividing by a near-zero distance would
	// blow the displacement up to NaN/Inf territory.
	guardDistance = 0.1

	// overlapRadius (r) is the uniform node radius the overlap-removal pass
	// assumes when deriving min_distance = 2r·(1 − overlap/100).
	overlapRadius = 10.0
	// overlapMaxPasses bounds the overlap-removal sweep.
	overlapMaxPasses = 50
)

// run executes the shared force-directed loop over every node in g,
// writing final positions back via SetPosition. Nodes without an existing
// position are scattered uniformly within a disc of radius initRadius;
// nodes that already carry a position (Pos.Set) keep it as their starting
// point instead, so a caller may pre-seed a partial layout.
func run(g *graph.Graph, p params) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	r := rng.New(p.seed)
	pos := make(map[string][2]float64, len(nodes))
	for _, id := range nodes {
		if cur, ok := g.Position(id); ok && cur.Set {
			pos[id] = [2]float64{cur.X, cur.Y}
			continue
		}
		dx, dy := rng.UnitDirection(r)
		radius := r.Float64() * initRadius
		pos[id] = [2]float64{dx * radius, dy * radius}
	}

	edges := g.Edges()
	type pair struct{ a, b string }
	links := make([]pair, 0, len(edges))
	for _, eid := range edges {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		if e.IsSelfLoop() {
			continue
		}
		if _, ok := pos[e.Source]; !ok {
			continue
		}
		if _, ok := pos[e.Target]; !ok {
			continue
		}
		links = append(links, pair{e.Source, e.Target})
	}

	for iter := 0; iter < p.iterations; iter++ {
		disp := make(map[string][2]float64, len(nodes))

		// Repulsion: every unordered pair pushes apart with C/d².
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				a, b := nodes[i], nodes[j]
				pa, pb := pos[a], pos[b]
				ddx, ddy := pa[0]-pb[0], pa[1]-pb[1]
				d2 := ddx*ddx + ddy*ddy
				if d2 < guardDistance {
					continue
				}
				d := math.Sqrt(d2)
				force := p.nodeRepulsion / d2
				ux, uy := ddx/d, ddy/d
				disp[a] = add(disp[a], ux*force, uy*force)
				disp[b] = add(disp[b], -ux*force, -uy*force)
			}
		}

		// Attraction: each edge behaves as a spring toward idealEdgeLength.
		for _, e := range links {
			pa, pb := pos[e.a], pos[e.b]
			ddx, ddy := pb[0]-pa[0], pb[1]-pa[1]
			d := math.Hypot(ddx, ddy)
			if d < guardDistance {
				continue
			}
			force := (d - p.idealEdgeLength) / 3
			ux, uy := ddx/d, ddy/d
			disp[e.a] = add(disp[e.a], ux*force, uy*force)
			disp[e.b] = add(disp[e.b], -ux*force, -uy*force)
		}

		for _, id := range nodes {
			d := disp[id]
			cur := pos[id]
			pos[id] = [2]float64{cur[0] + d[0]*damping, cur[1] + d[1]*damping}
		}
	}

	if p.removeOverlap {
		removeOverlap(nodes, pos, p.nodeOverlap, rng.Derive(r, 1))
	}

	for _, id := range nodes {
		v := pos[id]
		if err := g.SetPosition(id, v[0], v[1]); err != nil {
			return err
		}
	}

	return nil
}

func add(v [2]float64, dx, dy float64) [2]float64 {
	return [2]float64{v[0] + dx, v[1] + dy}
}

// removeOverlap nudges pairs of nodes closer than the minimum spacing
// apart along the connecting line, half the deficit each, for up to
// overlapMaxPasses sweeps — stopping early once a full sweep finds no
// overlapping pair. overlapPercent is the NodeOverlap option (0-100);
// minimum spacing = 2r·(1 − overlapPercent/100). Coincident pairs are
// pushed in a random unit direction instead.
func removeOverlap(nodes []string, pos map[string][2]float64, overlapPercent float64, r *rand.Rand) {
	minSpacing := 2 * overlapRadius * (1 - overlapPercent/100)
	if minSpacing <= 0 {
		return
	}

	for pass := 0; pass < overlapMaxPasses; pass++ {
		found := false
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				a, b := nodes[i], nodes[j]
				pa, pb := pos[a], pos[b]
				ddx, ddy := pb[0]-pa[0], pb[1]-pa[1]
				d := math.Hypot(ddx, ddy)
				if d >= minSpacing {
					continue
				}
				found = true

				var ux, uy float64
				if d < guardDistance {
					ux, uy = rng.UnitDirection(r)
				} else {
					ux, uy = ddx/d, ddy/d
				}
				push := (minSpacing - d) / 2
				pos[a] = add(pos[a], -ux*push, -uy*push)
				pos[b] = add(pos[b], ux*push, uy*push)
			}
		}
		if !found {
			break
		}
	}
}
