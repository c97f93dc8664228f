// Package layered implements the two Sugiyama-style layout algorithms
// (KLay, Dagre): rank assignment by longest path, cycle breaking by
// edge reversal, crossing minimization by adjacent-layer swap sweeps,
// and direction-aware coordinate assignment.
//
// Both engines share this pipeline; they differ only in their default
// spacing, in Dagre's rank-direction axis and ranker choice (KLay always
// ranks by plain longest path), and in whether cycle breaking
// runs unconditionally (KLay) or is gated by an option (Dagre.Acyclic).
package layered

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphlayout/graph"
)

// ErrUnsupportedRanker is returned when a ranker option names anything
// other than "network-simplex", "tight-tree", or "longest-path".
var ErrUnsupportedRanker = errors.New("layered: unsupported ranker value")

// params collects the tunables the shared pipeline needs.
type params struct {
	nodeSeparation float64
	rankSeparation float64
	direction      string // "TB" | "BT" | "LR" | "RL"
	ranker         string // "network-simplex" | "tight-tree" | "longest-path"
	breakCycles    bool
}

type edgeRef struct {
	id     string
	source string
	target string
}

// run executes the shared layered pipeline: break cycles, assign ranks,
// minimize crossings, assign coordinates.
func run(g *graph.Graph, p params) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	if p.breakCycles {
		breakCyclesDFS(g)
	}

	layers, err := assignLayers(g, nodes, p.ranker)
	if err != nil {
		return err
	}

	minimizeCrossings(layers, g)

	return assignCoordinates(g, layers, p)
}

// assignLayers dispatches on the ranker name. Every ranker starts from the
// longest-path layering; network-simplex refines it by hill-climbing
// toward shorter edges, and tight-tree compacts it by dropping empty
// layers.
func assignLayers(g *graph.Graph, nodes []string, ranker string) ([][]string, error) {
	layers, err := assignLayersLongestPath(g, nodes)
	if err != nil {
		return nil, err
	}

	switch ranker {
	case "longest-path", "":
		return layers, nil
	case "network-simplex":
		return refineByEdgeLength(g, layers), nil
	case "tight-tree":
		return dropEmptyLayers(layers), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRanker, ranker)
	}
}

// outgoing returns, in deterministic (edge-ID) order, the edges whose
// Source is id.
func outgoing(g *graph.Graph, id string) []edgeRef {
	incident := g.IncidentEdges(id)
	out := make([]edgeRef, 0, len(incident))
	for _, e := range incident {
		if e.Source == id {
			out = append(out, edgeRef{id: e.ID, source: e.Source, target: e.Target})
		}
	}

	return out
}

// breakCyclesDFS reverses back edges found by a DFS over nodes in ID
// order, turning the graph acyclic for ranking purposes. Self-loops are
// left untouched; they carry no rank constraint.
func breakCyclesDFS(g *graph.Graph) {
	nodes := g.Nodes()
	visited := make(map[string]bool, len(nodes))
	onStack := make(map[string]bool, len(nodes))

	var visit func(id string)
	visit = func(id string) {
		visited[id] = true
		onStack[id] = true
		for _, e := range outgoing(g, id) {
			if e.target == id {
				continue
			}
			if onStack[e.target] {
				_ = g.ReverseEdge(e.id)
				continue
			}
			if !visited[e.target] {
				visit(e.target)
			}
		}
		onStack[id] = false
	}

	for _, id := range nodes {
		if !visited[id] {
			visit(id)
		}
	}
}

// assignLayersLongestPath ranks nodes by the longest path from any source
// (indegree-0 node) using Kahn's algorithm with longest-path relaxation.
// Nodes left in a residual cycle (e.g. when the caller skipped cycle
// breaking) are appended one layer below the deepest assigned layer so
// the pipeline always terminates with every node placed.
func assignLayersLongestPath(g *graph.Graph, nodes []string) ([][]string, error) {
	indegree := make(map[string]int, len(nodes))
	isNode := make(map[string]bool, len(nodes))
	for _, id := range nodes {
		indegree[id] = 0
		isNode[id] = true
	}

	successors := make(map[string][]string, len(nodes))
	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok || e.IsSelfLoop() {
			continue
		}
		if !isNode[e.Source] || !isNode[e.Target] {
			continue
		}
		indegree[e.Target]++
		successors[e.Source] = append(successors[e.Source], e.Target)
	}
	for src := range successors {
		sort.Strings(successors[src])
	}

	layer := make(map[string]int, len(nodes))
	remaining := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))
	for id, d := range indegree {
		remaining[id] = d
		if d == 0 {
			queue = append(queue, id)
		}
	}

	processed := make(map[string]bool, len(nodes))
	for len(queue) > 0 {
		sort.Strings(queue)
		id := queue[0]
		queue = queue[1:]
		if processed[id] {
			continue
		}
		processed[id] = true
		for _, succ := range successors[id] {
			if layer[succ] < layer[id]+1 {
				layer[succ] = layer[id] + 1
			}
			remaining[succ]--
			if remaining[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	// Nodes trapped in a residual cycle share one final extra layer below
	// the deepest assigned one.
	leftover := -1
	for _, id := range nodes {
		if processed[id] {
			continue
		}
		if leftover < 0 {
			for _, assigned := range nodes {
				if processed[assigned] && layer[assigned]+1 > leftover {
					leftover = layer[assigned] + 1
				}
			}
			if leftover < 0 {
				leftover = 0
			}
		}
		layer[id] = leftover
		processed[id] = true
	}

	numLayers := 0
	for _, l := range layer {
		if l+1 > numLayers {
			numLayers = l + 1
		}
	}
	layers := make([][]string, numLayers)
	for _, id := range nodes {
		l := layer[id]
		layers[l] = append(layers[l], id)
	}
	for i := range layers {
		sort.Strings(layers[i])
	}

	return layers, nil
}

// refineByEdgeLength hill-climbs the layering toward shorter edges: each
// node in turn is tentatively moved one layer up or down, and the move is
// kept when the total absolute rank difference across its incident edges
// strictly decreases. Sweeps repeat until one full pass commits nothing.
// Ranks never go below zero, and empty layers left behind by a committed
// move are dropped at the end.
func refineByEdgeLength(g *graph.Graph, layers [][]string) [][]string {
	rank := make(map[string]int)
	for i, ids := range layers {
		for _, id := range ids {
			rank[id] = i
		}
	}

	type link struct{ a, b string }
	incident := make(map[string][]link)
	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok || e.IsSelfLoop() {
			continue
		}
		if _, ok := rank[e.Source]; !ok {
			continue
		}
		if _, ok := rank[e.Target]; !ok {
			continue
		}
		l := link{e.Source, e.Target}
		incident[e.Source] = append(incident[e.Source], l)
		incident[e.Target] = append(incident[e.Target], l)
	}

	cost := func(id string, r int) int {
		total := 0
		for _, l := range incident[id] {
			ra, rb := rank[l.a], rank[l.b]
			if l.a == id {
				ra = r
			} else {
				rb = r
			}
			if d := ra - rb; d < 0 {
				total -= d
			} else {
				total += d
			}
		}

		return total
	}

	// legal reports whether moving id to r keeps every incident forward
	// edge strictly forward; without this, hill-climbing would collapse a
	// chain's edges down to zero length. Edges that are already backward
	// (a residual cycle the caller chose not to break) don't constrain.
	legal := func(id string, r int) bool {
		for _, l := range incident[id] {
			if rank[l.a] >= rank[l.b] {
				continue
			}
			ra, rb := rank[l.a], rank[l.b]
			if l.a == id {
				ra = r
			} else {
				rb = r
			}
			if ra >= rb {
				return false
			}
		}

		return true
	}

	nodes := make([]string, 0, len(rank))
	for id := range rank {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)

	maxRank := len(layers) - 1
	for {
		improved := false
		for _, id := range nodes {
			r := rank[id]
			current := cost(id, r)
			for _, candidate := range []int{r - 1, r + 1} {
				if candidate < 0 || candidate > maxRank || !legal(id, candidate) {
					continue
				}
				if cost(id, candidate) < current {
					rank[id] = candidate
					improved = true
					break
				}
			}
		}
		if !improved {
			break
		}
	}

	rebuilt := make([][]string, maxRank+1)
	for _, id := range nodes {
		rebuilt[rank[id]] = append(rebuilt[rank[id]], id)
	}
	for i := range rebuilt {
		sort.Strings(rebuilt[i])
	}

	return dropEmptyLayers(rebuilt)
}

// dropEmptyLayers compacts a layering by removing layers with no nodes.
func dropEmptyLayers(layers [][]string) [][]string {
	out := make([][]string, 0, len(layers))
	for _, ids := range layers {
		if len(ids) > 0 {
			out = append(out, ids)
		}
	}

	return out
}

// minimizeCrossings repeatedly sweeps every adjacent layer pair (k, k+1),
// reordering layer k+1 by adjacent swaps, until a full pass over
// every pair makes no further change anywhere in the layering. Because a
// swap is only ever kept when it strictly reduces the pair's crossing
// count, the whole procedure is a monotone descent: once it stops, a
// second call finds the same fixed point, so re-running it is a no-op.
func minimizeCrossings(layers [][]string, g *graph.Graph) {
	if len(layers) < 2 {
		return
	}

	for {
		changedThisPass := false
		for k := 0; k < len(layers)-1; k++ {
			if sweepAdjacentSwaps(layers[k], layers[k+1], g) {
				changedThisPass = true
			}
		}
		if !changedThisPass {
			return
		}
	}
}

// sweepAdjacentSwaps repeatedly tries swapping each adjacent pair of
// positions in lower, keeping the swap only when it strictly reduces
// countCrossings(upper, lower); it continues sweeping left to right until
// one full pass produces no improvement. Reports
// whether any swap was kept.
func sweepAdjacentSwaps(upper, lower []string, g *graph.Graph) bool {
	anyChange := false
	for {
		improved := false
		for j := 0; j+1 < len(lower); j++ {
			before := countCrossings(upper, lower, g)
			lower[j], lower[j+1] = lower[j+1], lower[j]
			after := countCrossings(upper, lower, g)
			if after < before {
				improved = true
				anyChange = true
			} else {
				lower[j], lower[j+1] = lower[j+1], lower[j]
			}
		}
		if !improved {
			return anyChange
		}
	}
}

// countCrossings counts, among edges running from layer1 (upper) to
// layer2 (lower), the pairs whose endpoint orderings are inverted between
// the two layers — the classic adjacent-layer crossing count. Only edges
// whose Source sits in layer1 and whose Target sits in layer2 participate.
func countCrossings(layer1, layer2 []string, g *graph.Graph) int {
	pos1 := make(map[string]int, len(layer1))
	for i, id := range layer1 {
		pos1[id] = i
	}
	pos2 := make(map[string]int, len(layer2))
	for i, id := range layer2 {
		pos2[id] = i
	}

	type end struct{ a, b int }
	var ends []end
	for _, id := range layer1 {
		i := pos1[id]
		for _, e := range outgoing(g, id) {
			if e.target == id {
				continue
			}
			if j, ok := pos2[e.target]; ok {
				ends = append(ends, end{i, j})
			}
		}
	}

	crossings := 0
	for i := 0; i < len(ends); i++ {
		for j := i + 1; j < len(ends); j++ {
			// Edges sharing an upper or lower endpoint never cross.
			if (ends[i].a < ends[j].a && ends[i].b > ends[j].b) ||
				(ends[i].a > ends[j].a && ends[i].b < ends[j].b) {
				crossings++
			}
		}
	}

	return crossings
}

// assignCoordinates places each layer's nodes centered on the cross-axis
// and spaced along the rank axis according to direction: the rank axis is
// horizontal for "LR"/"RL" and runs from the last layer for "BT"/"RL".
func assignCoordinates(g *graph.Graph, layers [][]string, p params) error {
	horizontal := p.direction == "LR" || p.direction == "RL"
	reversed := p.direction == "BT" || p.direction == "RL"

	for layerIdx, ids := range layers {
		rankIdx := layerIdx
		if reversed {
			rankIdx = len(layers) - 1 - layerIdx
		}
		cross := float64(rankIdx) * p.rankSeparation

		n := len(ids)
		for col, id := range ids {
			along := (float64(col) - float64(n-1)/2) * p.nodeSeparation

			var x, y float64
			if horizontal {
				x, y = cross, along
			} else {
				x, y = along, cross
			}

			if err := g.SetPosition(id, x, y); err != nil {
				return err
			}
		}
	}

	return nil
}
