package bfs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/graphlayout/bfs"
	"github.com/katalvlaran/graphlayout/graph"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3x3 grid (9 nodes).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	// Build a 3x3 grid: nodes "i_j" for 0 <= i,j < 3
	g := graph.New()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				addEdge(g, fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				addEdge(g, fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path in a larger network of 11 nodes.
// Two competing routes exist from "A" to "K": one of length 4, another length 3.
func ExampleBFS_shortestPathNetwork() {
	nodes := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
	g := graph.New()
	for _, u := range nodes {
		_ = g.AddNode(u)
	}
	// Route1: A-B-C-D-K (4 hops)
	addEdge(g, "A", "B")
	addEdge(g, "B", "C")
	addEdge(g, "C", "D")
	addEdge(g, "D", "K")
	// Route2: A-E-F-K (3 hops)
	addEdge(g, "A", "E")
	addEdge(g, "E", "F")
	addEdge(g, "F", "K")
	// Some extra branches to other nodes
	addEdge(g, "C", "G")
	addEdge(g, "G", "H")
	addEdge(g, "D", "I")
	addEdge(g, "I", "J")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleBFS_depthLimitOnChain shows applying WithMaxDepth to a linear chain of 10 nodes.
// With depth=2 we only visit the first three nodes.
func ExampleBFS_depthLimitOnChain() {
	g := graph.New()
	for i := 0; i < 9; i++ {
		u := fmt.Sprintf("v%d", i)
		v := fmt.Sprintf("v%d", i+1)
		addEdge(g, u, v)
	}

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}

// ExampleBFS_filterNeighbor demonstrates filtering a specific edge on a 5-node chain.
func ExampleBFS_filterNeighbor() {
	g := graph.New()
	addEdge(g, "U", "V")
	addEdge(g, "V", "W")
	addEdge(g, "W", "X")
	addEdge(g, "X", "Y")

	// Block traversal back to W from X
	filter := func(curr, nbr string) bool {
		return !(curr == "X" && nbr == "W")
	}

	res, err := bfs.BFS(g, "U", bfs.WithFilterNeighbor(filter))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [U V W X Y]
}

// ExampleBFS_hooksAndCancellation demonstrates OnEnqueue, OnDequeue, OnVisit hooks
// alongside context cancellation on a 7-node chain.
func ExampleBFS_hooksAndCancellation() {
	g := graph.New()
	for i := 0; i < 6; i++ {
		addEdge(g, fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()

	var enqSeq, deqSeq, visSeq []string

	hookVisit := func(id string, d int) error {
		visSeq = append(visSeq, fmt.Sprintf("V[%s@%d]", id, d))
		if d == 4 {
			cancel() // force mid-traversal cancellation
		}
		return nil
	}

	_, err := bfs.BFS(
		g, "n0",
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id string, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%s@%d]", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deqSeq = append(deqSeq, fmt.Sprintf("D[%s@%d]", id, d)) }),
		bfs.WithOnVisit(hookVisit),
	)

	fmt.Println("error:", err) // we ignore the exact cancellation timing for the example output
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Dequeued:", deqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E[n0@0] E[n1@1] E[n2@2] E[n3@3] E[n4@4]]
	// Dequeued: [D[n0@0] D[n1@1] D[n2@2] D[n3@3] D[n4@4]]
	// Visited:  [V[n0@0] V[n1@1] V[n2@2] V[n3@3] V[n4@4]]
}
