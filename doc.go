// Package graphlayout computes node positions for a graph using one of six
// layout algorithms: fCoSE, CoSE-Bilkent, CiSE, Concentric, KLay, and
// Dagre.
//
// A graph is built with the graph package (nodes, edges, and arbitrary
// attributes), a concrete options type is constructed from layoutopts, and
// layout.Apply dispatches to the matching engine, writing each node's
// computed Position back onto the graph in place.
//
// Under the hood:
//
//	graph/       — Node, Edge, Graph: the shared in-memory data model
//	layoutopts/  — per-algorithm option types and their defaults
//	layout/      — the Apply dispatcher and capability traits
//	forcelayout/ — fCoSE and CoSE-Bilkent (spring-embedder force layouts)
//	circular/    — CiSE circular layout
//	concentric/  — concentric-ring layout
//	layered/     — KLay and Dagre (Sugiyama-style layered layouts)
//	bfs/         — breadth-first traversal used by metrics' component count
//	dijkstra/    — single-source shortest paths weighted by drawn edge length
//	metrics/     — layout-quality statistics and Prometheus collectors
package graphlayout
