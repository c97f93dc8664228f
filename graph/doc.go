// Package graph implements the core data model shared by every layout
// engine: Node, Edge, Graph, and the tagged AttrValue metadata type.
//
// What:
//   - Node: opaque ID, optional Position, string/number/bool attribute map.
//   - Edge: opaque ID, Source/Target node IDs, attribute map. Dangling
//     endpoints (naming a node that does not exist) are tolerated.
//   - Graph: ID -> Node and ID -> Edge maps with deterministic, sorted
//     enumeration and independent read/write locking per catalog.
//
// Why:
//   - Every one of the six layout algorithms (forcelayout, circular,
//     concentric, layered) is written against this single representation,
//     so engines never need to know how a graph was built or will be
//     persisted.
//
// Complexity:
//   - AddNode/AddEdge/HasNode: O(1) amortized.
//   - Nodes/Edges: O(N log N) / O(E log E) for the sort.
//   - Degree/IncidentEdges: O(E).
package graph
