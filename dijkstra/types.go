// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over a graph.Graph.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes. Edge weight is the Euclidean distance between its
// two endpoints' current positions (dangling or unpositioned edges weigh
// 1), so this package answers "how far, along the drawn edges, is node X
// from node Y" — the basis of metrics.ComputeShortestPathSpreadStats'
// diameter-style layout diagnostic.
//
// Complexity:
//
//	- Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   - Each node is extracted from the priority queue at most once (V extracts).
//	   - Each edge relaxation may push into the priority queue (up to E pushes).
//	   - Each heap operation (push/pop) costs O(log V) or O(log (V+E)), simplified to O(log V).
//	- Space: O(V + E)
//	   - O(V) to store distance and predecessor maps.
//	   - O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	- Source:      ID of the starting node (must be non-empty and present in the graph).
//	- ReturnPath:  if true, return the predecessor map for path reconstruction.
//	- MaxDistance: optional cap on distances to explore; nodes beyond this are skipped.
//
// Errors (sentinel):
//
//	- ErrEmptySource    if the provided source ID is empty.
//	- ErrNilGraph       if the provided graph pointer is nil.
//	- ErrNodeNotFound   if the source node does not exist in the graph.
//	- ErrBadMaxDistance if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the specified source node does not exist
	// in the provided graph.
	ErrNodeNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      string  // The ID of the source node
	ReturnPath  bool    // Whether to return the predecessor map
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting node ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics immediately, carrying ErrBadMaxDistance, if max is negative.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source node ID.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxFloat64,
	}
}
