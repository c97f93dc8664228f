// Package store provides an in-memory GraphStore: get/save/delete/list
// operations over named graphs, guarded by a single RWMutex since the
// whole catalog (not per-graph state) is what concurrent requests
// contend over.
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphlayout/graph"
)

// Kind classifies a Store error the way a REST handler needs to pick a
// status code, without parsing error strings.
type Kind int

const (
	// KindNotFound means the requested graph ID does not exist.
	KindNotFound Kind = iota
	// KindInternal means an unexpected failure occurred.
	KindInternal
	// KindInvalidData means the caller's graph ID or payload was invalid.
	KindInvalidData
)

// Error is a Store error tagged with a Kind so handlers can branch on it
// via errors.As instead of string matching.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return "store: " + e.Msg }

func newError(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

// ErrEmptyID is a sentinel for Get/Save/Delete calls with an empty ID.
var ErrEmptyID = errors.New("store: graph ID is empty")

// Store is an in-memory catalog of named graphs.
type Store struct {
	mu     sync.RWMutex
	graphs map[string]*graph.Graph
}

// New creates an empty Store.
func New() *Store {
	return &Store{graphs: make(map[string]*graph.Graph)}
}

// Get returns the graph registered under id.
func (s *Store) Get(id string) (*graph.Graph, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.graphs[id]
	if !ok {
		return nil, newError(KindNotFound, "graph not found: "+id)
	}

	return g, nil
}

// Save registers g under id, replacing any existing graph with that ID.
func (s *Store) Save(id string, g *graph.Graph) error {
	if id == "" {
		return ErrEmptyID
	}
	if g == nil {
		return newError(KindInvalidData, "graph is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.graphs[id] = g

	return nil
}

// SaveNew registers g under a freshly generated UUID and returns that ID,
// for callers (the upload/save API) that don't name their own graph ID.
func (s *Store) SaveNew(g *graph.Graph) (string, error) {
	id := uuid.NewString()
	if err := s.Save(id, g); err != nil {
		return "", err
	}

	return id, nil
}

// Delete removes the graph registered under id.
func (s *Store) Delete(id string) error {
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[id]; !ok {
		return newError(KindNotFound, "graph not found: "+id)
	}
	delete(s.graphs, id)

	return nil
}

// List returns every registered graph ID, sorted ascending.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.graphs))
	for id := range s.graphs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
