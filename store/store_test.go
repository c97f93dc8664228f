package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/store"
)

func TestSaveGetDelete(t *testing.T) {
	s := store.New()
	g := graph.New()
	require.NoError(t, g.AddNode("a"))

	require.NoError(t, s.Save("g1", g))

	got, err := s.Get("g1")
	require.NoError(t, err)
	require.Same(t, g, got)

	require.NoError(t, s.Delete("g1"))

	_, err = s.Get("g1")
	require.Error(t, err)
	var sErr *store.Error
	require.ErrorAs(t, err, &sErr)
	require.Equal(t, store.KindNotFound, sErr.Kind)
}

func TestListSorted(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Save("zeta", graph.New()))
	require.NoError(t, s.Save("alpha", graph.New()))

	require.Equal(t, []string{"alpha", "zeta"}, s.List())
}

func TestSaveNewGeneratesUniqueIDs(t *testing.T) {
	s := store.New()

	id1, err := s.SaveNew(graph.New())
	require.NoError(t, err)
	id2, err := s.SaveNew(graph.New())
	require.NoError(t, err)

	require.NotEmpty(t, id1)
	require.NotEqual(t, id1, id2)
	require.ElementsMatch(t, []string{id1, id2}, s.List())
}

func TestEmptyIDRejected(t *testing.T) {
	s := store.New()
	require.ErrorIs(t, s.Save("", graph.New()), store.ErrEmptyID)
	_, err := s.Get("")
	require.ErrorIs(t, err, store.ErrEmptyID)
	require.ErrorIs(t, s.Delete(""), store.ErrEmptyID)
}
