package pathfinding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/pathfinding"
)

func TestBuild_Empty(t *testing.T) {
	g := pathfinding.Build(nil)
	require.NotNil(t, g)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Nodes())
}

func TestBuild_Symmetric(t *testing.T) {
	edges := []domain.Edge{
		{Source: "Library", Destination: "Cafeteria", Distance: 120},
		{Source: "Cafeteria", Destination: "Gym", Distance: 80.5},
		{Source: "Gym", Destination: "Hostel", Distance: 0},
	}
	g := pathfinding.Build(edges)

	for _, e := range edges {
		w, ok := g.Weight(e.Source, e.Destination)
		require.True(t, ok, "%s→%s missing", e.Source, e.Destination)
		assert.Equal(t, e.Distance, w)

		w, ok = g.Weight(e.Destination, e.Source)
		require.True(t, ok, "%s→%s missing", e.Destination, e.Source)
		assert.Equal(t, e.Distance, w)
	}
	assert.Equal(t, []string{"Cafeteria", "Gym", "Hostel", "Library"}, g.Nodes())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuild_LastWriteWins(t *testing.T) {
	g := pathfinding.Build([]domain.Edge{
		{Source: "A", Destination: "B", Distance: 4},
		{Source: "B", Destination: "A", Distance: 9},
		{Source: "A", Destination: "B", Distance: 7},
	})

	w, _ := g.Weight("A", "B")
	assert.Equal(t, 7.0, w)
	w, _ = g.Weight("B", "A")
	assert.Equal(t, 7.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_Neighbors(t *testing.T) {
	g := pathfinding.Build([]domain.Edge{
		{Source: "A", Destination: "C", Distance: 1},
		{Source: "A", Destination: "B", Distance: 1},
	})
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, []string{"A"}, g.Neighbors("B"))
	assert.Nil(t, g.Neighbors("Z"))
	assert.True(t, g.HasNode("C"))
	assert.False(t, g.HasNode("Z"))
}
