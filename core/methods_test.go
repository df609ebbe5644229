// Package core_test verifies RoadGraph construction contracts:
// vertex lifecycle, edge insertion symmetry, weight validation, and the
// deterministic ordering guarantees of the enumeration accessors.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velora-dev/roadroute/core"
)

// TestRoadGraph_AddVertex verifies insertion, duplicate rejection, and O(1)
// membership checks.
func TestRoadGraph_AddVertex(t *testing.T) {
	g := core.NewRoadGraph()

	// First insertion succeeds.
	require.NoError(t, g.AddVertex(1))
	require.True(t, g.HasVertex(1))
	require.Equal(t, 1, g.VertexCount())

	// Re-inserting the same junction id must fail with ErrDuplicateVertex
	// and leave the graph unchanged.
	err := g.AddVertex(1)
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
	require.Equal(t, 1, g.VertexCount())

	// Unrelated ids remain absent.
	require.False(t, g.HasVertex(2))
}

// TestRoadGraph_GetVertex verifies O(1) retrieval and the not-found sentinel.
func TestRoadGraph_GetVertex(t *testing.T) {
	g := core.NewRoadGraph()
	require.NoError(t, g.AddVertex(42))

	v, err := g.GetVertex(42)
	require.NoError(t, err)
	require.Equal(t, int64(42), v.ID)
	require.Equal(t, 0, v.Degree())

	_, err = g.GetVertex(7)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestRoadGraph_AddEdge_Undirected verifies the symmetry invariant: inserting
// a—b installs both adjacency entries with the same weight in one step.
func TestRoadGraph_AddEdge_Undirected(t *testing.T) {
	g := core.NewRoadGraph()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	require.NoError(t, g.AddEdge(1, 2, 2.5))

	// Both directions carry the same weight.
	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2.5, w)
	w, err = g.Weight(2, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, w)

	// One logical edge.
	require.Equal(t, 1, g.EdgeCount())
}

// TestRoadGraph_AddEdge_Directed verifies one-way insertion: the reverse
// direction stays absent.
func TestRoadGraph_AddEdge_Directed(t *testing.T) {
	g := core.NewRoadGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	require.NoError(t, g.AddEdge(1, 2, 4))

	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	require.Equal(t, float64(4), w)

	_, err = g.Weight(2, 1)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestRoadGraph_AddEdge_Validation verifies the construction error taxonomy:
// negative weights and unknown endpoints are rejected before any mutation.
func TestRoadGraph_AddEdge_Validation(t *testing.T) {
	g := core.NewRoadGraph()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	// Negative weight is rejected at construction, never mid-query.
	err := g.AddEdge(1, 2, -1)
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	require.Equal(t, 0, g.EdgeCount())

	// Unknown endpoints (either side).
	require.ErrorIs(t, g.AddEdge(1, 99, 1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.AddEdge(99, 2, 1), core.ErrVertexNotFound)

	// No partial state leaked by the failed calls.
	require.Equal(t, 0, g.EdgeCount())
	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Empty(t, nbs)
}

// TestRoadGraph_UpdateWeight verifies in-place weight refresh, including the
// mirrored entry of undirected graphs, and rejection of negatives and
// missing edges.
func TestRoadGraph_UpdateWeight(t *testing.T) {
	g := core.NewRoadGraph()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))
	require.NoError(t, g.AddEdge(1, 2, 3))

	require.NoError(t, g.UpdateWeight(1, 2, 7))
	w, err := g.Weight(2, 1)
	require.NoError(t, err)
	require.Equal(t, float64(7), w)

	// Still one logical edge after the rewrite.
	require.Equal(t, 1, g.EdgeCount())

	require.ErrorIs(t, g.UpdateWeight(1, 2, -7), core.ErrNegativeWeight)
	require.ErrorIs(t, g.UpdateWeight(2, 99, 1), core.ErrVertexNotFound)

	g2 := core.NewRoadGraph()
	require.NoError(t, g2.AddVertex(1))
	require.NoError(t, g2.AddVertex(2))
	require.ErrorIs(t, g2.UpdateWeight(1, 2, 1), core.ErrEdgeNotFound)
}

// TestRoadGraph_DeterministicOrder verifies that VertexIDs and NeighborIDs
// return ascending ids regardless of insertion order. Relaxation order in the
// path finder depends on this.
func TestRoadGraph_DeterministicOrder(t *testing.T) {
	g := core.NewRoadGraph()
	for _, id := range []int64{30, 10, 20, 40} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge(20, 40, 1))
	require.NoError(t, g.AddEdge(20, 10, 1))
	require.NoError(t, g.AddEdge(20, 30, 1))

	require.Equal(t, []int64{10, 20, 30, 40}, g.VertexIDs())

	nbs, err := g.NeighborIDs(20)
	require.NoError(t, err)
	require.Equal(t, []int64{10, 30, 40}, nbs)
}

// TestRoadGraph_NeighborsCopy verifies that the adjacency map returned by
// Neighbors is a copy: callers cannot corrupt the graph through it.
func TestRoadGraph_NeighborsCopy(t *testing.T) {
	g := core.NewRoadGraph()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))
	require.NoError(t, g.AddEdge(1, 2, 5))

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	nbs[2] = -100 // mutate the copy

	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	require.Equal(t, float64(5), w)
}

// TestRoadGraph_SelfLoop verifies that a self-loop on a directed graph stores
// a single entry and does not double its weight through mirroring.
func TestRoadGraph_SelfLoop(t *testing.T) {
	g := core.NewRoadGraph()
	require.NoError(t, g.AddVertex(9))
	require.NoError(t, g.AddEdge(9, 9, 2))

	w, err := g.Weight(9, 9)
	require.NoError(t, err)
	require.Equal(t, float64(2), w)
	require.Equal(t, 1, g.EdgeCount())
}
