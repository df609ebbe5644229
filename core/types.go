// Package core defines the central RoadGraph and Vertex types used by the
// routing engine, together with the construction-time error taxonomy.
//
// A RoadGraph models a road network: vertices are junctions identified by a
// unique int64 id, edges are road segments weighted by a non-negative cost
// (expected travel time, length, or any other non-negative metric). Vertices
// are stored in a single arena map keyed by id, so lookup is O(1) and all
// auxiliary structures (distance maps, heaps, predecessor maps) reference
// vertices by id only, never by pointer.
//
// This file declares Vertex, RoadGraph, GraphOption, sentinel errors, and the
// NewRoadGraph constructor.
//
// Errors:
//
//	ErrDuplicateVertex - AddVertex called with an id already present.
//	ErrVertexNotFound  - operation referenced an unknown junction id.
//	ErrNegativeWeight  - AddEdge/UpdateWeight given a weight < 0.
//	ErrEdgeNotFound    - Weight/UpdateWeight referenced a missing edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for road-graph construction and lookup.
var (
	// ErrDuplicateVertex indicates AddVertex was called with an id that is
	// already present in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrVertexNotFound indicates an operation referenced a junction id that
	// does not exist in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	// Shortest-path optimality depends on non-negative weights, so negatives
	// are rejected at construction time, never detected mid-query.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrEdgeNotFound indicates the referenced edge does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a junction in the road network.
//
// ID uniquely identifies the junction within its RoadGraph and is immutable
// after creation. The adjacency map from neighbor id to edge weight is owned
// by the graph; callers read it through Neighbors and NeighborIDs.
type Vertex struct {
	// ID is the unique junction identifier.
	ID int64

	// neighbors maps an adjacent junction id to the edge weight.
	neighbors map[int64]float64
}

// Degree returns the number of junctions adjacent to v.
func (v *Vertex) Degree() int {
	return len(v.neighbors)
}

// GraphOption configures behavior of a RoadGraph before creation.
type GraphOption func(g *RoadGraph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
// The default is undirected: AddEdge inserts the symmetric adjacency entry.
func WithDirected(directed bool) GraphOption {
	return func(g *RoadGraph) { g.directed = directed }
}

// RoadGraph is the in-memory road network.
//
// It owns every Vertex by value in a single arena map keyed by junction id,
// satisfying the invariant vertices[i].ID == i for every entry. The graph is
// read-mostly: it is built once by a loader and then queried. Concurrent
// read-only queries are safe; mutation overlapping a query requires external
// synchronization.
type RoadGraph struct {
	mu sync.RWMutex // guards vertices and edgeCount

	directed bool // one-way edges when true

	vertices  map[int64]*Vertex // junction id → Vertex
	edgeCount int               // logical edges (undirected counted once)
}

// NewRoadGraph creates an empty RoadGraph with the given options.
// By default the graph is undirected.
// Complexity: O(1).
func NewRoadGraph(opts ...GraphOption) *RoadGraph {
	g := &RoadGraph{
		vertices: make(map[int64]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
