// Package core: RoadGraph method implementations.
//
// All operations validate before they mutate, so a failed call leaves the
// graph unchanged. A single RWMutex guards the vertex arena; accessors that
// enumerate vertices or neighbors return sorted copies so iteration order is
// deterministic and reproducible across runs.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new junction with the given id and no neighbors.
// Returns ErrDuplicateVertex if the id is already present.
// Complexity: O(1) amortized.
func (g *RoadGraph) AddVertex(id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, id)
	}
	g.vertices[id] = &Vertex{ID: id, neighbors: make(map[int64]float64)}

	return nil
}

// HasVertex reports whether a junction with the given id exists.
// Complexity: O(1).
func (g *RoadGraph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// GetVertex returns the Vertex with the given junction id.
// Returns ErrVertexNotFound if the id is absent.
// Complexity: O(1).
func (g *RoadGraph) GetVertex(id int64) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return v, nil
}

// AddEdge connects junctions a and b with the given non-negative weight.
//
// For undirected graphs (the default) the symmetric adjacency entry b→a is
// inserted in the same critical section, so the symmetry invariant is
// maintained at insertion time and never re-derived per query. For directed
// graphs a single a→b entry is inserted.
//
// Returns ErrNegativeWeight if weight < 0, ErrVertexNotFound if either
// endpoint is absent. A repeated AddEdge for an existing pair overwrites the
// stored weight.
// Complexity: O(1).
func (g *RoadGraph) AddEdge(a, b int64, weight float64) error {
	// 1) Weight constraint: checked first so an invalid weight never touches
	//    the adjacency maps.
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Both endpoints must already exist; AddEdge never creates vertices.
	u, ok := g.vertices[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, a)
	}
	v, ok := g.vertices[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, b)
	}

	// 3) Insert forward entry; count a logical edge only on first insertion.
	if _, exists := u.neighbors[b]; !exists {
		g.edgeCount++
	}
	u.neighbors[b] = weight

	// 4) Mirror for undirected graphs (self-loops need no mirror).
	if !g.directed && a != b {
		v.neighbors[a] = weight
	}

	return nil
}

// Weight returns the weight of the edge from junction a to junction b.
// Returns ErrVertexNotFound if either id is absent, ErrEdgeNotFound if b is
// not adjacent to a.
// Complexity: O(1).
func (g *RoadGraph) Weight(a, b int64) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.vertices[a]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, a)
	}
	if _, ok = g.vertices[b]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, b)
	}
	w, ok := u.neighbors[b]
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, a, b)
	}

	return w, nil
}

// UpdateWeight replaces the weight of the existing edge a→b (and of the
// mirrored b→a entry for undirected graphs). The new weight must be
// non-negative and the edge must already exist; use AddEdge to create edges.
// Complexity: O(1).
func (g *RoadGraph) UpdateWeight(a, b int64, weight float64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.vertices[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, a)
	}
	v, ok := g.vertices[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, b)
	}
	if _, ok = u.neighbors[b]; !ok {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, a, b)
	}

	u.neighbors[b] = weight
	if !g.directed && a != b {
		v.neighbors[a] = weight
	}

	return nil
}

// Neighbors returns a copy of the adjacency map of the given junction:
// neighbor id → edge weight. Mutating the returned map does not affect the
// graph. Returns ErrVertexNotFound if the id is absent.
// Complexity: O(d), where d is the vertex degree.
func (g *RoadGraph) Neighbors(id int64) (map[int64]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make(map[int64]float64, len(v.neighbors))
	for nb, w := range v.neighbors {
		out[nb] = w
	}

	return out, nil
}

// NeighborIDs returns the ids adjacent to the given junction in ascending
// order, so relaxation order is deterministic for reproducible runs.
// Returns ErrVertexNotFound if the id is absent.
// Complexity: O(d log d).
func (g *RoadGraph) NeighborIDs(id int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	ids := make([]int64, 0, len(v.neighbors))
	for nb := range v.neighbors {
		ids = append(ids, nb)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// VertexIDs returns all junction ids in ascending order.
// Complexity: O(V log V).
func (g *RoadGraph) VertexIDs() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns the number of junctions. O(1).
func (g *RoadGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of logical edges: undirected edges are counted
// once, directed edges once per direction added. O(1).
func (g *RoadGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether edges are one-way.
func (g *RoadGraph) Directed() bool {
	return g.directed
}
