// Package core provides the in-memory road-network model consumed by the
// routing engine: junction vertices stored in an id-keyed arena and weighted
// adjacency between them.
//
// What lives here:
//
//   - Vertex: a junction with an immutable int64 id and a weighted adjacency
//     map to neighboring junctions.
//   - RoadGraph: owner of all vertices, indexed by id for O(1) retrieval,
//     configured directed or undirected at construction.
//
// Construction contract:
//
//   - AddVertex(id) fails with ErrDuplicateVertex on a repeated id.
//   - AddEdge(a, b, w) requires both endpoints to exist and w ≥ 0; for
//     undirected graphs the symmetric entry is installed in the same step,
//     so edge symmetry is an insertion-time invariant.
//   - UpdateWeight(a, b, w) rewrites an existing edge (and its mirror),
//     letting a loader refresh expected travel times without rebuilding.
//
// Failed operations never leave partial state behind: every method validates
// its inputs before touching the arena.
//
// Concurrency: mutation is internally serialized, and concurrent read-only
// access is safe. Mutating the graph while a shortest-path query is running
// is undefined; callers that refresh weights live must wrap queries and
// updates in their own read-write lock.
//
// Determinism: NeighborIDs and VertexIDs return ids in ascending order, which
// keeps relaxation order, and therefore tie-breaking between equal-cost
// paths, reproducible across runs.
package core
