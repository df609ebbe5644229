// Package dijkstra provides the point-to-point shortest-path engine for road
// networks: Dijkstra's algorithm over a core.RoadGraph, driven by an indexed
// min-heap with a true decrease-key operation.
//
// Overview:
//
//   - FindOptimalPath(g, start, end) returns the minimum total weight from
//     start to end together with the junction sequence realizing it, or a
//     "no path" result when end is unreachable.
//   - Distances(g, source) returns the full single-source distance and
//     predecessor maps.
//
// Contract:
//
//   - Both endpoints must exist in the graph (ErrVertexNotFound otherwise,
//     raised before any heap work).
//   - start == end yields (0, [start]) immediately.
//   - An unreachable end is a Result with Reachable == false and a nil
//     error: absence of a route is a property of the network, not a failure.
//   - Weights must be non-negative; core.RoadGraph already enforces this at
//     construction, which is what makes extracted distances final.
//
// Determinism:
//
//   - Neighbors relax in ascending id order, so repeated runs over the same
//     graph produce identical paths, including tie-breaks between
//     equal-weight routes.
//
// Concurrency:
//
//   - A query is a sequential in-memory computation with no blocking points.
//     The distance map, predecessor map, and heap are private to one
//     invocation; concurrent queries over the same read-only graph are safe.
//     Mutating the graph mid-query is undefined — callers that refresh
//     weights live must synchronize externally.
//
// Performance:
//
//   - Time O((V + E) log V): V extractions, at most E decrease-key calls,
//     every heap operation O(log V). The position index inside the heap is
//     what keeps a decrease-key logarithmic; without it each update would
//     need an O(n) scan.
//   - Space O(V): the heap holds each vertex at most once — decrease-key
//     repositions entries instead of pushing duplicates.
package dijkstra
