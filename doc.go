// Package roadroute computes minimum-expected-travel-time routes between
// junctions of a road network.
//
// The module is organized as small focused packages:
//
//	core/     — RoadGraph and Vertex: the junction arena with weighted
//	            adjacency, O(1) lookup by int64 junction id
//	minheap/  — indexed binary min-heap with decrease-key, ordered by an
//	            external mutable distance map
//	dijkstra/ — the shortest-path engine: FindOptimalPath and Distances
//	loader/   — CSV road-segment ingestion (weight = length / speed)
//	cmd/routed — HTTP service exposing /route and /health
//
// Quick example:
//
//	g := core.NewRoadGraph()
//	_ = g.AddVertex(1)
//	_ = g.AddVertex(2)
//	_ = g.AddVertex(3)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(2, 3, 3)
//	_ = g.AddEdge(1, 3, 10)
//
//	res, err := dijkstra.FindOptimalPath(g, 1, 3)
//	// res.Weight == 5, res.Path == [1 2 3]
//
// Weights are non-negative float64 values; what they mean (hours, meters) is
// up to the loader. Negative weights are rejected at construction time, and
// an unreachable destination is a normal "no path" result rather than an
// error.
package roadroute
