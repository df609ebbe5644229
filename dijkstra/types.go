// Package dijkstra: result type, configuration options, and sentinel errors
// for the shortest-path engine.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the path finder.
var (
	// ErrNilGraph indicates a nil *core.RoadGraph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the start or end junction id is not
	// present in the graph. Raised before any heap work begins.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")
)

// Result is the outcome of a point-to-point query.
//
// "No path" is a normal result, not an error: Reachable is false, Weight and
// Path are zero. When Reachable is true, Path holds the junction ids from
// start to end inclusive and Weight the sum of edge weights along it.
type Result struct {
	// Reachable reports whether end can be reached from start.
	Reachable bool

	// Weight is the total path weight (expected travel time for graphs
	// weighted by time). Zero for the trivial start == end path.
	Weight float64

	// Path is the ordered junction sequence from start to end inclusive.
	Path []int64
}

// Options configures a single shortest-path run.
//
// MaxDistance – vertices whose distance would exceed this cap are not
// finalized; defaults to +Inf (no cap).
// FullScan    – disables the early exit once the target is finalized, so
// every reachable vertex gets a final distance. Distances always runs with
// FullScan; FindOptimalPath defaults to early exit.
type Options struct {
	MaxDistance float64
	FullScan    bool
}

// Option is a functional option for configuring a run.
type Option func(*Options)

// WithMaxDistance caps exploration: vertices farther than max from the
// source are left unvisited. Panics on a negative cap, which is a
// configuration bug rather than a runtime condition.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic("dijkstra: MaxDistance must be non-negative")
		}
		o.MaxDistance = max
	}
}

// WithFullScan disables early termination at the target, visiting every
// reachable vertex. FindOptimalPath returns the same route either way; the
// flag only trades work for a complete distance map.
func WithFullScan() Option {
	return func(o *Options) { o.FullScan = true }
}

// DefaultOptions returns the defaults: no distance cap, early exit enabled.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		FullScan:    false,
	}
}
