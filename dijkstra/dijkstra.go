// Package dijkstra implements the shortest-path engine over road graphs:
// Dijkstra's algorithm with an indexed min-heap and true decrease-key.
//
// The engine computes the minimum total weight from a start junction to an
// end junction together with the junction sequence realizing it. Distances
// are float64 with +Inf as the "unknown" sentinel, so no overflow can occur
// from repeated relaxation and unreachable vertices compare greater than any
// finite path sum.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted exactly once: V extractions.
//   - Each edge relaxation performs at most one DecreaseKey: E updates.
//   - Every heap operation costs O(log V); the heap holds at most V entries
//     because decrease-key repositions in place instead of pushing
//     duplicates.
//   - Space: O(V) for the heap, distance map, and predecessor map.
//
// Implementation notes:
//
//   - Vertices already extracted are finalized (non-negative weights make
//     their distance optimal) and are skipped during relaxation, so
//     DecreaseKey is never invoked on an id absent from the heap.
//   - Neighbor relaxation iterates ids in ascending order, keeping runs
//     reproducible; tie-breaking between equal-cost routes is therefore
//     deterministic too.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/velora-dev/roadroute/core"
	"github.com/velora-dev/roadroute/minheap"
)

// FindOptimalPath computes the minimum-weight route from start to end.
//
// Returns:
//
//   - Result{Reachable: true, Weight, Path} when a route exists; Path runs
//     from start to end inclusive and Weight is the sum of its edge weights.
//   - Result{Reachable: false} when end cannot be reached — a valid graph
//     property, not an error.
//   - ErrNilGraph / ErrVertexNotFound on invalid inputs, raised before any
//     heap work begins.
//
// start == end short-circuits to (0, [start]) without building a heap.
//
// Complexity: O((V + E) log V), early-exiting once end is finalized unless
// WithFullScan is set.
func FindOptimalPath(g *core.RoadGraph, start, end int64, opts ...Option) (Result, error) {
	// 1) Apply functional options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any algorithm state is allocated.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return Result{}, fmt.Errorf("%w: start %d", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return Result{}, fmt.Errorf("%w: end %d", ErrVertexNotFound, end)
	}

	// 3) Trivial route: a junction is always reachable from itself at cost 0.
	if start == end {
		return Result{Reachable: true, Weight: 0, Path: []int64{start}}, nil
	}

	// 4) Run the algorithm proper.
	r := newRunner(g, start, end, cfg)
	if err := r.process(); err != nil {
		return Result{}, err
	}

	// 5) Unreachable target: report "no path", never an infinite weight.
	d, ok := r.dist[end]
	if !ok || math.IsInf(d, 1) {
		return Result{Reachable: false}, nil
	}

	// 6) Reconstruct the route by walking predecessors back from end.
	return Result{Reachable: true, Weight: d, Path: r.rebuild()}, nil
}

// Distances computes single-source shortest distances and predecessors from
// source to every vertex of g.
//
// Returns dist keyed by junction id (+Inf for unreachable vertices) and prev
// mapping each reached vertex, source excluded, to its predecessor on the
// best route. Unreached vertices are absent from prev.
//
// Complexity: O((V + E) log V); always scans the full reachable set.
func Distances(g *core.RoadGraph, source int64, opts ...Option) (map[int64]float64, map[int64]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.FullScan = true // a distance map is only useful complete

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	// end is unused under FullScan; pass source to disable the early exit.
	r := newRunner(g, source, source, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one query: the distance and predecessor
// maps it owns, the visited set, and the heap over the remaining vertices.
// Nothing here is shared across queries.
type runner struct {
	g       *core.RoadGraph
	start   int64
	end     int64
	options Options

	dist    map[int64]float64 // junction id → best known distance from start
	prev    map[int64]int64   // junction id → predecessor on best route
	visited map[int64]bool    // finalized vertices
	heap    *minheap.Heap
}

// newRunner initializes dist (+Inf everywhere except dist[start] = 0), an
// empty predecessor map, and the heap over the full vertex set keyed by dist.
func newRunner(g *core.RoadGraph, start, end int64, cfg Options) *runner {
	ids := g.VertexIDs()

	dist := make(map[int64]float64, len(ids))
	for _, id := range ids {
		dist[id] = math.Inf(1)
	}
	dist[start] = 0

	return &runner{
		g:       g,
		start:   start,
		end:     end,
		options: cfg,
		dist:    dist,
		prev:    make(map[int64]int64, len(ids)),
		visited: make(map[int64]bool, len(ids)),
		heap:    minheap.New(ids, dist),
	}
}

// process is the main loop: extract the closest unfinalized vertex, mark it
// visited, and relax its outgoing edges, until the heap empties, the target
// is finalized (unless FullScan), or the distance cap is crossed.
//
// Once a vertex is extracted its distance is final and never re-increased;
// that is the Dijkstra optimality guarantee under non-negative weights.
func (r *runner) process() error {
	for !r.heap.IsEmpty() {
		cur, err := r.heap.ExtractMin(r.dist)
		if err != nil {
			// Unreachable: the loop condition guards emptiness.
			return err
		}

		d := r.dist[cur]

		// Everything left in the heap is at least this far away. Crossing
		// the cap or running out of reachable vertices ends the scan.
		if math.IsInf(d, 1) || d > r.options.MaxDistance {
			break
		}

		r.visited[cur] = true

		// Early exit: the target's distance is final the moment it leaves
		// the heap.
		if !r.options.FullScan && cur == r.end {
			break
		}

		if err := r.relax(cur); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of cur and
// repositions updated neighbors in the heap. Neighbors already finalized are
// skipped, which keeps DecreaseKey calls within its precondition (the id is
// still in the heap).
func (r *runner) relax(cur int64) error {
	nbs, err := r.g.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", cur, err)
	}
	order, err := r.g.NeighborIDs(cur)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbor order of %d: %w", cur, err)
	}

	base := r.dist[cur]
	for _, nb := range order {
		if r.visited[nb] {
			continue
		}
		alt := base + nbs[nb]
		// Beyond the exploration cap: leave the neighbor unknown rather
		// than record a distance that would never be finalized.
		if alt > r.options.MaxDistance {
			continue
		}
		if alt >= r.dist[nb] {
			continue
		}
		// Strict improvement: record it and restore heap order.
		r.dist[nb] = alt
		r.prev[nb] = cur
		if err := r.heap.DecreaseKey(nb, r.dist); err != nil {
			// Unreachable by construction; surfaced rather than swallowed
			// because it would mean the position index is corrupt.
			return fmt.Errorf("dijkstra: decrease-key for %d: %w", nb, err)
		}
	}

	return nil
}

// rebuild walks prev from end back to start and reverses the sequence.
// Callers only invoke it after confirming end was reached.
func (r *runner) rebuild() []int64 {
	path := []int64{r.end}
	for cur := r.end; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	// Reverse in place: collected target-first, reported source-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
