// White-box tests for the indexed min-heap: heap order and position-index
// exactness are asserted after every mutating operation, which is the
// contract the shortest-path engine leans on.
package minheap

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants asserts the two structural invariants:
//  1. heap order — every non-root slot orders ≥ its parent;
//  2. position index — pos maps the current contents exactly, no stale or
//     missing entries.
func checkInvariants(t *testing.T, h *Heap, dist map[int64]float64) {
	t.Helper()

	items := h.items
	for i := 1; i < len(items); i++ {
		parent := (i - 1) / 2
		require.GreaterOrEqual(t,
			h.priority(items[i], dist), h.priority(items[parent], dist),
			"heap order violated at slot %d (id %d) vs parent slot %d (id %d)",
			i, items[i], parent, items[parent])
	}

	pos := h.pos
	require.Len(t, pos, len(items), "position index size must match contents")
	for i, id := range items {
		got, ok := pos[id]
		require.True(t, ok, "id %d missing from position index", id)
		require.Equal(t, i, got, "stale position for id %d", id)
	}
}

func TestHeap_BuildEstablishesOrder(t *testing.T) {
	dist := map[int64]float64{1: 5, 2: 1, 3: 9, 4: 3, 5: 7}
	h := New([]int64{1, 2, 3, 4, 5}, dist)

	require.Equal(t, 5, h.Len())
	require.False(t, h.IsEmpty())
	checkInvariants(t, h, dist)
}

func TestHeap_ExtractMinDrainsAscending(t *testing.T) {
	dist := map[int64]float64{10: 4, 20: 2, 30: 8, 40: 1, 50: 6}
	h := New([]int64{10, 20, 30, 40, 50}, dist)

	var got []float64
	for !h.IsEmpty() {
		id, err := h.ExtractMin(dist)
		require.NoError(t, err)
		got = append(got, dist[id])
		checkInvariants(t, h, dist)
		require.False(t, h.Contains(id), "extracted id must leave the index")
	}

	require.True(t, sort.Float64sAreSorted(got), "extraction order %v not ascending", got)
}

func TestHeap_ExtractMinEmpty(t *testing.T) {
	h := New(nil, nil)
	_, err := h.ExtractMin(nil)
	require.ErrorIs(t, err, ErrEmptyHeap)
}

func TestHeap_DecreaseKeyRepositions(t *testing.T) {
	dist := map[int64]float64{1: 1, 2: 5, 3: 6, 4: 7, 5: 8}
	h := New([]int64{1, 2, 3, 4, 5}, dist)

	// Lower the largest key below the current minimum; it must surface first.
	dist[5] = 0
	require.NoError(t, h.DecreaseKey(5, dist))
	checkInvariants(t, h, dist)

	id, err := h.ExtractMin(dist)
	require.NoError(t, err)
	require.Equal(t, int64(5), id)
}

func TestHeap_DecreaseKeyAbsent(t *testing.T) {
	dist := map[int64]float64{1: 1, 2: 2}
	h := New([]int64{1, 2}, dist)

	// Never inserted.
	require.ErrorIs(t, h.DecreaseKey(99, dist), ErrNotInHeap)

	// Already extracted.
	id, err := h.ExtractMin(dist)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.ErrorIs(t, h.DecreaseKey(1, dist), ErrNotInHeap)

	// The failed calls must not have disturbed anything.
	checkInvariants(t, h, dist)
}

func TestHeap_MissingDistOrdersAsInfinity(t *testing.T) {
	// Only vertex 2 has a known distance; 1 and 3 order as +Inf and come out
	// after it regardless of build order.
	dist := map[int64]float64{2: 0}
	h := New([]int64{1, 2, 3}, dist)
	checkInvariants(t, h, dist)

	id, err := h.ExtractMin(dist)
	require.NoError(t, err)
	require.Equal(t, int64(2), id)
	require.True(t, math.IsInf(h.priority(1, dist), 1))
}

// TestHeap_RandomizedWorkload shakes the heap with the access pattern
// Dijkstra produces: interleaved extractions and key decreases, invariants
// checked after every step.
func TestHeap_RandomizedWorkload(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(1))

	dist := make(map[int64]float64, n)
	ids := make([]int64, 0, n)
	for i := int64(0); i < n; i++ {
		ids = append(ids, i)
		dist[i] = rng.Float64() * 1000
	}
	h := New(ids, dist)
	checkInvariants(t, h, dist)

	prevMin := math.Inf(-1)
	for !h.IsEmpty() {
		// Decrease a few random keys of ids still in the heap, never below
		// the last extracted minimum (Dijkstra's monotonicity).
		for k := 0; k < 3; k++ {
			id := ids[rng.Intn(n)]
			if !h.Contains(id) {
				continue
			}
			lowered := dist[id] * (0.5 + rng.Float64()*0.5)
			if lowered < prevMin {
				lowered = prevMin
			}
			dist[id] = lowered
			require.NoError(t, h.DecreaseKey(id, dist))
			checkInvariants(t, h, dist)
		}

		id, err := h.ExtractMin(dist)
		require.NoError(t, err)
		require.GreaterOrEqual(t, dist[id], prevMin,
			"extraction sequence must be non-decreasing")
		prevMin = dist[id]
		checkInvariants(t, h, dist)
	}
}
