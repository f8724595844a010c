package flow

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/gridflow/grid"
)

// EdmondsKarp computes the maximum flow from source→sink over the capacity
// matrix m using the Edmonds–Karp algorithm (BFS for shortest augmenting
// paths).
//
// It returns a Result carrying:
//   - Value: total flow, computed as the net amount crossing into the sink
//   - Flow: the final skew-symmetric flow matrix
//   - Iterations: the number of augmenting paths applied
//
// m is never mutated. Termination is guaranteed: each augmentation raises
// the total flow by at least one unit, and BFS shortest-path selection
// bounds the iteration count polynomially in V and E regardless of how
// large individual capacities are.
//
// Complexity: O(V · E²) time; O(V²) memory for the flow matrix.
func EdmondsKarp(m grid.Matrix, source, sink int, opts ...Option) (*Result, error) {
	// 1) Fold options and surface any recorded violation.
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Validate the matrix and the endpoints before any computation.
	if err = grid.Validate(m); err != nil {
		return nil, err
	}
	n := m.Order()
	if err = validateEndpoints(n, source, sink); err != nil {
		return nil, err
	}

	// 3) Per-solve state: zeroed flow matrix plus a reusable BFS arena.
	res := &Result{Flow: newFlowMatrix(n)}
	arena := newSearchArena(n)

	// 4) Main loop: augment along shortest residual paths until none remain.
	for {
		path := arena.augmentingPath(m, res.Flow, source, sink)
		if path == nil {
			break
		}
		b := bottleneck(m, res.Flow, path)
		augment(res.Flow, path, b)
		res.Iterations++
		o.Logger.Debug("augmenting path applied",
			zap.Ints("path", path),
			zap.Int64("bottleneck", b),
			zap.Int("iteration", res.Iterations),
		)
	}

	// 5) Total flow equals the net flow crossing into the sink.
	for u := 0; u < n; u++ {
		res.Value += res.Flow[u][sink]
	}
	o.Logger.Debug("edmonds-karp converged",
		zap.Int64("value", res.Value),
		zap.Int("iterations", res.Iterations),
	)

	return res, nil
}

// searchArena holds the per-node BFS state for one solve, reused across
// iterations so each search allocates nothing but the returned path.
type searchArena struct {
	parent  []int  // parent[v] = predecessor of v in the BFS tree, -1 if unset
	visited []bool // one marker per node per search, not per partial path
	queue   []int  // slice-backed FIFO frontier
}

func newSearchArena(n int) *searchArena {
	return &searchArena{
		parent:  make([]int, n),
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
	}
}

// augmentingPath finds the fewest-edge path source→sink whose every hop has
// strictly positive residual capacity, or returns nil when no such path
// exists — the normal termination condition, not a failure.
//
// Neighbors are scanned in ascending node index, so ties between
// equal-length paths break deterministically. Each node is labeled at most
// once per search, bounding one invocation by O(V + E); the path is
// materialized from parent pointers only once the sink is reached.
func (a *searchArena) augmentingPath(m grid.Matrix, flow [][]int64, source, sink int) []int {
	n := len(m)
	for v := 0; v < n; v++ {
		a.parent[v] = -1
		a.visited[v] = false
	}
	a.queue = append(a.queue[:0], source)
	a.visited[source] = true

	for head := 0; head < len(a.queue); head++ {
		u := a.queue[head]
		for v := 0; v < n; v++ {
			if a.visited[v] || m[u][v]-flow[u][v] <= 0 {
				continue
			}
			a.visited[v] = true
			a.parent[v] = u
			if v == sink {
				return a.reconstruct(source, sink)
			}
			a.queue = append(a.queue, v)
		}
	}

	return nil
}

// reconstruct walks parent pointers sink→source, then reverses in place.
func (a *searchArena) reconstruct(source, sink int) []int {
	path := []int{sink}
	for cur := sink; cur != source; {
		cur = a.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// bottleneck returns the minimum residual capacity along path.
func bottleneck(m grid.Matrix, flow [][]int64, path []int) int64 {
	b := m[path[0]][path[1]] - flow[path[0]][path[1]]
	for i := 1; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		if r := m[u][v] - flow[u][v]; r < b {
			b = r
		}
	}

	return b
}

// augment pushes b units along path, preserving skew symmetry: every
// forward residual shrinks by b while the paired reverse residual grows by
// b, which is what lets later iterations cancel flow sent the wrong way.
// The bottleneck edge's residual becomes exactly zero; none goes negative.
func augment(flow [][]int64, path []int, b int64) {
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		flow[u][v] += b
		flow[v][u] -= b
	}
}
