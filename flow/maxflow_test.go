package flow_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridflow/flow"
	"github.com/katalvlaran/gridflow/grid"
)

// MaxFlowSuite groups tests for the top-level multi-terminal solve.
type MaxFlowSuite struct {
	suite.Suite
}

// TestSingleCorridorChain: one entrance, one exit, throughput throttled by
// the narrowest corridor; the exit's back-edge to the entrance is inert.
func (s *MaxFlowSuite) TestSingleCorridorChain() {
	m := grid.Matrix{
		{0, 7, 0, 0},
		{0, 0, 6, 0},
		{0, 0, 0, 8},
		{9, 0, 0, 0},
	}

	got, err := flow.MaxFlow(m, []int{0}, []int{3})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 6, got)
}

// TestMultiTerminals: two entrances feed two exits through two rooms.
func (s *MaxFlowSuite) TestMultiTerminals() {
	m := grid.Matrix{
		{0, 0, 4, 6, 0, 0},
		{0, 0, 5, 2, 0, 0},
		{0, 0, 0, 0, 4, 4},
		{0, 0, 0, 0, 6, 6},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}

	got, err := flow.MaxFlow(m, []int{0, 1}, []int{4, 5})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 16, got)
}

// TestBypassOnly: a direct entrance→exit edge is served entirely by the
// bypass term — the engine below runs zero augmenting iterations.
func (s *MaxFlowSuite) TestBypassOnly() {
	m := grid.Matrix{
		{0, 5},
		{0, 0},
	}

	got, err := flow.MaxFlow(m, []int{0}, []int{1})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 5, got)

	// Observable through the reduced instance: the engine has nothing to do.
	red, err := grid.Reduce(m, []int{0}, []int{1})
	require.NoError(s.T(), err)
	res, err := flow.EdmondsKarp(red.Matrix, red.Source, red.Sink)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Iterations)
	require.EqualValues(s.T(), 0, res.Value)
}

// TestBypassPlusInterior: direct and routed capacity add up exactly once.
func (s *MaxFlowSuite) TestBypassPlusInterior() {
	m := grid.Matrix{
		{0, 3, 2},
		{0, 0, 4},
		{0, 0, 0},
	}

	got, err := flow.MaxFlow(m, []int{0}, []int{2})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 5, got, "2 direct + min(3,4) routed")
}

// TestDinicEngine: the algorithm option changes the engine, not the answer.
func (s *MaxFlowSuite) TestDinicEngine() {
	m := grid.Matrix{
		{0, 0, 4, 6, 0, 0},
		{0, 0, 5, 2, 0, 0},
		{0, 0, 0, 0, 4, 4},
		{0, 0, 0, 0, 6, 6},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}

	got, err := flow.MaxFlow(m, []int{0, 1}, []int{4, 5}, flow.WithAlgorithm(flow.AlgorithmDinic))
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 16, got)
}

// TestValidation: violations surface before any computation.
func (s *MaxFlowSuite) TestValidation() {
	m := grid.New(4)

	_, err := flow.MaxFlow(m, nil, []int{3})
	require.ErrorIs(s.T(), err, grid.ErrNoSources)

	_, err = flow.MaxFlow(m, []int{0}, nil)
	require.ErrorIs(s.T(), err, grid.ErrNoSinks)

	_, err = flow.MaxFlow(m, []int{0}, []int{0})
	require.ErrorIs(s.T(), err, grid.ErrTerminalOverlap)

	_, err = flow.MaxFlow(m, []int{0}, []int{9})
	require.ErrorIs(s.T(), err, grid.ErrTerminalOutOfRange)

	_, err = flow.MaxFlow(grid.Matrix{{0, 1}, {0}}, []int{0}, []int{1})
	require.ErrorIs(s.T(), err, grid.ErrNotSquare)
}

func TestMaxFlowSuite(t *testing.T) {
	suite.Run(t, new(MaxFlowSuite))
}

// sumOutOfSources bounds any feasible flow from above.
func sumOutOfSources(m grid.Matrix, sources []int) int64 {
	var total int64
	for _, s := range sources {
		for v := range m[s] {
			total += m[s][v]
		}
	}

	return total
}

// bruteForceMinCut enumerates every partition with all sources on one side
// and all sinks on the other, returning the cheapest crossing capacity.
// Exponential, so only for small n.
func bruteForceMinCut(m grid.Matrix, sources, sinks []int) int64 {
	n := len(m)
	terminal := make([]bool, n)
	for _, s := range sources {
		terminal[s] = true
	}
	for _, t := range sinks {
		terminal[t] = true
	}
	var interior []int
	for v := 0; v < n; v++ {
		if !terminal[v] {
			interior = append(interior, v)
		}
	}

	best := int64(-1)
	for mask := 0; mask < 1<<len(interior); mask++ {
		side := make([]bool, n)
		for _, s := range sources {
			side[s] = true
		}
		for i, v := range interior {
			if mask&(1<<i) != 0 {
				side[v] = true
			}
		}
		var cut int64
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if side[u] && !side[v] {
					cut += m[u][v]
				}
			}
		}
		if best < 0 || cut < best {
			best = cut
		}
	}

	return best
}

// TestMaxFlowMinCutTheorem: on random small instances the solve must equal
// the brute-force minimum cut, and stay within [0, capacity out of sources].
func TestMaxFlowMinCutTheorem(t *testing.T) {
	sources := []int{0, 1}
	sinks := []int{5, 6}
	for seed := int64(1); seed <= 30; seed++ {
		m := randomMatrix(7, 0.4, 9, seed)

		got, err := flow.MaxFlow(m, sources, sinks)
		require.NoError(t, err)

		require.GreaterOrEqual(t, got, int64(0))
		require.LessOrEqual(t, got, sumOutOfSources(m, sources))
		require.Equal(t, bruteForceMinCut(m, sources, sinks), got,
			"max-flow ≠ min-cut on seed %d", seed)
	}
}

// TestMonotonicity: widening any single corridor never lowers throughput.
func TestMonotonicity(t *testing.T) {
	sources := []int{0}
	sinks := []int{7}
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		m := randomMatrix(8, 0.3, 9, int64(trial)+100)
		base, err := flow.MaxFlow(m, sources, sinks)
		require.NoError(t, err)

		u, v := r.Intn(8), r.Intn(8)
		wider := m.Clone()
		wider[u][v] += r.Int63n(10) + 1

		got, err := flow.MaxFlow(wider, sources, sinks)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, base,
			"widening %d→%d lowered the result on trial %d", u, v, trial)
	}
}

// TestConcurrentSolves: independent solves share no state and may run in
// parallel without coordination.
func TestConcurrentSolves(t *testing.T) {
	m1 := grid.Matrix{
		{0, 7, 0, 0},
		{0, 0, 6, 0},
		{0, 0, 0, 8},
		{9, 0, 0, 0},
	}
	m2 := grid.Matrix{
		{0, 0, 4, 6, 0, 0},
		{0, 0, 5, 2, 0, 0},
		{0, 0, 0, 0, 4, 4},
		{0, 0, 0, 0, 6, 6},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}

	var wg sync.WaitGroup
	results := make([]int64, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				results[i], err = flow.MaxFlow(m1, []int{0}, []int{3})
			} else {
				results[i], err = flow.MaxFlow(m2, []int{0, 1}, []int{4, 5})
			}
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if i%2 == 0 {
			require.EqualValues(t, 6, got)
		} else {
			require.EqualValues(t, 16, got)
		}
	}
}
