package flow_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridflow/flow"
	"github.com/katalvlaran/gridflow/grid"
)

// TestMinCutChain: the saturated middle corridor is the whole cut.
func TestMinCutChain(t *testing.T) {
	m := grid.Matrix{
		{0, 7, 0, 0},
		{0, 0, 6, 0},
		{0, 0, 0, 8},
		{9, 0, 0, 0},
	}

	cut, err := flow.MinCut(m, []int{0}, []int{3})
	require.NoError(t, err)

	require.EqualValues(t, 6, cut.Value)
	require.Equal(t, []int{0, 1}, cut.SourceSide)
	require.Equal(t, []int{2, 3}, cut.SinkSide)
	require.Equal(t, []flow.CutEdge{{From: 1, To: 2, Capacity: 6}}, cut.Edges)
}

// TestMinCutMultiTerminal: sources stay source-side, sinks sink-side, and
// the crossing capacity equals the solve value.
func TestMinCutMultiTerminal(t *testing.T) {
	m := grid.Matrix{
		{0, 0, 4, 6, 0, 0},
		{0, 0, 5, 2, 0, 0},
		{0, 0, 0, 0, 4, 4},
		{0, 0, 0, 0, 6, 6},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
	sources, sinks := []int{0, 1}, []int{4, 5}

	cut, err := flow.MinCut(m, sources, sinks)
	require.NoError(t, err)

	value, err := flow.MaxFlow(m, sources, sinks)
	require.NoError(t, err)
	require.Equal(t, value, cut.Value)

	for _, s := range sources {
		require.Contains(t, cut.SourceSide, s)
	}
	for _, s := range sinks {
		require.Contains(t, cut.SinkSide, s)
	}
}

// TestMinCutProperties: on random instances the two sides partition the
// node set, crossing edges match the sides, and the cut value equals the
// max-flow value — under both engines.
func TestMinCutProperties(t *testing.T) {
	sources, sinks := []int{0}, []int{6}
	algorithms := []flow.Algorithm{flow.AlgorithmEdmondsKarp, flow.AlgorithmDinic}

	for seed := int64(1); seed <= 20; seed++ {
		m := randomMatrix(7, 0.4, 9, seed)

		value, err := flow.MaxFlow(m, sources, sinks)
		require.NoError(t, err)

		for _, algo := range algorithms {
			cut, err := flow.MinCut(m, sources, sinks, flow.WithAlgorithm(algo))
			require.NoError(t, err)

			require.Equal(t, value, cut.Value, "seed %d algo %d", seed, algo)

			// Sides form an ascending partition of [0, N).
			all := append(append([]int{}, cut.SourceSide...), cut.SinkSide...)
			sort.Ints(all)
			require.Len(t, all, len(m))
			for i, v := range all {
				require.Equal(t, i, v)
			}
			require.IsIncreasing(t, cut.SourceSide)
			require.IsIncreasing(t, cut.SinkSide)

			// Every listed edge crosses source-side → sink-side with its
			// original capacity; their sum is the cut value.
			sinkSide := make(map[int]bool, len(cut.SinkSide))
			for _, v := range cut.SinkSide {
				sinkSide[v] = true
			}
			var total int64
			for _, e := range cut.Edges {
				require.False(t, sinkSide[e.From])
				require.True(t, sinkSide[e.To])
				require.Equal(t, m[e.From][e.To], e.Capacity)
				total += e.Capacity
			}
			require.Equal(t, cut.Value, total)
		}
	}
}
