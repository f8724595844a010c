package flow

import (
	"github.com/katalvlaran/gridflow/grid"
)

// MinCut computes a minimum cut separating sources from sinks, reported in
// original node indices.
//
// It reduces the instance via grid.Reduce, runs the configured engine to
// convergence, then walks the residual graph breadth-first from the
// super-source: interior nodes still reachable through positive residual
// capacity join the source side, the rest join the sink side. Sources are
// always on the source side and sinks on the sink side. Edges lists every
// positive-capacity original edge crossing the partition; by the
// max-flow/min-cut theorem their total equals the MaxFlow value for the
// same instance.
//
// Complexity: one full solve plus O(N²) for the crossing-edge scan.
func MinCut(m grid.Matrix, sources, sinks []int, opts ...Option) (*Cut, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	red, err := grid.Reduce(m, sources, sinks)
	if err != nil {
		return nil, err
	}

	res, err := runEngine(o, red.Matrix, red.Source, red.Sink, opts)
	if err != nil {
		return nil, err
	}

	// Residual reachability from the super-source marks the source side.
	// No sink can be reachable once the engine has converged — otherwise an
	// augmenting path would still exist.
	reach := residualReachable(red.Matrix, res.Flow, red.Source)

	n := len(m)
	onSourceSide := make([]bool, n)
	for _, s := range sources {
		onSourceSide[s] = true
	}
	for i, orig := range red.Nodes {
		if reach[i+1] {
			onSourceSide[orig] = true
		}
	}

	cut := &Cut{}
	for v := 0; v < n; v++ {
		if onSourceSide[v] {
			cut.SourceSide = append(cut.SourceSide, v)
		} else {
			cut.SinkSide = append(cut.SinkSide, v)
		}
	}
	for _, u := range cut.SourceSide {
		for _, v := range cut.SinkSide {
			if m[u][v] > 0 {
				cut.Edges = append(cut.Edges, CutEdge{From: u, To: v, Capacity: m[u][v]})
				cut.Value += m[u][v]
			}
		}
	}

	return cut, nil
}

// residualReachable reports which nodes a BFS from source can reach over
// edges with strictly positive residual capacity.
func residualReachable(m grid.Matrix, flow [][]int64, source int) []bool {
	n := len(m)
	visited := make([]bool, n)
	visited[source] = true

	queue := make([]int, 0, n)
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v := 0; v < n; v++ {
			if !visited[v] && m[u][v]-flow[u][v] > 0 {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return visited
}
