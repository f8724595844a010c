package flow

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/gridflow/grid"
)

// MaxFlow is the top-level multi-source/multi-sink solve: it validates and
// reduces the instance via grid.Reduce, runs the configured engine
// (Edmonds–Karp by default, see WithAlgorithm) on the reduced matrix, and
// reports
//
//	reduction bypass  +  engine value
//
// i.e. the capacity connecting sources directly to sinks plus everything
// the flow search can route through interior nodes. The result is always
// non-negative and never exceeds the total capacity leaving the sources.
//
// Preconditions (violations are the caller's error, surfaced before any
// computation): m square with non-negative entries and order ≥ 2; sources
// and sinks non-empty, disjoint subsets of [0, N).
//
// Complexity: the reduction is O(N²); engine cost dominates (see
// EdmondsKarp and Dinic).
func MaxFlow(m grid.Matrix, sources, sinks []int, opts ...Option) (int64, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return 0, err
	}

	red, err := grid.Reduce(m, sources, sinks)
	if err != nil {
		return 0, err
	}

	res, err := runEngine(o, red.Matrix, red.Source, red.Sink, opts)
	if err != nil {
		return 0, err
	}
	o.Logger.Debug("solve complete",
		zap.Int64("bypass", red.Bypass),
		zap.Int64("engine_value", res.Value),
		zap.Int64("total", red.Bypass+res.Value),
		zap.Int("iterations", res.Iterations),
	)

	return red.Bypass + res.Value, nil
}

// runEngine dispatches to the engine selected in o, forwarding the original
// option list so the engine sees the same logger.
func runEngine(o Options, m grid.Matrix, source, sink int, opts []Option) (*Result, error) {
	if o.Algorithm == AlgorithmDinic {
		return Dinic(m, source, sink, opts...)
	}

	return EdmondsKarp(m, source, sink, opts...)
}
