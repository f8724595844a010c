// Package flow implements integer-exact maximum-flow solvers over dense
// capacity matrices (grid.Matrix). It provides deterministic routines for
// computing the maximum sustained throughput from a set of source nodes to
// a set of sink nodes, plus minimum-cut extraction.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case, independent of capacity magnitude.
//
//   - Memory: O(V²) for the flow matrix, O(V) for the search arena.
//
//   - The default engine; polynomial even when capacities dwarf the node count.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow pushes.
//
//   - Time:   O(V² · E) general; O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V²) for the flow matrix, O(V) for levels and cursors.
//
//   - High practical performance on dense matrices.
//
// # Matrix support
//
// All solvers operate on grid.Matrix: a square N×N grid of non-negative
// int64 capacities, node indices 0..N-1. Capacity matrices are never
// mutated; each solve allocates its own skew-symmetric flow matrix.
// Arithmetic is integer end to end — no epsilon, no rounding.
//
// # API
//
// Options configure all solvers through functional arguments:
//
//	opts := flow.DefaultOptions()
//	// opts.Logger    = zap.NewNop()
//	// opts.Algorithm = flow.AlgorithmEdmondsKarp
//
// The single-terminal engines share one signature:
//
//	func EdmondsKarp(m grid.Matrix, source, sink int, opts ...Option) (*Result, error)
//	func Dinic(m grid.Matrix, source, sink int, opts ...Option) (*Result, error)
//
// Each returns a Result carrying the flow value, the final flow matrix and
// the iteration count. The multi-terminal entry points compose the
// grid.Reduce reduction with the configured engine:
//
//	func MaxFlow(m grid.Matrix, sources, sinks []int, opts ...Option) (int64, error)
//	func MinCut(m grid.Matrix, sources, sinks []int, opts ...Option) (*Cut, error)
//
// MaxFlow reports reduction bypass + engine value; MinCut reports the cut
// sides and crossing edges in original node indices.
//
// # Errors
//
//	ErrSourceOutOfRange / ErrSinkOutOfRange / ErrSameSourceSink
//	ErrOptionViolation — an invalid Option was supplied.
//	grid.Err...        — matrix/terminal validation failures, re-exposed
//	                     unchanged so errors.Is works from any entry point.
//
// Once input is validated there is no runtime failure category: every
// solver terminates with a correct integer result.
//
// # Integration
//
//   - Relies on github.com/katalvlaran/gridflow/grid for the matrix model
//     and the multi-terminal reduction.
//   - Augmentations and solve summaries are logged at Debug level through
//     an optional go.uber.org/zap logger (WithLogger).
package flow
