// Package grid defines the dense capacity-matrix model shared by every
// gridflow solver, together with the multi-terminal reduction that turns a
// multi-source/multi-sink instance into a single-source/single-sink one.
//
// # Data model
//
// A Matrix is an N×N grid of non-negative int64 capacities: m[u][v] is the
// maximum number of units per tick that can move from node u to node v.
// Nodes carry no attributes beyond their index. Self-loops are tolerated
// and have no effect on any computation.
//
// # Reduction
//
// Reduce collapses a set of sources S and a set of sinks T (disjoint,
// non-empty) into one super-source and one super-sink:
//
//   - row 0 of the reduced matrix aggregates every source's edges,
//   - the last column aggregates every edge into a sink,
//   - interior nodes keep their mutual edges unchanged,
//   - the super-sink row is all zero (no outgoing edges),
//   - sources and sinks are removed from the reduced matrix entirely.
//
// Capacity connecting a source directly to a sink never enters the reduced
// matrix; it is reported separately as Reduction.Bypass and must be added
// to the engine result by the caller (flow.MaxFlow does this). Removing the
// terminals outright — rather than zeroing their bypass edges in place —
// is what makes double counting impossible.
//
// # Errors
//
//	ErrNilMatrix / ErrMatrixTooSmall / ErrNotSquare / ErrNegativeCapacity
//	ErrNoSources / ErrNoSinks
//	ErrTerminalOutOfRange / ErrTerminalDuplicate / ErrTerminalOverlap
//
// All validation happens before any computation; on error no partial
// state is produced. Match with errors.Is; the wrapped message names the
// offending index or dimension.
package grid
