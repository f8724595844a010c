package grid

import "errors"

// Sentinel errors for matrix and terminal validation.
var (
	// ErrNilMatrix is returned when a nil capacity matrix is passed.
	ErrNilMatrix = errors.New("grid: capacity matrix is nil")

	// ErrMatrixTooSmall is returned when the matrix order is below 2.
	ErrMatrixTooSmall = errors.New("grid: capacity matrix order must be at least 2")

	// ErrNotSquare is returned when a row length differs from the matrix order.
	ErrNotSquare = errors.New("grid: capacity matrix is not square")

	// ErrNegativeCapacity is returned when any entry is negative.
	ErrNegativeCapacity = errors.New("grid: negative capacity")

	// ErrNoSources is returned when the source set is empty.
	ErrNoSources = errors.New("grid: source set is empty")

	// ErrNoSinks is returned when the sink set is empty.
	ErrNoSinks = errors.New("grid: sink set is empty")

	// ErrTerminalOutOfRange is returned when a terminal index lies outside [0, N).
	ErrTerminalOutOfRange = errors.New("grid: terminal index out of range")

	// ErrTerminalDuplicate is returned when an index repeats within one terminal set.
	ErrTerminalDuplicate = errors.New("grid: duplicate terminal index")

	// ErrTerminalOverlap is returned when an index appears in both terminal sets.
	ErrTerminalOverlap = errors.New("grid: node is both source and sink")
)

// Matrix is a dense N×N capacity matrix: m[u][v] is the maximum number of
// integer units per tick that can move from node u to node v. Entries must
// be non-negative. Solvers treat a Matrix as immutable for the duration of
// one solve and never write to it.
type Matrix [][]int64

// Reduction is the outcome of collapsing a multi-source/multi-sink instance
// into a single-source/single-sink one. It is produced by Reduce and
// consumed by the flow solvers.
type Reduction struct {
	// Matrix is the reduced capacity matrix of order N - |S| - |T| + 2.
	// Row 0 is the super-source; the last row and column are the super-sink.
	Matrix Matrix

	// Bypass is the total capacity connecting a source directly to a sink.
	// It never enters Matrix and must be added to the engine result.
	Bypass int64

	// Source and Sink are the super-terminal indices within Matrix,
	// always 0 and Matrix.Order()-1 by construction.
	Source, Sink int

	// Nodes maps interior reduced indices back to original node indices:
	// reduced node i+1 corresponds to original node Nodes[i]. Indices are
	// ascending.
	Nodes []int
}
