package flow

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for solver execution.
var (
	// ErrSourceOutOfRange is returned when the source index lies outside [0, N).
	ErrSourceOutOfRange = errors.New("flow: source index out of range")

	// ErrSinkOutOfRange is returned when the sink index lies outside [0, N).
	ErrSinkOutOfRange = errors.New("flow: sink index out of range")

	// ErrSameSourceSink is returned when source and sink are the same node.
	ErrSameSourceSink = errors.New("flow: source and sink are the same node")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")
)

// Algorithm selects the engine used by MaxFlow and MinCut.
type Algorithm int

const (
	// AlgorithmEdmondsKarp selects breadth-first augmenting paths (default).
	AlgorithmEdmondsKarp Algorithm = iota

	// AlgorithmDinic selects level graphs with blocking flows.
	AlgorithmDinic
)

// Option configures solvers via functional arguments. An invalid Option
// (e.g. an unknown Algorithm) is recorded internally and surfaced as
// ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters shared by all solvers.
type Options struct {
	// Logger receives a Debug record per augmentation (path, bottleneck,
	// running iteration) and a summary per solve. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Algorithm picks the engine behind MaxFlow and MinCut.
	Algorithm Algorithm

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with production-safe defaults:
//   - no-op logger
//   - Edmonds–Karp engine.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Algorithm: AlgorithmEdmondsKarp,
		err:       nil,
	}
}

// WithLogger routes augmentation and summary records to l.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAlgorithm selects the engine for MaxFlow and MinCut.
// An unknown value is invalid → ErrOptionViolation.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		switch a {
		case AlgorithmEdmondsKarp, AlgorithmDinic:
			o.Algorithm = a
		default:
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, a)
		}
	}
}

// Result holds the outcome of one single-source/single-sink solve.
type Result struct {
	// Value is the total flow pushed from source to sink.
	Value int64

	// Flow is the final flow matrix, skew-symmetric:
	// Flow[u][v] == -Flow[v][u] for every pair.
	Flow [][]int64

	// Iterations counts augmenting paths (Edmonds–Karp) or blocking-flow
	// phases (Dinic). A bypass-only instance solves in zero iterations.
	Iterations int
}

// CutEdge is a positive-capacity edge of the original matrix crossing a cut.
type CutEdge struct {
	From, To int
	Capacity int64
}

// Cut describes a minimum source/sink cut in original node indices.
type Cut struct {
	// Value is the total capacity crossing the cut; by the max-flow/min-cut
	// theorem it equals the MaxFlow value for the same instance.
	Value int64

	// SourceSide and SinkSide partition [0, N), both ascending.
	// Sources always land on SourceSide and sinks on SinkSide.
	SourceSide []int
	SinkSide   []int

	// Edges lists every edge with positive capacity leading from
	// SourceSide to SinkSide, ordered by (From, To).
	Edges []CutEdge
}

// applyOptions folds opts over defaults and reports any recorded violation.
func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// validateEndpoints checks source/sink indices against matrix order n.
func validateEndpoints(n, source, sink int) error {
	if source < 0 || source >= n {
		return fmt.Errorf("%w: source %d with matrix order %d", ErrSourceOutOfRange, source, n)
	}
	if sink < 0 || sink >= n {
		return fmt.Errorf("%w: sink %d with matrix order %d", ErrSinkOutOfRange, sink, n)
	}
	if source == sink {
		return fmt.Errorf("%w: index %d", ErrSameSourceSink, source)
	}

	return nil
}

// newFlowMatrix allocates the zeroed n×n flow state for one solve.
func newFlowMatrix(n int) [][]int64 {
	f := make([][]int64, n)
	for i := range f {
		f[i] = make([]int64, n)
	}

	return f
}
