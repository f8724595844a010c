package grid

import "fmt"

// Validate checks the structural invariants of a capacity matrix:
// non-nil, order ≥ 2, square, and every entry ≥ 0.
//
// Returns ErrNilMatrix, ErrMatrixTooSmall, ErrNotSquare or
// ErrNegativeCapacity; the wrapped message identifies the offending row,
// column or value.
//
// Complexity: O(n²) time, O(1) memory.
func Validate(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	n := len(m)
	if n < 2 {
		return fmt.Errorf("%w: got order %d", ErrMatrixTooSmall, n)
	}
	for u, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, u, len(row), n)
		}
		for v, c := range row {
			if c < 0 {
				return fmt.Errorf("%w: edge %d→%d has capacity %d", ErrNegativeCapacity, u, v, c)
			}
		}
	}

	return nil
}

// ValidateTerminals checks source and sink sets against a matrix of order
// len(m): both non-empty, every index within [0, N), no index repeated
// within a set, and no index present in both sets (a node cannot play both
// roles). It assumes m has already passed Validate.
//
// Returns ErrNoSources, ErrNoSinks, ErrTerminalOutOfRange,
// ErrTerminalDuplicate or ErrTerminalOverlap.
//
// Complexity: O(|S| + |T|) time and memory.
func ValidateTerminals(m Matrix, sources, sinks []int) error {
	n := len(m)
	if len(sources) == 0 {
		return ErrNoSources
	}
	if len(sinks) == 0 {
		return ErrNoSinks
	}

	isSource := make(map[int]bool, len(sources))
	for _, s := range sources {
		if s < 0 || s >= n {
			return fmt.Errorf("%w: source %d with matrix order %d", ErrTerminalOutOfRange, s, n)
		}
		if isSource[s] {
			return fmt.Errorf("%w: source %d listed more than once", ErrTerminalDuplicate, s)
		}
		isSource[s] = true
	}

	seen := make(map[int]bool, len(sinks))
	for _, t := range sinks {
		if t < 0 || t >= n {
			return fmt.Errorf("%w: sink %d with matrix order %d", ErrTerminalOutOfRange, t, n)
		}
		if seen[t] {
			return fmt.Errorf("%w: sink %d listed more than once", ErrTerminalDuplicate, t)
		}
		if isSource[t] {
			return fmt.Errorf("%w: node %d", ErrTerminalOverlap, t)
		}
		seen[t] = true
	}

	return nil
}
