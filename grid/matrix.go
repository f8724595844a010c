package grid

// New returns a zeroed n×n capacity matrix.
//
// Complexity: O(n²) time and memory.
func New(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int64, n)
	}

	return m
}

// Order returns the number of nodes (rows) in m.
func (m Matrix) Order() int { return len(m) }

// Clone returns a deep copy of m; mutating the copy never affects m.
//
// Complexity: O(n²) time and memory.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]int64, len(row))
		copy(out[i], row)
	}

	return out
}
