package grid

// Reduce collapses the source set and the sink set of a capacity matrix into
// a single super-source (row 0) and a single super-sink (last row/column),
// producing an instance suitable for any single-source/single-sink solver.
//
// Construction:
//   - interior nodes — nodes in neither set — survive in ascending order;
//   - reduced[0][i+1]      = Σ over s ∈ sources of m[s][interior_i];
//   - reduced[i+1][last]   = Σ over t ∈ sinks   of m[interior_i][t];
//   - reduced[i+1][j+1]    = m[interior_i][interior_j], unchanged;
//   - the super-sink row is all zero: the sink has no outgoing edges;
//   - reduced[0][last] is zero: capacity that connects a source directly
//     to a sink is returned as Reduction.Bypass instead, so the flow
//     search can never count it a second time.
//
// Reduce is pure and deterministic: the same inputs always yield an
// identical Reduction.
//
// Returns any error from Validate or ValidateTerminals; on error no
// Reduction is produced.
//
// Complexity: O(N²) time, O(N'²) memory for the reduced matrix.
func Reduce(m Matrix, sources, sinks []int) (*Reduction, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	if err := ValidateTerminals(m, sources, sinks); err != nil {
		return nil, err
	}

	n := len(m)
	terminal := make([]bool, n)
	for _, s := range sources {
		terminal[s] = true
	}
	for _, t := range sinks {
		terminal[t] = true
	}

	// Interior nodes survive the reduction, in ascending index order.
	interior := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !terminal[v] {
			interior = append(interior, v)
		}
	}

	// Direct source→sink capacity bypasses the reduced graph entirely.
	var bypass int64
	for _, s := range sources {
		for _, t := range sinks {
			bypass += m[s][t]
		}
	}

	order := len(interior) + 2
	sink := order - 1
	reduced := New(order)
	for i, u := range interior {
		for _, s := range sources {
			reduced[0][i+1] += m[s][u]
		}
		for _, t := range sinks {
			reduced[i+1][sink] += m[u][t]
		}
		for j, v := range interior {
			reduced[i+1][j+1] = m[u][v]
		}
	}

	return &Reduction{
		Matrix: reduced,
		Bypass: bypass,
		Source: 0,
		Sink:   sink,
		Nodes:  interior,
	}, nil
}
