// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) closure with deterministic loop order.
//   - Used as an all-pairs negative-cycle oracle: after the closure, a
//     negative diagonal entry d[i,i] means some negative closed walk passes
//     through i, so the graph has a negative cycle somewhere. It does not
//     identify which vertices lie on a simple negative cycle.
//
// Contract:
//   - Square, finite matrix; +Inf off-diagonal means "no edge".
//   - Diagonal is forced to 0 before the closure (a vertex reaches itself for free).

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall    = "FloydWarshall"
	opHasNegativeCycle = "HasNegativeCycle"
)

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, kj       float64 // distances d[i,k], d[k,j]
		cand         float64 // candidate path length via k
	)
	data := d.data

	for k = 0; k < n; k++ { // outer: intermediate vertex k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue // k cannot reach j
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall returns the all-pairs shortest-path closure of m as a new
// Dense; m is not modified.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (for NaN or -Inf entries).
// Complexity: Time O(n^3), Space O(n^2).
func FloydWarshall(m Matrix) (*Dense, error) {
	// 1) Validate: non-nil, square.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}

	// 2) Copy into a fresh Dense, zeroing the diagonal.
	n := m.Rows()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // stays 0
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opFloydWarshall, err)
			}
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return nil, matrixErrorf(opFloydWarshall, &EntryError{Row: i, Col: j, Value: v, Err: ErrNaNInf})
			}
			d.data[i*n+j] = v
		}
	}

	// 3) Closure.
	floydWarshallInPlace(d)

	return d, nil
}

// HasNegativeCycle reports whether the cost matrix m contains any negative
// cycle. After the closure a vertex with d[i,i] < 0 has a negative closed
// walk through it, and any such walk contains a negative simple cycle.
//
// Complexity: Time O(n^3), Space O(n^2).
func HasNegativeCycle(m Matrix) (bool, error) {
	d, err := FloydWarshall(m)
	if err != nil {
		return false, matrixErrorf(opHasNegativeCycle, err)
	}

	var i int
	for i = 0; i < d.r; i++ {
		if d.data[i*d.r+i] < 0 {
			return true, nil
		}
	}

	return false, nil
}
