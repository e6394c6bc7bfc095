// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise logarithmic transform that turns a multiplicative rate
//     matrix into an additive cost matrix: cost[i,j] = -ln(rate[i,j]).
//   - A product of rates along a path greater than one becomes a sum of costs
//     below zero, which is what shortest-path relaxation detects as a
//     negative cycle.
//
// Contract:
//   - Input must be finite and strictly positive everywhere; validated first.
//   - Pure: a fresh *Dense is returned, the input is never written.

package matrix

import "math"

// opNegLog is the operation tag for error wrapping.
const opNegLog = "NegLog"

// NegLog returns a new matrix with every entry replaced by its negated
// natural logarithm.
//
// Errors (in order):
//   - ErrNilMatrix if m is nil.
//   - *EntryError wrapping ErrNaNInf for a NaN/±Inf entry.
//   - *EntryError wrapping ErrNonPositive for a zero or negative entry.
//
// An entry equal to 1 maps to exactly +0 (never -0).
// Complexity: Time O(r*c), Space O(r*c).
func NegLog(m Matrix) (*Dense, error) {
	// 1) Validate domain before touching the logarithm.
	if err := ValidatePositive(m); err != nil {
		return nil, matrixErrorf(opNegLog, err)
	}

	// 2) Allocate the output; shape is inherited from the input.
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opNegLog, err)
	}

	// 3) Dense fast-path over the flat buffer.
	if d, ok := m.(*Dense); ok {
		var k int
		for k = 0; k < len(d.data); k++ {
			out.data[k] = negLog(d.data[k])
		}
		return out, nil
	}

	// 4) Generic fallback via At.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opNegLog, err)
			}
			out.data[i*c+j] = negLog(v)
		}
	}

	return out, nil
}

// negLog computes -ln(v), normalizing -0 to +0.
func negLog(v float64) float64 {
	x := -math.Log(v)
	if x == 0 {
		return 0
	}

	return x
}
