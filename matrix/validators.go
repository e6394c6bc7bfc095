// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/numeric checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Entry scans run in fixed row-major order, so the FIRST offending cell
//    (lowest row, then lowest column) is always the one reported.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// EntryError reports the coordinates and value of a single offending cell.
// It unwraps to the violated sentinel (ErrNaNInf or ErrNonPositive).
type EntryError struct {
	Row, Col int     // zero-based coordinates
	Value    float64 // offending value
	Err      error   // sentinel
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("entry (%d,%d)=%g: %v", e.Row, e.Col, e.Value, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *EntryError) Unwrap() error { return e.Err }

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateFinite ensures no entry is NaN or ±Inf.
// The returned error is an *EntryError wrapping ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	return scanEntries("ValidateFinite", m, func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidatePositive ensures every entry is finite and strictly positive,
// i.e. inside the domain of the natural logarithm.
// NaN/Inf is reported as ErrNaNInf, zero or negative as ErrNonPositive,
// both via *EntryError.
// Complexity: O(r*c).
func ValidatePositive(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidatePositive", err)
	}

	return scanEntries("ValidatePositive", m, func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v <= 0 {
			return ErrNonPositive
		}
		return nil
	})
}

// scanEntries visits cells in row-major order and stops at the first
// violation reported by check.
func scanEntries(tag string, m Matrix, check func(v float64) error) error {
	r, c := m.Rows(), m.Cols()

	// Dense fast-path: walk the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		var k int
		for k = 0; k < len(d.data); k++ {
			if err := check(d.data[k]); err != nil {
				return validatorErrorf(tag, &EntryError{Row: k / c, Col: k % c, Value: d.data[k], Err: err})
			}
		}
		return nil
	}

	// Generic fallback via At.
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return validatorErrorf(tag, &EntryError{Row: i, Col: j, Value: v, Err: err})
			}
		}
	}

	return nil
}
