package arbitrage

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; the typed errors below unwrap to them.
var (
	// ErrShape marks a malformed snapshot shape.
	ErrShape = errors.New("arbitrage: invalid snapshot shape")

	// ErrDomain marks a rate outside the logarithm domain (≤ 0, NaN or Inf).
	ErrDomain = errors.New("arbitrage: rate outside log domain")

	// ErrTooLarge marks a snapshot with more currencies than allowed.
	ErrTooLarge = errors.New("arbitrage: too many currencies")

	// ErrSource marks a configured source index the snapshot does not have.
	ErrSource = errors.New("arbitrage: source currency out of range")
)

// ShapeError describes a snapshot whose dimensions are inconsistent.
// Row is the offending row for ragged input, or -1.
type ShapeError struct {
	Labels int // number of currency labels
	Rows   int // number of matrix rows
	Row    int // offending row, -1 when not row-specific
	Cols   int // column count of the offending row (or of row 0)
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row %d has %d rates, want %d", ErrShape, e.Row, e.Cols, e.Labels)
	}

	return fmt.Sprintf("%v: %d currencies, %d rate rows", ErrShape, e.Labels, e.Rows)
}

// Unwrap exposes ErrShape.
func (e *ShapeError) Unwrap() error { return ErrShape }

// DomainError describes a single rate the log transform cannot accept.
type DomainError struct {
	From, To string  // currency labels of the offending cell
	Row, Col int     // zero-based coordinates
	Value    float64 // offending rate
	Err      error   // matrix.ErrNonPositive or matrix.ErrNaNInf
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: rate %s→%s (%d,%d) = %g", ErrDomain, e.From, e.To, e.Row, e.Col, e.Value)
}

// Unwrap exposes both ErrDomain and the underlying matrix sentinel.
func (e *DomainError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDomain}
	}

	return []error{ErrDomain, e.Err}
}
