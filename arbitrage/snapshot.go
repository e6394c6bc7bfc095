package arbitrage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fxarb/matrix"
)

// MarketSnapshot is the request-scoped input of a detection run.
// Currencies fixes the index order; Rates[i][j] is the amount of
// Currencies[j] obtained for one unit of Currencies[i].
//
// Self-rates Rates[i][i] are expected to be 1 but are not checked beyond
// being finite and positive. Detection never converts a currency into
// itself, so any other diagonal value is accepted and has no effect.
type MarketSnapshot struct {
	Currencies []string    `json:"currencies"`
	Rates      [][]float64 `json:"rates"`
}

// Size returns the number of currencies.
func (s MarketSnapshot) Size() int { return len(s.Currencies) }

// Validate checks shape and rate domain. Shape problems are reported before
// domain problems.
func (s MarketSnapshot) Validate() error {
	_, err := s.rateMatrix()

	return err
}

// rateMatrix validates the snapshot and copies the rates into a Dense.
func (s MarketSnapshot) rateMatrix() (*matrix.Dense, error) {
	n := len(s.Currencies)

	// 1) Shape: non-empty, rows == labels, every row n wide.
	if n == 0 || len(s.Rates) != n {
		return nil, &ShapeError{Labels: n, Rows: len(s.Rates), Row: -1}
	}
	var i int
	for i = 0; i < n; i++ {
		if len(s.Rates[i]) != n {
			return nil, &ShapeError{Labels: n, Rows: len(s.Rates), Row: i, Cols: len(s.Rates[i])}
		}
	}

	// 2) Copy; shape is already known to be square.
	m, err := matrix.FromRows(s.Rates)
	if err != nil {
		return nil, fmt.Errorf("arbitrage: copy rates: %w", err)
	}

	// 3) Domain: every rate finite and > 0.
	if err = matrix.ValidatePositive(m); err != nil {
		var ee *matrix.EntryError
		if errors.As(err, &ee) {
			return nil, &DomainError{
				From:  s.Currencies[ee.Row],
				To:    s.Currencies[ee.Col],
				Row:   ee.Row,
				Col:   ee.Col,
				Value: ee.Value,
				Err:   ee.Err,
			}
		}
		return nil, fmt.Errorf("arbitrage: validate rates: %w", err)
	}

	return m, nil
}
