// Package arbitrage turns a market snapshot (currency labels plus a square
// matrix of exchange rates) into the list of profitable conversion loops.
//
// The pipeline is one-way:
//
//	MarketSnapshot → Validate → matrix.NegLog → bellmanford.Detect → []Cycle
//
// Detection is pure and returns data; rendering lives in Reporter
// implementations so callers decide between text and JSON output.
//
// Errors:
//
//   - *ShapeError (errors.Is ErrShape): empty snapshot, non-square or ragged
//     matrix, or a matrix whose size differs from the label count.
//   - *DomainError (errors.Is ErrDomain): a rate that is zero, negative, NaN
//     or infinite. The log transform is never attempted on such input.
//   - ErrTooLarge: more currencies than the detector's configured bound.
//
// Finding no arbitrage is not an error: Detect returns an empty slice.
package arbitrage
