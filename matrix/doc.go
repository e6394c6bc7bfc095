// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the detector.
//
// Contents:
//   - Matrix: minimal mutable 2-D float64 interface (Rows, Cols, At, Set, Clone).
//   - Dense: row-major implementation with bounds-checked accessors.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateFinite, ValidatePositive.
//   - NegLog: pure element-wise -ln transform from rates to costs.
//
// Errors are package sentinels (errors.go) wrapped with call-site context;
// match them with errors.Is. Cell-level failures carry coordinates via
// *EntryError (errors.As).
//
// Determinism: every scan runs in fixed row-major order.
package matrix
