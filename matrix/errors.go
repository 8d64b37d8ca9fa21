// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinels used across the matrix
// package plus IndexError, the one structured error. Algorithms return these
// (optionally wrapped via matrixErrorf) and tests match them with errors.Is.
// Panics are reserved for the Must* helpers and for element-type semantics
// (integer division by zero), never for data-dependent failures.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Context is added at the facade with matrixErrorf ("Op: cause");
// callers still match with errors.Is.
//
// ERROR CLASSES:
// shape/index (programming errors) -> dimension mismatch -> conversion
// (data-dependent) -> decomposition (expected, recoverable) -> empty input.

var (
	// ErrBadShape is returned for negative dimensions or ragged input rows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return an *IndexError wrapping it; MustAt/MustSet panic with it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNoDecomposition reports that LU met a zero pivot, or that no row
	// permutation admits one (PLU). It is an expected outcome, not a fault.
	ErrNoDecomposition = errors.New("matrix: no decomposition")

	// ErrEmpty is returned by reductions that need at least one element.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNotVector is returned by vector operations given a matrix with more
	// than one row and more than one column.
	ErrNotVector = errors.New("matrix: operand is not a vector")

	// ErrInvalidNorm is returned for a p-norm with p == 0 or a Custom norm
	// without a function.
	ErrInvalidNorm = errors.New("matrix: invalid norm")
)

// Axis names used in IndexError messages.
const (
	AxisRow = "row"
	AxisCol = "column"
)

// IndexError describes a bounds violation: which axis, which index, and the
// shape of the matrix that rejected it. It unwraps to ErrOutOfRange.
type IndexError struct {
	Axis       string // AxisRow or AxisCol
	Index      int    // offending index
	Rows, Cols int    // shape of the indexed matrix
}

// Error renders e.g. "matrix: row 4 outside 0..2 for a 2×3 matrix".
func (e *IndexError) Error() string {
	limit := e.Rows
	if e.Axis == AxisCol {
		limit = e.Cols
	}

	return fmt.Sprintf("matrix: %s %d outside 0..%d for a %d×%d matrix",
		e.Axis, e.Index, limit, e.Rows, e.Cols)
}

// Unwrap exposes ErrOutOfRange to errors.Is.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }
