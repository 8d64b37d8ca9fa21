// SPDX-License-Identifier: MIT

// Package matrix: core data types.
//
// Matrix is a dense row-major container with dimensions fixed at
// construction. Vector and ColVector are aliases: a row or column vector is a
// 1×n or n×1 Matrix, so every matrix operation applies to them unchanged.

package matrix

import "github.com/katalvlaran/linalg/num"

// Matrix is a rows×cols grid of E stored row-major in one flat slice:
// element (i, j) lives at data[i*cols+j].
//
// Invariants:
//   - rows, cols >= 0 and len(data) == rows*cols;
//   - the shape never changes after construction.
//
// Pure operations allocate their result and never mutate operands; the
// *Assign / *Set variants mutate the receiver and return only an error.
type Matrix[E num.Element] struct {
	r, c int
	data []E
}

// Vector is a row vector (1×n matrix). Signatures in this package spell
// *Matrix[E]; Vector and ColVector are for callers.
type Vector[E num.Element] = Matrix[E]

// ColVector is a column vector (n×1 matrix).
type ColVector[E num.Element] = Matrix[E]
