// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
//
// Purpose:
//   - Single place for shape checks shared by every kernel.
//   - Validators return bare sentinels (wrapped with detail); facades add the
//     operation tag through matrixErrorf.
//
// Contract:
//   - Nil checks come first, then the shape predicate.
//   - Validators never allocate result matrices and never panic.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/num"
)

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil[E num.Element](m *Matrix[E]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape checks that a and b are non-nil with identical shapes.
func ValidateSameShape[E num.Element](a, b *Matrix[E]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%d×%d vs %d×%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare[E num.Element](m *Matrix[E]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("%d×%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows.
func ValidateMulCompatible[E num.Element](a, b *Matrix[E]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return fmt.Errorf("%d×%d · %d×%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonEmpty checks that m has at least one element.
func ValidateNonEmpty[E num.Element](m *Matrix[E]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r == 0 || m.c == 0 {
		return fmt.Errorf("%d×%d: %w", m.r, m.c, ErrEmpty)
	}

	return nil
}

// ValidateVector checks that m is a row or column vector.
func ValidateVector[E num.Element](m *Matrix[E]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.IsVector() {
		return fmt.Errorf("%d×%d: %w", m.r, m.c, ErrNotVector)
	}

	return nil
}

// ValidateSameLen checks that a and b are vectors of equal length,
// regardless of orientation.
func ValidateSameLen[E num.Element](a, b *Matrix[E]) error {
	if err := ValidateVector(a); err != nil {
		return err
	}
	if err := ValidateVector(b); err != nil {
		return err
	}
	if a.Len() != b.Len() {
		return fmt.Errorf("length %d vs %d: %w", a.Len(), b.Len(), ErrDimensionMismatch)
	}

	return nil
}
