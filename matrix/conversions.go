// SPDX-License-Identifier: MIT
// Package matrix provides element-type conversions: checked numeric
// conversion (Dtype), promotion of real matrices to Complex ones, conjugation
// and per-component absolute value of Complex matrices.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/num"
)

// Dtype converts every element of m to Q with num.Convert.
// Implementation:
//   - Stage 1: allocate a Q matrix of the same shape.
//   - Stage 2: convert in row-major order, stopping at the first failure.
//
// Behavior highlights:
//   - Never truncates silently: a fractional or out-of-range value fails.
//   - Float targets accept rounding of float sources; integer sources must
//     be exactly representable.
//
// Errors:
//   - ErrNilMatrix; num.ErrConversion wrapped with the offending cell.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Dtype[Q, E num.Real](m *Matrix[E]) (*Matrix[Q], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDtype, err)
	}

	out := alloc[Q](m.r, m.c)
	for k, v := range m.data {
		q, err := num.Convert[Q](v)
		if err != nil {
			return nil, matrixErrorf(opDtype, fmt.Errorf("element (%d,%d): %w", k/m.c, k%m.c, err))
		}
		out.data[k] = q
	}

	return out, nil
}

// DtypeComplex converts both parts of every element of m to Q.
func DtypeComplex[Q, T num.Real](m *Matrix[num.Complex[T]]) (*Matrix[num.Complex[Q]], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDtype, err)
	}

	out := alloc[num.Complex[Q]](m.r, m.c)
	for k, v := range m.data {
		q, err := num.ConvertComplex[Q](v)
		if err != nil {
			return nil, matrixErrorf(opDtype, fmt.Errorf("element (%d,%d): %w", k/m.c, k%m.c, err))
		}
		out.data[k] = q
	}

	return out, nil
}

// ToComplex promotes a real matrix to a Complex one with zero imaginary parts.
func ToComplex[T num.Real](m *Matrix[T]) *Matrix[num.Complex[T]] {
	return mapped(m, num.FromReal[T])
}

// Conj promotes a real matrix to Complex and conjugates it. For promoted
// reals the conjugate equals the promotion; Conj exists so real and complex
// pipelines share one call.
func Conj[T num.Real](m *Matrix[T]) *Matrix[num.Complex[T]] {
	return mapped(m, func(v T) num.Complex[T] { return num.FromReal(v).Conj() })
}

// ConjComplex returns the element-wise conjugate of a Complex matrix.
func ConjComplex[T num.Real](m *Matrix[num.Complex[T]]) *Matrix[num.Complex[T]] {
	return mapped(m, num.Complex[T].Conj)
}

// CAbs applies ElementAbs to every element: each part becomes its absolute
// value independently. It is not the modulus; see (*Matrix).Abs for that.
func CAbs[T num.Real](m *Matrix[num.Complex[T]]) *Matrix[num.Complex[T]] {
	return mapped(m, num.Complex[T].ElementAbs)
}

// RealPart returns the real parts of a Complex matrix.
func RealPart[T num.Real](m *Matrix[num.Complex[T]]) *Matrix[T] {
	return mapped(m, num.Complex[T].Real)
}

// ImagPart returns the imaginary parts of a Complex matrix.
func ImagPart[T num.Real](m *Matrix[num.Complex[T]]) *Matrix[T] {
	return mapped(m, num.Complex[T].Imag)
}
