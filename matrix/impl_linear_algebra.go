// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of Matrix: element-wise
// addition and subtraction, negation, scalar scaling, matrix multiplication
// and transpose, each with a pure variant and an in-place twin.
//
// Purpose:
//   - Define operation tags and the single error wrapper used by facades.
//   - Run every kernel through num.Arith so one implementation serves
//     integers, floats and Complex values.
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf.
//   - Pure variants allocate; *Assign / *Set variants write into the receiver
//     and leave it untouched on error.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/num"
)

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opMulAssign    = "MulAssign"
	opTranspose    = "Transpose"
	opTransposeSet = "TransposeSet"
	opScale        = "Scale"
	opNeg          = "Neg"
	opDeterminant  = "Determinant"
	opCofactor     = "Cofactor"
	opAdjoint      = "Adjoint"
	opTrace        = "Trace"
	opLU           = "LU"
	opPLU          = "PLU"
	opSolve        = "Solve"
	opInverse      = "Inverse"
	opElemMul      = "ElemMul"
	opElemDiv      = "ElemDiv"
	opElemAdd      = "ElemAdd"
	opElemSub      = "ElemSub"
	opDtype        = "Dtype"
	opMin          = "Min"
	opMax          = "Max"
	opMinMax       = "MinMax"
	opRowByNorm    = "RowByNorm"
	opLog          = "Log"
	opAllClose     = "AllClose"
	opDot          = "Dot"
	opCross        = "Cross"
	opNorm         = "Norm"
	opSlerp        = "Slerp"
	opEmpty        = "Empty"
	opIdentity     = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub is the shared kernel of Add and Sub: out[k] = a[k] ± b[k].
func addSub[E num.Element](dst, a, b *Matrix[E], sub bool) {
	ar := num.ArithOf[E]()
	for k := range a.data {
		if sub {
			dst.data[k] = ar.Sub(a.data[k], b.data[k])
		} else {
			dst.data[k] = ar.Add(a.data[k], b.data[k])
		}
	}
}

// Add returns m + o.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[E]) Add(o *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	out := alloc[E](m.r, m.c)
	addSub(out, m, o, false)

	return out, nil
}

// Sub returns m - o.
func (m *Matrix[E]) Sub(o *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	out := alloc[E](m.r, m.c)
	addSub(out, m, o, true)

	return out, nil
}

// AddAssign sets m = m + o.
func (m *Matrix[E]) AddAssign(o *Matrix[E]) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opAdd, err)
	}
	addSub(m, m, o, false)

	return nil
}

// SubAssign sets m = m - o.
func (m *Matrix[E]) SubAssign(o *Matrix[E]) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opSub, err)
	}
	addSub(m, m, o, true)

	return nil
}

// mulInto computes dst = a·b with the triple-nested sum. dst must not alias
// a or b.
func mulInto[E num.Element](dst, a, b *Matrix[E]) {
	ar := num.ArithOf[E]()

	var i, j, k int
	var acc E
	n := a.c
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = ar.Zero() // additive identity of E
			for k = 0; k < n; k++ {
				acc = ar.Add(acc, ar.Mul(a.data[i*n+k], b.data[k*b.c+j]))
			}
			dst.data[i*b.c+j] = acc
		}
	}
}

// Mul returns the matrix product m·o of an r×n and an n×c matrix.
// Implementation:
//   - Stage 1: validate inner dimensions.
//   - Stage 2: for each (i, j) accumulate Σₖ m[i,k]·o[k,j] starting from Zero.
//
// Behavior highlights:
//   - Fixed i→j→k loop order, so results are reproducible bit for bit.
//   - Vectors are matrices: a 1×n row times an n×c matrix yields 1×c.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m.Cols != o.Rows).
//
// Complexity:
//   - Time O(r*c*n), Space O(r*c).
func (m *Matrix[E]) Mul(o *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := alloc[E](m.r, o.c)
	mulInto(out, m, o)

	return out, nil
}

// MulAssign sets m = m·o. The shape of m must stay fixed, so o must be a
// square matrix with as many rows as m has columns.
func (m *Matrix[E]) MulAssign(o *Matrix[E]) error {
	if err := ValidateMulCompatible(m, o); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	if err := ValidateSquare(o); err != nil {
		return matrixErrorf(opMulAssign, err)
	}

	tmp := alloc[E](m.r, m.c)
	mulInto(tmp, m, o)
	copy(m.data, tmp.data)

	return nil
}

// Scale returns v·m.
func (m *Matrix[E]) Scale(v E) (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	ar := num.ArithOf[E]()

	return mapped(m, func(x E) E { return ar.Mul(x, v) }), nil
}

// ScaleSet sets m = v·m.
func (m *Matrix[E]) ScaleSet(v E) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}

	ar := num.ArithOf[E]()
	for k, x := range m.data {
		m.data[k] = ar.Mul(x, v)
	}

	return nil
}

// Neg returns -m, i.e. m scaled by -1. Unsigned elements wrap.
func (m *Matrix[E]) Neg() (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	ar := num.ArithOf[E]()

	return mapped(m, ar.Neg), nil
}

// Transpose returns the cols×rows matrix with out[j,i] = m[i,j].
func (m *Matrix[E]) Transpose() (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := alloc[E](m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// TransposeSet transposes m in place. Only square matrices keep their shape,
// so any other input fails with ErrNonSquare.
func (m *Matrix[E]) TransposeSet() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opTransposeSet, err)
	}

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
		}
	}

	return nil
}
