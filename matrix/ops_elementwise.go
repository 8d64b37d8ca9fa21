// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels.
//
// Purpose:
//   - Hadamard product and quotient of same-shape matrices.
//   - Scalar broadcast addition and subtraction.
//   - Per-element maps: Abs, Log, epsilon filtering.
//   - Tolerant comparison (AllClose) driven by functional options.
//
// Contract:
//   - Pure variants allocate; *Assign variants write into the receiver.
//   - Division by a zero element follows the element type: integer division
//     panics, float division yields ±Inf or NaN. It is not masked here.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/num"
)

// zipInto writes f(a[k], b[k]) into dst for every k.
func zipInto[E num.Element](dst, a, b *Matrix[E], f func(x, y E) E) {
	for k := range a.data {
		dst.data[k] = f(a.data[k], b.data[k])
	}
}

// ElemMul returns the Hadamard product m ∘ o.
func (m *Matrix[E]) ElemMul(o *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opElemMul, err)
	}

	out := alloc[E](m.r, m.c)
	zipInto(out, m, o, num.ArithOf[E]().Mul)

	return out, nil
}

// ElemMulAssign sets m = m ∘ o.
func (m *Matrix[E]) ElemMulAssign(o *Matrix[E]) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opElemMul, err)
	}
	zipInto(m, m, o, num.ArithOf[E]().Mul)

	return nil
}

// ElemDiv returns the element-wise quotient m ⊘ o.
func (m *Matrix[E]) ElemDiv(o *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opElemDiv, err)
	}

	out := alloc[E](m.r, m.c)
	zipInto(out, m, o, num.ArithOf[E]().Div)

	return out, nil
}

// ElemDivAssign sets m = m ⊘ o.
func (m *Matrix[E]) ElemDivAssign(o *Matrix[E]) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opElemDiv, err)
	}
	zipInto(m, m, o, num.ArithOf[E]().Div)

	return nil
}

// ElemAdd returns m with v added to every element.
func (m *Matrix[E]) ElemAdd(v E) (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opElemAdd, err)
	}

	ar := num.ArithOf[E]()

	return mapped(m, func(x E) E { return ar.Add(x, v) }), nil
}

// ElemAddAssign adds v to every element of m.
func (m *Matrix[E]) ElemAddAssign(v E) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opElemAdd, err)
	}

	ar := num.ArithOf[E]()
	m.Apply(func(_, _ int, x E) E { return ar.Add(x, v) })

	return nil
}

// ElemSub returns m with v subtracted from every element.
func (m *Matrix[E]) ElemSub(v E) (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opElemSub, err)
	}

	ar := num.ArithOf[E]()

	return mapped(m, func(x E) E { return ar.Sub(x, v) }), nil
}

// ElemSubAssign subtracts v from every element of m.
func (m *Matrix[E]) ElemSubAssign(v E) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opElemSub, err)
	}

	ar := num.ArithOf[E]()
	m.Apply(func(_, _ int, x E) E { return ar.Sub(x, v) })

	return nil
}

// Abs returns the element-wise magnitude: Abs for real elements, the modulus
// (as a Complex with zero imaginary part) for Complex elements. See CAbs for
// the per-component variant.
func (m *Matrix[E]) Abs() *Matrix[E] {
	return mapped(m, num.ArithOf[E]().Abs)
}

// Log returns the element-wise natural logarithm.
//
// Errors:
//   - ErrNilMatrix; num.ErrDomain naming the first non-positive element.
func Log[F num.Float](m *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLog, err)
	}

	out := alloc[F](m.r, m.c)
	for k, v := range m.data {
		if !(v > 0) {
			return nil, matrixErrorf(opLog,
				fmt.Errorf("element (%d,%d) = %v: %w", k/m.c, k%m.c, v, num.ErrDomain))
		}
		out.data[k] = F(math.Log(float64(v)))
	}

	return out, nil
}

// EpsilonFilter returns m with every element below machine epsilon in
// magnitude replaced by zero. Typical use is cleaning a rotation matrix.
func EpsilonFilter[F num.Float](m *Matrix[F]) *Matrix[F] {
	return mapped(m, num.Epsilon[F])
}

// EpsilonFilterComplex filters the real and imaginary parts of every element
// independently.
func EpsilonFilterComplex[F num.Float](m *Matrix[num.Complex[F]]) *Matrix[num.Complex[F]] {
	return mapped(m, func(c num.Complex[F]) num.Complex[F] {
		return num.FromComplex(num.Epsilon(c.Real()), num.Epsilon(c.Imag()))
	})
}

// isClose reports a == b or |a-b| <= atol + rtol·|b|. NaN is never close.
func isClose(a, b float64, o Options) bool {
	return a == b || math.Abs(a-b) <= o.atol+o.rtol*math.Abs(b)
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol·|b|.
// Implementation:
//   - Stage 1: resolve options (DefaultRelTol, DefaultAbsTol).
//   - Stage 2: validate shapes.
//   - Stage 3: scan in row-major order, stopping at the first violation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[F num.Float](a, b *Matrix[F], opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for k := range a.data {
		if !isClose(float64(a.data[k]), float64(b.data[k]), o) {
			return false, nil
		}
	}

	return true, nil
}

// AllCloseComplex is AllClose applied to real and imaginary parts separately.
func AllCloseComplex[F num.Float](a, b *Matrix[num.Complex[F]], opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for k := range a.data {
		x, y := a.data[k], b.data[k]
		if !isClose(float64(x.Real()), float64(y.Real()), o) ||
			!isClose(float64(x.Imag()), float64(y.Imag()), o) {
			return false, nil
		}
	}

	return true, nil
}
