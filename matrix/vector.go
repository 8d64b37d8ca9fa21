// SPDX-License-Identifier: MIT

// Package matrix: vector operations.
//
// Vectors are 1×n or n×1 matrices. The functions here accept either
// orientation and, where they return a vector, keep the orientation of the
// first operand.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/num"
)

// NewVector returns the 1×n row vector holding values.
func NewVector[E num.Element](values ...E) *Matrix[E] {
	v := alloc[E](1, len(values))
	copy(v.data, values)

	return v
}

// NewColVector returns the n×1 column vector holding values.
func NewColVector[E num.Element](values ...E) *Matrix[E] {
	v := alloc[E](len(values), 1)
	copy(v.data, values)

	return v
}

// Dot returns Σ aᵢ·bᵢ.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector, ErrDimensionMismatch (length).
func Dot[E num.Element](a, b *Matrix[E]) (E, error) {
	if err := ValidateSameLen(a, b); err != nil {
		var zero E
		return zero, matrixErrorf(opDot, err)
	}

	ar := num.ArithOf[E]()
	sum := ar.Zero()
	for k := range a.data {
		sum = ar.Add(sum, ar.Mul(a.data[k], b.data[k]))
	}

	return sum, nil
}

// CDot is the complex inner product Σ aᵢ·conj(bᵢ). Unlike Dot it is not
// commutative: CDot(a, b) is the conjugate of CDot(b, a).
func CDot[T num.Real](a, b *Matrix[num.Complex[T]]) (num.Complex[T], error) {
	if err := ValidateSameLen(a, b); err != nil {
		return num.Complex[T]{}, matrixErrorf(opDot, err)
	}

	var sum num.Complex[T]
	for k := range a.data {
		sum.AddAssign(a.data[k].Mul(b.data[k].Conj()))
	}

	return sum, nil
}

// Cross returns the cross product of two 3-vectors, computed as the
// cofactors of the first row of the 3×3 matrix [0; a; b].
func Cross[E num.Element](a, b *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if a.Len() != 3 {
		return nil, matrixErrorf(opCross, fmt.Errorf("length %d, want 3: %w", a.Len(), ErrDimensionMismatch))
	}

	s := alloc[E](3, 3)
	copy(s.data[3:6], a.data)
	copy(s.data[6:9], b.data)

	out := alloc[E](a.r, a.c)
	for j := 0; j < 3; j++ {
		out.data[j] = cofactor(s, 0, j)
	}

	return out, nil
}

// NormOf evaluates n over the components of v.
func NormOf[T num.Real](v *Matrix[T], n Norm[T]) (T, error) {
	if err := ValidateVector(v); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	if n == nil {
		return 0, matrixErrorf(opNorm, ErrInvalidNorm)
	}

	r, err := n.Of(v.data)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return r, nil
}

// Magnitude is the Euclidean norm of v.
func Magnitude[T num.Real](v *Matrix[T]) (T, error) {
	return NormOf(v, Norm[T](Euclidean[T]{}))
}

// Normalise returns v scaled to unit Euclidean length. A zero vector is
// returned unchanged.
func Normalise[F num.Float](v *Matrix[F]) (*Matrix[F], error) {
	mag, err := Magnitude(v)
	if err != nil {
		return nil, err
	}
	if mag == 0 {
		return v.Clone(), nil
	}

	return mapped(v, func(x F) F { return x / mag }), nil
}

// Slerp spherically interpolates between the directions of a and b:
// sin((1-t)θ)/sin θ · â + sin(tθ)/sin θ · b̂, where θ is the angle between
// the normalised inputs â and b̂. Nearly parallel inputs fall back to linear
// interpolation. The result has the orientation of a.
func Slerp[F num.Float](a, b *Matrix[F], t F) (*Matrix[F], error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opSlerp, err)
	}

	na, err := Normalise(a)
	if err != nil {
		return nil, matrixErrorf(opSlerp, err)
	}
	nb, err := Normalise(b)
	if err != nil {
		return nil, matrixErrorf(opSlerp, err)
	}
	d, _ := Dot(na, nb)

	cos := math.Max(-1, math.Min(1, float64(d)))
	theta := math.Acos(cos)
	tt := float64(t)

	var wa, wb float64
	if sin := math.Sin(theta); math.Abs(sin) < num.Epsilon64*16 {
		wa, wb = 1-tt, tt
	} else {
		wa = math.Sin((1-tt)*theta) / sin
		wb = math.Sin(tt*theta) / sin
	}

	out := alloc[F](a.r, a.c)
	for k := range out.data {
		out.data[k] = F(wa*float64(na.data[k]) + wb*float64(nb.data[k]))
	}

	return out, nil
}
