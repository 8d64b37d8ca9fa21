// SPDX-License-Identifier: MIT

package num

import (
	"fmt"
	"math"
)

// Arith is the arithmetic dictionary of an element type E. Matrix and vector
// kernels are written once against Arith and run unchanged over primitive
// numbers and Complex values.
type Arith[E any] interface {
	// Zero is the additive identity.
	Zero() E
	// One is the multiplicative identity.
	One() E
	// FromInt converts a small integer constant such as -1, 0 or 1.
	FromInt(n int) E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	// Div follows E's own semantics for a zero divisor.
	Div(a, b E) E
	Neg(a E) E

	// Abs is the magnitude: Abs for reals, the modulus for Complex.
	Abs(a E) E
	IsZero(a E) bool
	// Magnitude is |a| as a float64, for comparisons against tolerances.
	Magnitude(a E) float64
}

// arithSource is implemented by every Complex instantiation.
type arithSource interface{ arith() any }

// ArithOf returns the dictionary for E.
//
// It panics with ErrUnsupportedType when E is neither a Real type nor a
// Complex instantiation; using such an element type is a programming error.
func ArithOf[E any]() Arith[E] {
	var zero E

	var a any
	switch z := any(zero).(type) {
	case int:
		a = realArith[int]{}
	case int8:
		a = realArith[int8]{}
	case int16:
		a = realArith[int16]{}
	case int32:
		a = realArith[int32]{}
	case int64:
		a = realArith[int64]{}
	case uint:
		a = realArith[uint]{}
	case uint8:
		a = realArith[uint8]{}
	case uint16:
		a = realArith[uint16]{}
	case uint32:
		a = realArith[uint32]{}
	case uint64:
		a = realArith[uint64]{}
	case float32:
		a = realArith[float32]{}
	case float64:
		a = realArith[float64]{}
	case arithSource:
		a = z.arith()
	default:
		panic(fmt.Errorf("%w: %T", ErrUnsupportedType, zero))
	}

	return a.(Arith[E])
}

type realArith[T Real] struct{}

func (realArith[T]) Zero() T         { return 0 }
func (realArith[T]) One() T          { return 1 }
func (realArith[T]) FromInt(n int) T { return T(n) }
func (realArith[T]) Add(a, b T) T    { return a + b }
func (realArith[T]) Sub(a, b T) T    { return a - b }
func (realArith[T]) Mul(a, b T) T    { return a * b }
func (realArith[T]) Div(a, b T) T    { return a / b }
func (realArith[T]) Neg(a T) T       { return -a }
func (realArith[T]) Abs(a T) T       { return Abs(a) }
func (realArith[T]) IsZero(a T) bool { return a == 0 }

func (realArith[T]) Magnitude(a T) float64 { return math.Abs(float64(a)) }

type complexArith[T Real] struct{}

func (complexArith[T]) Zero() Complex[T]               { return Complex[T]{} }
func (complexArith[T]) One() Complex[T]                { return Complex[T]{re: 1} }
func (complexArith[T]) FromInt(n int) Complex[T]       { return Complex[T]{re: T(n)} }
func (complexArith[T]) Add(a, b Complex[T]) Complex[T] { return a.Add(b) }
func (complexArith[T]) Sub(a, b Complex[T]) Complex[T] { return a.Sub(b) }
func (complexArith[T]) Mul(a, b Complex[T]) Complex[T] { return a.Mul(b) }
func (complexArith[T]) Div(a, b Complex[T]) Complex[T] { return a.Div(b) }
func (complexArith[T]) Neg(a Complex[T]) Complex[T]    { return a.Neg() }
func (complexArith[T]) Abs(a Complex[T]) Complex[T]    { return a.Absolute() }
func (complexArith[T]) IsZero(a Complex[T]) bool       { return a.IsZero() }

func (complexArith[T]) Magnitude(a Complex[T]) float64 {
	return math.Hypot(float64(a.re), float64(a.im))
}
