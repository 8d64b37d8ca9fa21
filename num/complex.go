// SPDX-License-Identifier: MIT

package num

import (
	"fmt"
	"strings"
)

// Complex is a complex number whose parts share the Real type T.
//
// It is a value type: arithmetic returns new values, the *Assign methods
// update the receiver in place. Division by zero follows T: integer parts
// panic with Go's runtime divide-by-zero error, float parts produce Inf/NaN.
type Complex[T Real] struct {
	re, im T
}

// FromComplex builds re + im·i.
func FromComplex[T Real](re, im T) Complex[T] { return Complex[T]{re: re, im: im} }

// FromReal promotes a real value to a complex one with zero imaginary part.
func FromReal[T Real](re T) Complex[T] { return Complex[T]{re: re} }

// FromImaginary builds the purely imaginary value im·i.
func FromImaginary[T Real](im T) Complex[T] { return Complex[T]{im: im} }

// Real returns the real part.
func (c Complex[T]) Real() T { return c.re }

// Imag returns the imaginary part.
func (c Complex[T]) Imag() T { return c.im }

// Conj returns the complex conjugate.
func (c Complex[T]) Conj() Complex[T] { return Complex[T]{re: c.re, im: -c.im} }

// ElementAbs applies Abs to each part independently. It is not the modulus.
func (c Complex[T]) ElementAbs() Complex[T] {
	return Complex[T]{re: Abs(c.re), im: Abs(c.im)}
}

// Modulus returns √(re² + im²) computed with Pow and Root, so integer parts
// yield the floor of the true modulus.
func (c Complex[T]) Modulus() T {
	return Root(Pow(c.re, 2)+Pow(c.im, 2), 2)
}

// Absolute returns the modulus as a Complex with zero imaginary part, which
// keeps |z| usable as a matrix element of the same type.
func (c Complex[T]) Absolute() Complex[T] { return Complex[T]{re: c.Modulus()} }

// IsZero reports whether both parts are zero.
func (c Complex[T]) IsZero() bool { return c.re == 0 && c.im == 0 }

// Add returns c + o.
func (c Complex[T]) Add(o Complex[T]) Complex[T] {
	return Complex[T]{re: c.re + o.re, im: c.im + o.im}
}

// Sub returns c - o.
func (c Complex[T]) Sub(o Complex[T]) Complex[T] {
	return Complex[T]{re: c.re - o.re, im: c.im - o.im}
}

// Mul returns c · o = (ac - bd) + (ad + bc)i.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	return Complex[T]{
		re: c.re*o.re - c.im*o.im,
		im: c.re*o.im + c.im*o.re,
	}
}

// Div returns c / o, multiplying by the conjugate of o and dividing both
// parts by |o|².
func (c Complex[T]) Div(o Complex[T]) Complex[T] {
	den := o.re*o.re + o.im*o.im

	return Complex[T]{
		re: (c.re*o.re + c.im*o.im) / den,
		im: (c.im*o.re - c.re*o.im) / den,
	}
}

// Neg returns -c.
func (c Complex[T]) Neg() Complex[T] { return Complex[T]{re: -c.re, im: -c.im} }

// Scale multiplies both parts by the real factor k.
func (c Complex[T]) Scale(k T) Complex[T] { return Complex[T]{re: c.re * k, im: c.im * k} }

// AddAssign sets c = c + o.
func (c *Complex[T]) AddAssign(o Complex[T]) { *c = c.Add(o) }

// SubAssign sets c = c - o.
func (c *Complex[T]) SubAssign(o Complex[T]) { *c = c.Sub(o) }

// MulAssign sets c = c · o.
func (c *Complex[T]) MulAssign(o Complex[T]) { *c = c.Mul(o) }

// DivAssign sets c = c / o.
func (c *Complex[T]) DivAssign(o Complex[T]) { *c = c.Div(o) }

// String formats c as "a+bi" or "a-bi".
func (c Complex[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", c.re)
	if c.im < 0 {
		fmt.Fprintf(&b, "-%vi", Abs(c.im))
	} else {
		fmt.Fprintf(&b, "+%vi", c.im)
	}

	return b.String()
}

// ConvertComplex converts both parts of c to Q with Convert.
func ConvertComplex[Q, T Real](c Complex[T]) (Complex[Q], error) {
	re, err := Convert[Q](c.re)
	if err != nil {
		return Complex[Q]{}, fmt.Errorf("real part: %w", err)
	}
	im, err := Convert[Q](c.im)
	if err != nil {
		return Complex[Q]{}, fmt.Errorf("imaginary part: %w", err)
	}

	return Complex[Q]{re: re, im: im}, nil
}

// arith lets ArithOf resolve the dictionary of any Complex instantiation.
func (Complex[T]) arith() any { return complexArith[T]{} }
