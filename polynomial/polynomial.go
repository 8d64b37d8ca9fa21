// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/linalg/num"
)

// Polynomial is Σ cᵢ·x^(n-1-i) over coefficients c₀…cₙ₋₁.
// The zero value is the zero polynomial.
type Polynomial[T num.Real] struct {
	coeffs []T
}

// New returns the polynomial with the given coefficients, highest power
// first. The slice is copied; leading zeros are kept.
func New[T num.Real](coeffs ...T) Polynomial[T] {
	return Polynomial[T]{coeffs: slices.Clone(coeffs)}
}

// Coefficients returns a copy of the coefficients, highest power first.
func (p Polynomial[T]) Coefficients() []T { return slices.Clone(p.coeffs) }

// Len is the number of stored coefficients, leading zeros included.
func (p Polynomial[T]) Len() int { return len(p.coeffs) }

// Minify returns p without leading zero coefficients.
func (p Polynomial[T]) Minify() Polynomial[T] {
	return Polynomial[T]{coeffs: slices.Clone(trimLeading(p.coeffs))}
}

// trimLeading returns the suffix of c starting at its first non-zero entry.
func trimLeading[T num.Real](c []T) []T {
	for k, v := range c {
		if v != 0 {
			return c[k:]
		}
	}

	return c[len(c):]
}

// Degree is the highest power with a non-zero coefficient, or -1 for the
// zero polynomial.
func (p Polynomial[T]) Degree() int { return len(trimLeading(p.coeffs)) - 1 }

// IsZero reports whether every coefficient is zero.
func (p Polynomial[T]) IsZero() bool { return p.Degree() < 0 }

// Equal reports whether p and o have the same minified coefficients.
func (p Polynomial[T]) Equal(o Polynomial[T]) bool {
	return slices.Equal(trimLeading(p.coeffs), trimLeading(o.coeffs))
}

// Eval evaluates p at x with Horner's scheme, in the arithmetic of T.
func (p Polynomial[T]) Eval(x T) T {
	var acc T
	for _, c := range p.coeffs {
		acc = acc*x + c
	}

	return acc
}

// EvalFloat evaluates p at x in float64, whatever T is.
func (p Polynomial[T]) EvalFloat(x float64) float64 {
	var acc float64
	for _, c := range p.coeffs {
		acc = acc*x + float64(c)
	}

	return acc
}

// Dtype converts every coefficient to Q with num.Convert.
//
// Errors:
//   - num.ErrConversion naming the first coefficient that does not fit.
func Dtype[Q, T num.Real](p Polynomial[T]) (Polynomial[Q], error) {
	out := make([]Q, len(p.coeffs))
	for k, c := range p.coeffs {
		q, err := num.Convert[Q](c)
		if err != nil {
			return Polynomial[Q]{}, fmt.Errorf("polynomial: coefficient %d: %w", k, err)
		}
		out[k] = q
	}

	return Polynomial[Q]{coeffs: out}, nil
}

// aligned returns copies of a and b left-padded with zeros to equal length.
func aligned[T num.Real](a, b []T) (x, y []T) {
	n := max(len(a), len(b))
	x = make([]T, n)
	y = make([]T, n)
	copy(x[n-len(a):], a)
	copy(y[n-len(b):], b)

	return x, y
}

// Add returns p + o, minified.
func (p Polynomial[T]) Add(o Polynomial[T]) Polynomial[T] {
	x, y := aligned(p.coeffs, o.coeffs)
	for k := range x {
		x[k] += y[k]
	}

	return Polynomial[T]{coeffs: trimLeading(x)}
}

// Sub returns p - o, minified.
func (p Polynomial[T]) Sub(o Polynomial[T]) Polynomial[T] {
	x, y := aligned(p.coeffs, o.coeffs)
	for k := range x {
		x[k] -= y[k]
	}

	return Polynomial[T]{coeffs: trimLeading(x)}
}

// Mul returns the product p·o, minified.
//
// Complexity:
//   - Time O(len(p)·len(o)), Space O(len(p)+len(o)).
func (p Polynomial[T]) Mul(o Polynomial[T]) Polynomial[T] {
	a, b := trimLeading(p.coeffs), trimLeading(o.coeffs)
	if len(a) == 0 || len(b) == 0 {
		return Polynomial[T]{}
	}

	out := make([]T, len(a)+len(b)-1)
	var i, j int
	for i = range a {
		for j = range b {
			out[i+j] += a[i] * b[j]
		}
	}

	return Polynomial[T]{coeffs: trimLeading(out)}
}

// Neg returns -p. Leading zeros are kept.
func (p Polynomial[T]) Neg() Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for k, c := range p.coeffs {
		out[k] = -c
	}

	return Polynomial[T]{coeffs: out}
}

// Scale returns k·p, minified.
func (p Polynomial[T]) Scale(k T) Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * k
	}

	return Polynomial[T]{coeffs: trimLeading(out)}
}

// AddScalar returns p + k, minified.
func (p Polynomial[T]) AddScalar(k T) Polynomial[T] { return p.Add(New(k)) }

// SubScalar returns p - k, minified.
func (p Polynomial[T]) SubScalar(k T) Polynomial[T] { return p.Sub(New(k)) }
