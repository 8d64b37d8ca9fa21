// SPDX-License-Identifier: MIT

package num

import (
	"math"
	"math/bits"
)

// Machine epsilons: the gap between 1 and the next representable value.
const (
	Epsilon32 = 0x1p-23
	Epsilon64 = 0x1p-52
)

// Abs returns the magnitude of x. Unsigned values are returned unchanged.
// The most negative value of a signed type wraps to itself, as in Go.
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Pow returns x raised to the p-th power.
//
// Integer types use exponentiation by squaring and wrap on overflow; float
// types use math.Pow. The exponent is unsigned, so a negative integer
// exponent cannot be expressed.
func Pow[T Real](x T, p uint) T {
	switch v := any(x).(type) {
	case float32:
		return T(math.Pow(float64(v), float64(p)))
	case float64:
		return T(math.Pow(v, float64(p)))
	}

	result, base := T(1), x
	for p > 0 {
		if p&1 == 1 {
			result *= base
		}
		base *= base
		p >>= 1
	}

	return result
}

// Root returns the n-th root of x.
//
// Integer types return the floor of the root (toward zero for negative x with
// odd n). Float types return x^(1/n); odd roots of negative floats are real,
// even roots of negative floats are NaN.
//
// Root panics with ErrDomain when n is zero, or when n is even and x is a
// negative integer.
func Root[T Real](x T, n uint) T {
	if n == 0 {
		domainPanic("Root", x)
	}

	switch v := any(x).(type) {
	case float32:
		return T(floatRoot(float64(v), n))
	case float64:
		return T(floatRoot(v, n))
	}

	if x < 0 {
		if n%2 == 0 {
			domainPanic("Root", x)
		}
		// -(x+1) cannot overflow, even for the most negative value.
		return -T(intRoot(uint64(-(x+1))+1, n))
	}

	return T(intRoot(uint64(x), n))
}

func floatRoot(x float64, n uint) float64 {
	switch {
	case n == 1:
		return x
	case n == 2:
		return math.Sqrt(x)
	case n == 3:
		return math.Cbrt(x)
	case x < 0 && n%2 == 1:
		return -math.Pow(-x, 1/float64(n))
	}

	return math.Pow(x, 1/float64(n))
}

// intRoot is the exact floor n-th root of x. The float estimate is corrected
// in both directions with overflow-checked powers.
func intRoot(x uint64, n uint) uint64 {
	if x < 2 || n == 1 {
		return x
	}

	r := uint64(math.Pow(float64(x), 1/float64(n)))
	for r > 0 && !powAtMost(r, n, x) {
		r--
	}
	for powAtMost(r+1, n, x) {
		r++
	}

	return r
}

// powAtMost reports whether b^n <= limit without overflowing.
func powAtMost(b uint64, n uint, limit uint64) bool {
	if b <= 1 {
		return b <= limit
	}

	acc := uint64(1)
	for i := uint(0); i < n; i++ {
		hi, lo := bits.Mul64(acc, b)
		if hi != 0 || lo > limit {
			return false
		}
		acc = lo
	}

	return true
}

// NormP returns (Σ |xᵢ|ᵖ)^(1/p), the p-norm of values. p must be at least 1.
//
// Float types accumulate in T. Integer types accumulate |xᵢ|ᵖ exactly in
// uint64 and return the floor root, so the sum cannot wrap in T; a sum beyond
// uint64, or a root that does not fit T, fails with ErrConversion.
func NormP[T Real](values []T, p uint) (T, error) {
	if p == 0 {
		domainPanic("NormP", p)
	}

	if kindOf[T]().float {
		var sum T
		for _, v := range values {
			sum += Pow(Abs(v), p)
		}

		return Root(sum, p), nil
	}

	var sum, carry uint64
	for _, v := range values {
		term, ok := powUint64(absUint64(v), p)
		if sum, carry = bits.Add64(sum, term, 0); !ok || carry != 0 {
			return 0, conversionErrorf[T](values, "sum of powers overflows uint64")
		}
	}

	return Convert[T](intRoot(sum, p))
}

// absUint64 is |x| for an integer x, exact for the most negative value.
func absUint64[T Real](x T) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}

// powUint64 is b^n; ok is false on overflow.
func powUint64(b uint64, n uint) (acc uint64, ok bool) {
	acc = 1
	var hi uint64
	for i := uint(0); i < n; i++ {
		if hi, acc = bits.Mul64(acc, b); hi != 0 {
			return 0, false
		}
	}

	return acc, true
}

// MachineEpsilon returns the machine epsilon of F.
func MachineEpsilon[F Float]() F {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return F(Epsilon32)
	}

	return F(Epsilon64)
}

// Epsilon returns zero when |x| is below the machine epsilon of F, else x.
// It cleans rounding noise such as cos(π/2) out of trigonometric results.
// Integer types have no meaningful epsilon and are rejected by the constraint.
func Epsilon[F Float](x F) F {
	if Abs(x) < MachineEpsilon[F]() {
		return 0
	}

	return x
}

// Conv widens a float element to the float64 radian representation used by
// rotation generators.
func Conv[F Float](x F) float64 { return float64(x) }

// Back narrows a float64 radian value to F.
func Back[F Float](r float64) F { return F(r) }
