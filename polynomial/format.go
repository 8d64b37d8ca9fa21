// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/num"
)

const superscriptDigits = "⁰¹²³⁴⁵⁶⁷⁸⁹"

// superscript renders a non-negative integer with Unicode superscript digits.
func superscript(n int) string {
	digits := []rune(superscriptDigits)
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		b.WriteRune(digits[d-'0'])
	}

	return b.String()
}

// formatCoeff prints v exactly, or rounded to prec decimals when prec >= 0
// and T is a float type.
func formatCoeff[T num.Real](v T, prec int) string {
	one, two := T(1), T(2)
	if prec < 0 || one/two == 0 { // integer division: T is integral
		return fmt.Sprint(v)
	}

	return strconv.FormatFloat(float64(v), 'f', prec, 64)
}

// String renders p in conventional notation, e.g. 3x²-5x+1. Zero terms are
// omitted, unit coefficients print as a bare sign, and the zero polynomial
// prints as 0.
func (p Polynomial[T]) String() string { return p.Format(-1) }

// Format is String with float coefficients rounded to prec decimals;
// prec < 0 prints the shortest exact representation.
func (p Polynomial[T]) Format(prec int) string {
	c := trimLeading(p.coeffs)
	if len(c) == 0 {
		return "0"
	}

	var b strings.Builder
	deg := len(c) - 1
	for k, v := range c {
		if v == 0 {
			continue
		}
		power := deg - k

		neg := v < 0
		mag := v
		if neg {
			mag = -v
		}
		switch {
		case neg:
			b.WriteByte('-')
		case b.Len() > 0:
			b.WriteByte('+')
		}
		if mag != 1 || power == 0 {
			b.WriteString(formatCoeff(mag, prec))
		}

		switch power {
		case 0:
		case 1:
			b.WriteByte('x')
		default:
			b.WriteByte('x')
			b.WriteString(superscript(power))
		}
	}

	return b.String()
}
