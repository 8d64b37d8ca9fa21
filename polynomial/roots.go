// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"math"
)

// RealRoots returns the real roots of p in float64.
// Implementation:
//   - Stage 1: minify; the degree picks the closed form.
//   - Stage 2: degree 0 has no roots, degree 1 has -b/a.
//   - Stage 3: degree 2 uses the discriminant d = b²-4ac. d < 0 gives no
//     roots, d == 0 one double root -b/2a, d > 0 the pair
//     (-b+√d)/2a, (-b-√d)/2a in that order.
//
// Behavior highlights:
//   - Coefficients are widened to float64 before any arithmetic, so integer
//     overflow in b²-4ac cannot occur.
//
// Errors:
//   - ErrZeroPolynomial for the zero polynomial.
//   - ErrUnsupportedDegree above degree 2.
func (p Polynomial[T]) RealRoots() ([]float64, error) {
	c := trimLeading(p.coeffs)
	switch len(c) {
	case 0:
		return nil, ErrZeroPolynomial
	case 1:
		return []float64{}, nil
	case 2:
		return []float64{-float64(c[1]) / float64(c[0])}, nil
	case 3:
		a, b, cc := float64(c[0]), float64(c[1]), float64(c[2])
		d := b*b - 4*a*cc
		switch {
		case d < 0:
			return []float64{}, nil
		case d == 0:
			return []float64{-b / (2 * a)}, nil
		default:
			sd := math.Sqrt(d)
			return []float64{(-b + sd) / (2 * a), (-b - sd) / (2 * a)}, nil
		}
	default:
		return nil, fmt.Errorf("degree %d: %w", len(c)-1, ErrUnsupportedDegree)
	}
}
