// SPDX-License-Identifier: MIT
// Package matrix: reductions.
//
// Purpose:
//   - Whole-matrix reductions: Sum (any element), Min/Max/MinMax (ordered
//     elements only).
//   - Row selection by a vector Norm: MaxRow, MinRow, MinMaxRow.
//
// Contract:
//   - Ordered reductions fail with ErrEmpty on a matrix with zero rows or
//     zero columns; there is no neutral minimum to return.
//   - Ties resolve to the first element or row in row-major order.
//   - NaN elements are skipped by comparisons, they never become the result
//     unless every element is NaN.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/num"
)

// Sum returns the sum of all elements; an empty matrix sums to zero.
func (m *Matrix[E]) Sum() E {
	ar := num.ArithOf[E]()
	sum := ar.Zero()
	for _, v := range m.data {
		sum = ar.Add(sum, v)
	}

	return sum
}

// Min returns the smallest element.
func Min[T num.Real](m *Matrix[T]) (T, error) {
	lo, _, err := minMax(m)
	if err != nil {
		return 0, matrixErrorf(opMin, err)
	}

	return lo, nil
}

// Max returns the largest element.
func Max[T num.Real](m *Matrix[T]) (T, error) {
	_, hi, err := minMax(m)
	if err != nil {
		return 0, matrixErrorf(opMax, err)
	}

	return hi, nil
}

// MinMax returns the smallest and the largest element in one pass.
func MinMax[T num.Real](m *Matrix[T]) (lo, hi T, err error) {
	if lo, hi, err = minMax(m); err != nil {
		return 0, 0, matrixErrorf(opMinMax, err)
	}

	return lo, hi, nil
}

func minMax[T num.Real](m *Matrix[T]) (lo, hi T, err error) {
	if err = ValidateNonEmpty(m); err != nil {
		return 0, 0, err
	}

	lo, hi = m.data[0], m.data[0]
	for _, v := range m.data[1:] {
		if v < lo || lo != lo { // lo != lo: replace a leading NaN
			lo = v
		}
		if v > hi || hi != hi {
			hi = v
		}
	}

	return lo, hi, nil
}

// rowNorms evaluates n over every row of m.
func rowNorms[T num.Real](m *Matrix[T], n Norm[T]) ([]T, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("nil norm: %w", ErrInvalidNorm)
	}

	out := make([]T, m.r)
	for i := range out {
		v, err := n.Of(m.data[i*m.c : (i+1)*m.c])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// rowByNorm returns the index of the row whose norm wins under better;
// the first row wins ties.
func rowByNorm[T num.Real](m *Matrix[T], n Norm[T], better func(a, b T) bool) (int, error) {
	norms, err := rowNorms(m, n)
	if err != nil {
		return 0, err
	}

	best := 0
	for i := 1; i < len(norms); i++ {
		if better(norms[i], norms[best]) {
			best = i
		}
	}

	return best, nil
}

// MaxRow returns the row with the largest norm and its index.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrInvalidNorm.
func MaxRow[T num.Real](m *Matrix[T], n Norm[T]) (*Matrix[T], int, error) {
	i, err := rowByNorm(m, n, func(a, b T) bool { return a > b })
	if err != nil {
		return nil, 0, matrixErrorf(opRowByNorm, err)
	}
	row, _ := m.Row(i)

	return row, i, nil
}

// MinRow returns the row with the smallest norm and its index.
func MinRow[T num.Real](m *Matrix[T], n Norm[T]) (*Matrix[T], int, error) {
	i, err := rowByNorm(m, n, func(a, b T) bool { return a < b })
	if err != nil {
		return nil, 0, matrixErrorf(opRowByNorm, err)
	}
	row, _ := m.Row(i)

	return row, i, nil
}

// MinMaxRow returns the rows with the smallest and the largest norm.
func MinMaxRow[T num.Real](m *Matrix[T], n Norm[T]) (minRow, maxRow *Matrix[T], err error) {
	norms, err := rowNorms(m, n)
	if err != nil {
		return nil, nil, matrixErrorf(opRowByNorm, err)
	}

	lo, hi := 0, 0
	for i := 1; i < len(norms); i++ {
		if norms[i] < norms[lo] {
			lo = i
		}
		if norms[i] > norms[hi] {
			hi = i
		}
	}
	minRow, _ = m.Row(lo)
	maxRow, _ = m.Row(hi)

	return minRow, maxRow, nil
}
