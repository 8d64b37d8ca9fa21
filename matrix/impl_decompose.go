// SPDX-License-Identifier: MIT

// Package matrix: LU and PLU decomposition.
//
// LU runs Doolittle-style elimination without pivoting and reports
// ErrNoDecomposition on the first zero pivot. PLU searches row permutations
// in lexicographic order for one that LU accepts. Both are meant for float
// elements: integer division truncates, so for integer matrices L·U only
// reproduces A when every division happens to be exact.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/perm"
)

// luDecompose factors the square matrix a. ok is false on a zero pivot.
func luDecompose[E num.Element](a *Matrix[E]) (lower, upper *Matrix[E], pivot int, ok bool) {
	ar := num.ArithOf[E]()
	n := a.r
	upper = a.Clone()
	lower = alloc[E](n, n)

	var i, j, r, base int
	var scale, f E
	for r = 0; r < n; r++ {
		base = r * n
		scale = upper.data[base+r]
		if ar.IsZero(scale) {
			return nil, nil, r, false
		}

		// Column r of the working upper becomes column r of lower.
		for i = r; i < n; i++ {
			lower.data[i*n+r] = upper.data[i*n+r]
		}

		// Normalise the pivot row; entries left of r are already zero.
		for j = r; j < n; j++ {
			upper.data[base+j] = ar.Div(upper.data[base+j], scale)
		}

		// Eliminate column r below the pivot.
		for i = r + 1; i < n; i++ {
			f = upper.data[i*n+r]
			if ar.IsZero(f) {
				continue
			}
			for j = r; j < n; j++ {
				upper.data[i*n+j] = ar.Sub(upper.data[i*n+j], ar.Mul(f, upper.data[base+j]))
			}
		}
	}

	return lower, upper, n, true
}

// LU factors a square matrix as m = L·U.
// Implementation:
//   - Stage 1: copy m into the working upper, allocate a zero lower.
//   - Stage 2: for each pivot row r: fail if upper[r,r] is zero; copy column
//     r (rows r..n-1) of upper into lower; divide row r of upper by the
//     pivot; subtract upper[i,r]·row r from every row i below.
//
// Behavior highlights:
//   - L is lower triangular and carries the pivots on its diagonal; U is
//     upper triangular with a unit diagonal.
//   - A zero pivot only means this elimination order fails; PLU may still
//     succeed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNoDecomposition (zero pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Integer element types truncate in the division step, so L·U == m holds
//     only when every division is exact.
func (m *Matrix[E]) LU() (lower, upper *Matrix[E], err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	lower, upper, pivot, ok := luDecompose(m)
	if !ok {
		return nil, nil, matrixErrorf(opLU,
			fmt.Errorf("zero pivot at (%d,%d): %w", pivot, pivot, ErrNoDecomposition))
	}

	return lower, upper, nil
}

// PLU factors m as P·L·U where P is a permutation matrix.
// Implementation:
//   - Stage 1: enumerate row orders σ with perm.All, lexicographically.
//   - Stage 2: build the matrix whose row i is row σ(i) of m and try LU.
//   - Stage 3: on the first success set P[σ(i), i] = 1 and return.
//
// Behavior highlights:
//   - Exhaustive and deterministic: the identity order is tried first, so a
//     matrix LU accepts yields P = I.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNoDecomposition when no order works
//     (e.g. a singular matrix).
//
// Complexity:
//   - Time O(n!·n³) in the worst case, Space O(n²).
func (m *Matrix[E]) PLU() (p, lower, upper *Matrix[E], err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opPLU, err)
	}

	n := m.r
	permuted := alloc[E](n, n)
	for order := range perm.All(n) {
		for i, src := range order {
			copy(permuted.data[i*n:(i+1)*n], m.data[src*n:(src+1)*n])
		}

		var ok bool
		if lower, upper, _, ok = luDecompose(permuted); ok {
			return Permutation[E](order), lower, upper, nil
		}
	}

	return nil, nil, nil, matrixErrorf(opPLU, ErrNoDecomposition)
}

// Permutation returns the n×n matrix P with P[order[i], i] = 1, so that
// P·A moves row i of A to row order[i]. order must be a permutation of
// 0..n-1; other input panics with an index error.
func Permutation[E num.Element](order []int) *Matrix[E] {
	ar := num.ArithOf[E]()
	n := len(order)
	p := alloc[E](n, n)
	for i, row := range order {
		p.MustSet(row, i, ar.One())
	}

	return p
}
