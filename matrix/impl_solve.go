// SPDX-License-Identifier: MIT

// Package matrix: linear solves and inversion on top of PLU.
//
// Both operations factor A = P·L·U once and then run forward substitution
// through L (which carries the pivots) and back substitution through the
// unit-diagonal U, one right-hand column at a time. PLU itself only rejects
// exact zero pivots; a float matrix that is singular up to rounding leaves a
// pivot of order ε·max|aᵢⱼ|, so the pivots are checked against the
// WithPivotTol tolerance before substituting.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/num"
)

// ErrSingular is returned by Solve and Inverse when m admits no PLU
// factorisation, or when a pivot is zero within the pivot tolerance.
var ErrSingular = errors.New("matrix: singular matrix")

// substitute overwrites column col of x with the solution of L·U·x = b[:,col],
// where b is already row-permuted.
func substitute[E num.Element](ar num.Arith[E], lower, upper, b, x *Matrix[E], col int) {
	n := lower.r
	k := b.c

	var i, j int
	var acc E
	// L·y = b, y stored in x.
	for i = 0; i < n; i++ {
		acc = b.data[i*k+col]
		for j = 0; j < i; j++ {
			acc = ar.Sub(acc, ar.Mul(lower.data[i*n+j], x.data[j*k+col]))
		}
		x.data[i*k+col] = ar.Div(acc, lower.data[i*n+i])
	}
	// U·x = y; U has a unit diagonal.
	for i = n - 1; i >= 0; i-- {
		acc = x.data[i*k+col]
		for j = i + 1; j < n; j++ {
			acc = ar.Sub(acc, ar.Mul(upper.data[i*n+j], x.data[j*k+col]))
		}
		x.data[i*k+col] = acc
	}
}

// machineEps is the unit roundoff of E's float kind, zero for integers.
func machineEps[E num.Element]() float64 {
	var zero E
	switch any(zero).(type) {
	case float32, num.Complex[float32]:
		return num.Epsilon32
	case float64, num.Complex[float64]:
		return num.Epsilon64
	}

	return 0
}

// checkPivots fails when a diagonal entry of lower is within tol·max|aᵢⱼ|
// of zero.
func checkPivots[E num.Element](ar num.Arith[E], m, lower *Matrix[E], tol float64) error {
	n := m.r
	if tol < 0 {
		tol = float64(n) * machineEps[E]()
	}

	var scale float64
	for _, v := range m.data {
		scale = max(scale, ar.Magnitude(v))
	}

	limit := tol * scale
	for i := 0; i < n; i++ {
		if p := ar.Magnitude(lower.data[i*n+i]); p <= limit {
			return fmt.Errorf("pivot %d is %g, within %g of zero: %w", i, p, limit, ErrSingular)
		}
	}

	return nil
}

// solvePLU factors m and solves m·X = b column by column.
func solvePLU[E num.Element](op string, m, b *Matrix[E], opts []Option) (*Matrix[E], error) {
	p, lower, upper, err := m.PLU()
	if errors.Is(err, ErrNoDecomposition) {
		return nil, matrixErrorf(op, fmt.Errorf("%w: %w", ErrSingular, err))
	}
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	ar := num.ArithOf[E]()
	if err = checkPivots(ar, m, lower, gatherOptions(opts...).ptol); err != nil {
		return nil, matrixErrorf(op, err)
	}

	// m = P·L·U, so L·U·X = Pᵀ·b.
	pt, _ := p.Transpose()
	pb, err := pt.Mul(b)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	x := alloc[E](b.r, b.c)
	for col := 0; col < b.c; col++ {
		substitute(ar, lower, upper, pb, x, col)
	}

	return x, nil
}

// Solve returns X with m·X = b. b may hold several right-hand sides as
// columns; a column vector b yields a column vector X.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch when b.Rows()
// differs from m.Rows(), ErrSingular (see WithPivotTol).
//
// Integer element types truncate during substitution; use floats.
func (m *Matrix[E]) Solve(b *Matrix[E], opts ...Option) (*Matrix[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.r != m.r {
		return nil, matrixErrorf(opSolve,
			fmt.Errorf("%d×%d by %d×%d: %w", m.r, m.c, b.r, b.c, ErrDimensionMismatch))
	}

	return solvePLU(opSolve, m, b, opts)
}

// Inverse returns m⁻¹ by solving m·X = I.
// Implementation:
//   - Stage 1: validate that m is square.
//   - Stage 2: factor m = P·L·U and check the pivots against WithPivotTol.
//   - Stage 3: for each identity column eᵢ, solve L·y = Pᵀ·eᵢ then U·x = y.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n!·n³) worst case through PLU, O(n³) when LU succeeds directly.
func (m *Matrix[E]) Inverse(opts ...Option) (*Matrix[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return solvePLU(opInverse, m, MustIdentity[E](m.r), opts)
}
