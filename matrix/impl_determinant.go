// SPDX-License-Identifier: MIT

// Package matrix: determinant, cofactor and adjoint.
//
// Determinant dispatches by size: closed forms for 1×1 through 3×3 and the
// Leibniz permutation sum above that. Leibniz is O(n!·n) and meant for small
// matrices; it is exact for integer elements, which elimination is not.

package matrix

import (
	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/perm"
)

// Determinant returns det(m).
// Implementation:
//   - 0×0: 1 (the empty product).
//   - 1×1: the element; 2×2: ad - bc; 3×3: the six-term expansion.
//   - n ≥ 4: Σ_σ sign(σ)·Πᵢ m[i, σ(i)] over perm.All(n).
//
// Behavior highlights:
//   - Integer elements give exact results as long as the products fit; they
//     wrap on overflow exactly like Go integer arithmetic.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - O(1) up to 3×3, then Time O(n!·n), Space O(n).
//
// Notes:
//   - Beyond roughly 10×10 the permutation sum is impractically slow; prefer
//     an LU-based determinant for larger float matrices.
func (m *Matrix[E]) Determinant() (E, error) {
	if err := ValidateSquare(m); err != nil {
		var zero E
		return zero, matrixErrorf(opDeterminant, err)
	}

	return determinant(m), nil
}

// LeibnizDeterminant evaluates the permutation sum for every size, skipping
// the closed forms. It exists to cross-check them.
func (m *Matrix[E]) LeibnizDeterminant() (E, error) {
	if err := ValidateSquare(m); err != nil {
		var zero E
		return zero, matrixErrorf(opDeterminant, err)
	}

	return leibniz(m), nil
}

func determinant[E num.Element](m *Matrix[E]) E {
	ar := num.ArithOf[E]()
	d := m.data

	switch m.r {
	case 0:
		return ar.One()
	case 1:
		return d[0]
	case 2:
		return ar.Sub(ar.Mul(d[0], d[3]), ar.Mul(d[1], d[2]))
	case 3:
		// a(ei − fh) − b(di − fg) + c(dh − eg)
		a, b, c := d[0], d[1], d[2]
		dd, e, f := d[3], d[4], d[5]
		g, h, i := d[6], d[7], d[8]
		t0 := ar.Mul(a, ar.Sub(ar.Mul(e, i), ar.Mul(f, h)))
		t1 := ar.Mul(b, ar.Sub(ar.Mul(dd, i), ar.Mul(f, g)))
		t2 := ar.Mul(c, ar.Sub(ar.Mul(dd, h), ar.Mul(e, g)))

		return ar.Add(ar.Sub(t0, t1), t2)
	}

	return leibniz(m)
}

func leibniz[E num.Element](m *Matrix[E]) E {
	ar := num.ArithOf[E]()
	n := m.r

	sum := ar.Zero()
	var term E
	for p := range perm.All(n) {
		term = ar.One()
		for i, col := range p {
			term = ar.Mul(term, m.data[i*n+col])
		}
		if perm.Sign(p) < 0 {
			sum = ar.Sub(sum, term)
		} else {
			sum = ar.Add(sum, term)
		}
	}

	return sum
}

// Minor returns m without row r and column c.
func (m *Matrix[E]) Minor(r, c int) (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if _, err := m.indexOf(r, c); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return minor(m, r, c), nil
}

func minor[E num.Element](m *Matrix[E], r, c int) *Matrix[E] {
	out := alloc[E](m.r-1, m.c-1)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == r {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == c {
				continue
			}
			out.data[k] = m.data[i*m.c+j]
			k++
		}
	}

	return out
}

// cofactor is (-1)^(r+c)·det(minor(r, c)) for a valid square m.
func cofactor[E num.Element](m *Matrix[E], r, c int) E {
	v := determinant(minor(m, r, c))
	if (r+c)%2 == 1 {
		return num.ArithOf[E]().Neg(v)
	}

	return v
}

// Cofactor returns the signed minor (-1)^(r+c)·det(Minor(r, c)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, *IndexError for (r, c) outside m.
func (m *Matrix[E]) Cofactor(r, c int) (E, error) {
	var zero E
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}
	if _, err := m.indexOf(r, c); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}

	return cofactor(m, r, c), nil
}

// CofactorMatrix returns the matrix C with C[r,c] = Cofactor(r, c).
// Complexity: n² determinants of size n-1.
func (m *Matrix[E]) CofactorMatrix() (*Matrix[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	n := m.r
	out := alloc[E](n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.data[r*n+c] = cofactor(m, r, c)
		}
	}

	return out, nil
}

// Adjoint returns the adjugate: the transpose of the cofactor matrix.
func (m *Matrix[E]) Adjoint() (*Matrix[E], error) {
	cm, err := m.CofactorMatrix()
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	if err = cm.TransposeSet(); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return cm, nil
}

// Trace returns the sum of the diagonal of a square matrix.
func (m *Matrix[E]) Trace() (E, error) {
	if err := ValidateSquare(m); err != nil {
		var zero E
		return zero, matrixErrorf(opTrace, err)
	}

	ar := num.ArithOf[E]()
	sum := ar.Zero()
	for i := 0; i < m.r; i++ {
		sum = ar.Add(sum, m.data[i*m.c+i])
	}

	return sum, nil
}

// Diag returns the main diagonal as a row vector of length min(rows, cols).
func (m *Matrix[E]) Diag() *Matrix[E] {
	n := min(m.r, m.c)
	v := alloc[E](1, n)
	for i := 0; i < n; i++ {
		v.data[i] = m.data[i*m.c+i]
	}

	return v
}
