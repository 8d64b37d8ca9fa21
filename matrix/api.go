// SPDX-License-Identifier: MIT
// Package matrix: generic constructors.
//
// Purpose:
//   - Zero (Empty) and identity generators parameterised only by the element
//     type, built from its additive and multiplicative identities.
//   - *Like helpers that size a new matrix after an existing one.
//
// Rotation generators live in rotation.go.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/num"
)

// Empty returns a rows×cols matrix of zeros. Zero-sized shapes are allowed.
//
// Errors:
//   - ErrBadShape for negative dimensions.
func Empty[E num.Element](rows, cols int) (*Matrix[E], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opEmpty, fmt.Errorf("%d×%d: %w", rows, cols, ErrBadShape))
	}

	return alloc[E](rows, cols), nil
}

// Identity returns the n×n identity matrix.
//
// Errors:
//   - ErrBadShape for negative n.
func Identity[E num.Element](n int) (*Matrix[E], error) {
	if n < 0 {
		return nil, matrixErrorf(opIdentity, fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}

	one := num.ArithOf[E]().One()
	m := alloc[E](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// MustIdentity is Identity for a literal non-negative n.
func MustIdentity[E num.Element](n int) *Matrix[E] {
	m, err := Identity[E](n)
	if err != nil {
		panic(err)
	}

	return m
}

// EmptyLike returns a zero matrix with the shape of m.
func EmptyLike[E num.Element](m *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEmpty, err)
	}

	return alloc[E](m.r, m.c), nil
}

// IdentityLike returns the identity with the shape of the square matrix m.
func IdentityLike[E num.Element](m *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return Identity[E](m.r)
}
