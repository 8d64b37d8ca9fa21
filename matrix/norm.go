// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/num"
)

// Norm reduces the components of a vector to one scalar. The set of norms is
// closed: Euclidean, Manhattan, PNorm and Custom.
//
// Norms return the element type itself, so integer vectors get integer
// results: the Euclidean norm of [3, 4, 5] over int is ⌊√50⌋ = 7. Integer
// powers are summed in uint64, never in T; a norm that does not fit T
// fails with num.ErrConversion.
type Norm[T num.Real] interface {
	// Of evaluates the norm over values.
	Of(values []T) (T, error)

	norm() // seals the set
}

// Euclidean is √(Σ xᵢ²).
type Euclidean[T num.Real] struct{}

// Manhattan is Σ |xᵢ|.
type Manhattan[T num.Real] struct{}

// PNorm is (Σ |xᵢ|ᵖ)^(1/p) for an integer p >= 1.
type PNorm[T num.Real] struct{ P uint }

// Custom delegates to F.
type Custom[T num.Real] struct{ F func(values []T) T }

func (Euclidean[T]) norm() {}
func (Manhattan[T]) norm() {}
func (PNorm[T]) norm()     {}
func (Custom[T]) norm()    {}

// Of implements Norm.
func (Euclidean[T]) Of(values []T) (T, error) { return num.NormP(values, 2) }

// Of implements Norm.
func (Manhattan[T]) Of(values []T) (T, error) { return num.NormP(values, 1) }

// Of implements Norm. P == 0 fails with ErrInvalidNorm.
func (n PNorm[T]) Of(values []T) (T, error) {
	if n.P == 0 {
		return 0, fmt.Errorf("p-norm with p=0: %w", ErrInvalidNorm)
	}

	return num.NormP(values, n.P)
}

// Of implements Norm. A nil F fails with ErrInvalidNorm.
func (n Custom[T]) Of(values []T) (T, error) {
	if n.F == nil {
		return 0, fmt.Errorf("custom norm without function: %w", ErrInvalidNorm)
	}

	return n.F(values), nil
}
