// SPDX-License-Identifier: MIT

// Package perm enumerates permutations of 0..n-1 lazily and computes their
// parity. It backs the Leibniz determinant and the PLU search of package
// matrix, both of which need every ordering once, in a fixed order, without
// materialising n! slices.
package perm

import (
	"iter"
	"slices"
)

// All yields every permutation of 0..n-1 in lexicographic order, starting
// from the identity. n == 0 yields the single empty permutation; negative n
// yields nothing.
//
// The sequence is restartable: each range over it starts again from the
// identity. The yielded slice is reused between steps; callers that keep it
// must copy it.
//
// Complexity: O(n) per step amortised, O(n) memory.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 {
			return
		}

		p := Identity(n)
		for {
			if !yield(p) {
				return
			}
			if !Next(p) {
				return
			}
		}
	}
}

// Identity returns the permutation [0, 1, ..., n-1].
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Next rearranges p into its lexicographic successor and reports whether
// there was one. On false p is left unchanged (it was the last permutation).
func Next(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}

// Inversions counts the pairs i < j with p[i] > p[j].
func Inversions(p []int) int {
	var count int
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				count++
			}
		}
	}

	return count
}

// Sign returns +1 for an even permutation and -1 for an odd one.
func Sign(p []int) int {
	if Inversions(p)%2 == 0 {
		return 1
	}

	return -1
}

// Factorial returns n!, the length of All(n). It reports false on overflow
// or for negative n.
func Factorial(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}

	f := 1
	for i := 2; i <= n; i++ {
		if f > int(^uint(0)>>1)/i {
			return 0, false
		}
		f *= i
	}

	return f, true
}
