// Package linalg is a small-matrix linear-algebra toolkit with generic
// element types: integers, floats and complex numbers share one
// implementation.
//
// What is in the box:
//
//	num/        numeric traits (Abs, Pow, Root, Epsilon), checked Convert, Complex[T]
//	perm/       lazy lexicographic permutations and their parity
//	matrix/     Matrix/Vector core, determinant, cofactors, LU/PLU, inverse, norms, rotations
//	polynomial/ coefficient polynomials: arithmetic, evaluation, real roots
//	plot/       terminal plots of polynomials
//	display/    styled terminal rendering of matrices and polynomials
//	config/     YAML documents naming matrices and polynomials
//	cmd/linalg  command-line front end
//
// Quick example:
//
//	a := matrix.MustNew([][]int{{2, -8}, {1, -1}})
//	det, _ := a.Determinant() // 6
//
// Matrices are dense and small by intent: the determinant and PLU search
// enumerate permutations, which costs n! steps.
//
//	go get github.com/katalvlaran/linalg
package linalg
