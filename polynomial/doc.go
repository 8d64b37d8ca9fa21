// SPDX-License-Identifier: MIT

// Package polynomial provides single-variable polynomials over the real
// element types of package num.
//
// A Polynomial stores its coefficients in decreasing order of power, so
// 3x²-5x+1 is New(3, -5, 1). Values are immutable: every operation returns a
// new Polynomial and never aliases its operands.
//
// Leading zero coefficients carry no information. Arithmetic results are
// minified (leading zeros removed); New keeps its input as given and Minify
// strips it on request. Equal compares minified forms.
//
// RealRoots solves degrees 0 through 2 in closed form. Higher degrees fail
// with ErrUnsupportedDegree.
package polynomial
