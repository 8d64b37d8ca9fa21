// SPDX-License-Identifier: MIT

package polynomial

import "errors"

var (
	// ErrUnsupportedDegree is returned by RealRoots above degree 2.
	ErrUnsupportedDegree = errors.New("polynomial: real roots above degree 2 are not supported")

	// ErrZeroPolynomial is returned by RealRoots for the zero polynomial,
	// which vanishes everywhere.
	ErrZeroPolynomial = errors.New("polynomial: the zero polynomial has no finite root set")
)
