// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by kernel tests.
//   • Structural property checks (triangularity, reconstruction).

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/num"
)

// Fixtures with known determinants.
var (
	det3Fixture = [][]int64{
		{-89, 44, -122},
		{52, 48, -39},
		{-26, -102, -112},
	}
	det3Value int64 = 1628210

	det5Fixture = [][]int64{
		{-109, 16, -29, -21, -18},
		{-86, 88, -29, 50, -33},
		{59, 115, -93, 65, -101},
		{-43, -36, -72, 34, -69},
		{66, 71, 93, 103, -45},
	}
	det5Value int64 = -10037210765
)

// MustMatrix builds a matrix from literal rows or fails the test.
func MustMatrix[E num.Element](t testing.TB, rows [][]E) *matrix.Matrix[E] {
	t.Helper()

	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// RequireRows checks shape and every element of got against want.
func RequireRows[E num.Element](t testing.TB, want [][]E, got *matrix.Matrix[E]) {
	t.Helper()

	require.NotNil(t, got)
	require.Equal(t, want, got.Data())
}

// RequireClose checks got against want with AllClose under opts.
func RequireClose[F num.Float](t testing.TB, want [][]F, got *matrix.Matrix[F], opts ...matrix.Option) {
	t.Helper()

	w := MustMatrix(t, want)
	ok, err := matrix.AllClose(got, w, opts...)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%vgot:\n%v", w, got)
}

// propLowerTriangular asserts that every element above the diagonal is zero.
func propLowerTriangular[E num.Element](t testing.TB, m *matrix.Matrix[E]) {
	t.Helper()

	var zero E
	m.Do(func(i, j int, v E) bool {
		if j > i {
			require.Equal(t, zero, v, "L[%d,%d] must be zero", i, j)
		}
		return true
	})
}

// propUnitUpperTriangular asserts zeros below the diagonal and ones on it.
func propUnitUpperTriangular[F num.Float](t testing.TB, m *matrix.Matrix[F]) {
	t.Helper()

	m.Do(func(i, j int, v F) bool {
		switch {
		case j < i:
			require.Equal(t, F(0), v, "U[%d,%d] must be zero", i, j)
		case j == i:
			require.InDelta(t, 1, float64(v), 1e-12, "U[%d,%d] must be one", i, i)
		}
		return true
	})
}

// propReconstruction asserts that the product of factors reproduces a.
func propReconstruction[F num.Float](t testing.TB, a *matrix.Matrix[F], factors ...*matrix.Matrix[F]) {
	t.Helper()

	prod := factors[0]
	var err error
	for _, f := range factors[1:] {
		prod, err = prod.Mul(f)
		require.NoError(t, err)
	}
	ok, err := matrix.AllClose(prod, a, matrix.WithAbsTol(1e-9))
	require.NoError(t, err)
	require.True(t, ok, "product:\n%vwant:\n%v", prod, a)
}

// requireIndexPanic runs f and checks it panics with an *IndexError on axis.
func requireIndexPanic(t *testing.T, axis string, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok)
		var ie *matrix.IndexError
		require.True(t, errors.As(err, &ie))
		require.Equal(t, axis, ie.Axis)
	}()
	f()
}
