// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/num"
)

func TestDeterminant_Known(t *testing.T) {
	t.Parallel()

	d3, err := MustMatrix(t, det3Fixture).Determinant()
	require.NoError(t, err)
	assert.Equal(t, det3Value, d3)

	d5, err := MustMatrix(t, det5Fixture).Determinant()
	require.NoError(t, err)
	assert.Equal(t, det5Value, d5)

	d2, err := MustMatrix(t, [][]int{{-68, -23}, {-74, 17}}).Determinant()
	require.NoError(t, err)
	assert.Equal(t, -2858, d2)

	d4, err := MustMatrix(t, [][]float32{{1, 5, 3, 0}, {2, -9, -2, 10}, {11, 0, 5, -3}, {-7, 2, 4, -2}}).Determinant()
	require.NoError(t, err)
	assert.Equal(t, float32(-4111), d4)

	d1, err := MustMatrix(t, [][]int{{-7}}).Determinant()
	require.NoError(t, err)
	assert.Equal(t, -7, d1)
}

func TestDeterminant_Identity(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 6; n++ {
		d, err := matrix.MustIdentity[int](n).Determinant()
		require.NoError(t, err)
		assert.Equal(t, 1, d, "n=%d", n)
	}
}

func TestDeterminant_ClosedFormsMatchLeibniz(t *testing.T) {
	t.Parallel()

	cases := [][][]int64{
		{{5}},
		{{-68, -23}, {-74, 17}},
		{{3, 8}, {4, 6}},
		det3Fixture,
		{{-3, 2, -5}, {-1, 0, -2}, {3, -4, 1}},
		{{2, -8, 4}, {1, -1, 11}, {-3, 10, -8}},
	}
	for _, rows := range cases {
		m := MustMatrix(t, rows)
		fast, err := m.Determinant()
		require.NoError(t, err)
		slow, err := m.LeibnizDeterminant()
		require.NoError(t, err)
		assert.Equal(t, slow, fast, "%v", rows)
	}
}

func TestDeterminant_Complex(t *testing.T) {
	t.Parallel()

	// [[i, 1], [1, i]] → i·i - 1 = -2
	i := num.FromImaginary(1)
	one := num.FromReal(1)
	d, err := MustMatrix(t, [][]num.Complex[int]{{i, one}, {one, i}}).Determinant()
	require.NoError(t, err)
	assert.Equal(t, num.FromReal(-2), d)
}

func TestDeterminant_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := MustMatrix(t, [][]int{{1, 2, 3}}).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	var nilM *matrix.Matrix[int]
	_, err = nilM.Determinant()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCofactor(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{-67, 126, 15}, {22, 22, -83}, {61, -13, -119}})

	c00, err := m.Cofactor(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -3697, c00)

	// Checkerboard sign: (0,1) is negated.
	c01, err := m.Cofactor(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -2445, c01)

	// Expansion along row 0 reproduces the determinant.
	det, err := m.Determinant()
	require.NoError(t, err)
	c02, err := m.Cofactor(0, 2)
	require.NoError(t, err)
	assert.Equal(t, det, -67*c00+126*c01+15*c02)

	_, err = m.Cofactor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestCofactorMatrixAndAdjoint(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{-3, 2, -5}, {-1, 0, -2}, {3, -4, 1}})

	cm, err := m.CofactorMatrix()
	require.NoError(t, err)
	RequireRows(t, [][]int{{-8, -5, 4}, {18, 12, -6}, {-4, -1, 2}}, cm)

	adj, err := m.Adjoint()
	require.NoError(t, err)
	RequireRows(t, [][]int{{-8, 18, -4}, {-5, 12, -1}, {4, -6, 2}}, adj)

	// A·adj(A) = det(A)·I
	det, err := m.Determinant()
	require.NoError(t, err)
	prod, err := m.Mul(adj)
	require.NoError(t, err)
	id, err := matrix.MustIdentity[int](3).Scale(det)
	require.NoError(t, err)
	assert.True(t, prod.Equal(id))
}

func TestMinor(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	mn, err := m.Minor(1, 1)
	require.NoError(t, err)
	RequireRows(t, [][]int{{1, 3}, {7, 9}}, mn)
}

func TestTraceDiag(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	tr, err := m.Trace()
	require.NoError(t, err)
	assert.Equal(t, 15, tr)
	RequireRows(t, [][]int{{1, 5, 9}}, m.Diag())

	rect := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	_, err = rect.Trace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	RequireRows(t, [][]int{{1, 5}}, rect.Diag())
}
