// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/num"
)

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]int{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.New(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1, m.MustAt(0, 0))

	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6, m.Len())
	assert.False(t, m.IsSquare())
}

func TestNew_Ragged(t *testing.T) {
	t.Parallel()

	_, err := matrix.New([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	assert.Panics(t, func() { matrix.MustNew([][]int{{1}, {2, 3}}) })
}

func TestNew_ZeroSized(t *testing.T) {
	t.Parallel()

	m, err := matrix.New[int](nil)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Zero(t, r)
	assert.Zero(t, c)

	m, err = matrix.New([][]int{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestFromFlat(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromFlat(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	RequireRows(t, [][]int{{1, 2}, {3, 4}}, m)

	_, err = matrix.FromFlat(2, 3, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromFlat(-1, 0, []int{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAt_IndexErrorMessage(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{-3, 4, 0}, {2, 1, -2}})

	_, err := m.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "row 4")
	assert.Contains(t, err.Error(), "0..2")
	assert.Equal(t, "matrix: row 4 outside 0..2 for a 2×3 matrix", err.Error())

	var ie *matrix.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, matrix.AxisRow, ie.Axis)
	assert.Equal(t, 4, ie.Index)

	_, err = m.At(1, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, "matrix: column 3 outside 0..3 for a 2×3 matrix", err.Error())

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMustAt_Panics(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{-3, 4, 0}, {2, 1, -2}})
	requireIndexPanic(t, matrix.AxisRow, func() { m.MustAt(4, 0) })
	requireIndexPanic(t, matrix.AxisCol, func() { m.MustSet(0, 7, 1) })
}

func TestSet(t *testing.T) {
	t.Parallel()

	m, err := matrix.Empty[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 2.5))
	assert.Equal(t, 2.5, m.MustAt(1, 0))

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
}

func TestRowCol(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	RequireRows(t, [][]int{{4, 5, 6}}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	RequireRows(t, [][]int{{3}, {6}}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestCloneAndDataAreIndependent(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{1, 2}, {3, 4}})
	c := m.Clone()
	c.MustSet(0, 0, 100)
	assert.Equal(t, 1, m.MustAt(0, 0))

	d := m.Data()
	d[1][1] = 100
	assert.Equal(t, 4, m.MustAt(1, 1))

	f := m.Flat()
	f[0] = 100
	assert.Equal(t, 1, m.MustAt(0, 0))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, [][]int{{1, 2}, {3, 4}})
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(MustMatrix(t, [][]int{{1, 2}, {3, 5}})))
	assert.False(t, a.Equal(MustMatrix(t, [][]int{{1, 2, 3, 4}})))
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{1, -2}, {3, 4}})
	assert.Equal(t, "[1, -2]\n[3, 4]\n", m.String())

	c := MustMatrix(t, [][]num.Complex[int]{{num.FromComplex(1, -1)}})
	assert.Equal(t, "[1-1i]\n", c.String())
}

func TestDoAndApply(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, [][]int{{1, 2}, {3, 4}})

	var visited []int
	m.Do(func(_, _ int, v int) bool {
		visited = append(visited, v)
		return v < 3
	})
	assert.Equal(t, []int{1, 2, 3}, visited)

	m.Apply(func(i, j int, v int) int { return v*10 + i + j })
	RequireRows(t, [][]int{{10, 21}, {31, 42}}, m)
}

func TestVectorAliases(t *testing.T) {
	t.Parallel()

	v := matrix.NewVector(1, 2, 3)
	assert.Equal(t, 1, v.Rows())
	assert.Equal(t, 3, v.Cols())
	assert.True(t, v.IsVector())

	c := matrix.NewColVector(1.5, 2.5)
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, 1, c.Cols())

	// A Vector is a Matrix: every matrix operation applies.
	var m *matrix.Matrix[int] = v
	tr, err := m.Transpose()
	require.NoError(t, err)
	RequireRows(t, [][]int{{1}, {2}, {3}}, tr)
}
