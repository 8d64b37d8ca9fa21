// SPDX-License-Identifier: MIT

// Package matrix: Matrix construction, indexing and traversal.
//
// Purpose:
//   - Construct matrices from nested slices or flat buffers.
//   - Provide bounds-checked element access (At/Set) that reports an
//     *IndexError, and panicking Must* twins for code that treats a bad
//     index as a logic bug.
//   - Offer read-only (Do, Data) and in-place (Apply) traversal used by the
//     display and config collaborators.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/num"
)

// Method tags used in error wrappers.
const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxCol     = "Col"
	ctxFromRaw = "FromFlat"
)

// Formatting tokens for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// alloc returns a zero-filled rows×cols matrix. Callers guarantee rows, cols >= 0.
func alloc[E num.Element](rows, cols int) *Matrix[E] {
	return &Matrix[E]{r: rows, c: cols, data: make([]E, rows*cols)}
}

// New copies a nested slice into a Matrix.
// Implementation:
//   - Stage 1: take cols from the first row; every other row must match.
//   - Stage 2: copy rows into one row-major buffer.
//
// Behavior highlights:
//   - The result never aliases the input.
//   - An empty outer slice yields a 0×0 matrix; empty rows yield r×0.
//
// Errors:
//   - ErrBadShape if the rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[E num.Element](rows [][]E) (*Matrix[E], error) {
	var r, c int
	r = len(rows)
	if r > 0 {
		c = len(rows[0])
	}

	m := alloc[E](r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", ctxNew, i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// MustNew is New for literal fixtures; it panics on ragged input.
func MustNew[E num.Element](rows [][]E) *Matrix[E] {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromFlat copies a row-major buffer of length rows*cols into a Matrix.
func FromFlat[E num.Element](rows, cols int, data []E) (*Matrix[E], error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d) with %d values: %w", ctxFromRaw, rows, cols, len(data), ErrBadShape)
	}

	m := alloc[E](rows, cols)
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[E]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[E]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix[E]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of elements.
func (m *Matrix[E]) Len() int { return len(m.data) }

// IsSquare reports rows == cols.
func (m *Matrix[E]) IsSquare() bool { return m.r == m.c }

// IsVector reports whether m has a single row or a single column.
func (m *Matrix[E]) IsVector() bool { return m.r == 1 || m.c == 1 }

// indexOf validates (row, col) and returns the flat offset.
func (m *Matrix[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, &IndexError{Axis: AxisRow, Index: row, Rows: m.r, Cols: m.c}
	}
	if col < 0 || col >= m.c {
		return 0, &IndexError{Axis: AxisCol, Index: col, Rows: m.r, Cols: m.c}
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - *IndexError (errors.Is ErrOutOfRange) naming the violated axis, the
//     index and the valid range.
func (m *Matrix[E]) At(row, col int) (E, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero E
		return zero, err
	}

	return m.data[off], nil
}

// MustAt is At for indices known to be valid; a bad index panics with the
// *IndexError At would have returned.
func (m *Matrix[E]) MustAt(row, col int) E {
	v, err := m.At(row, col)
	if err != nil {
		panic(err)
	}

	return v
}

// Set writes v at (row, col).
func (m *Matrix[E]) Set(row, col int, v E) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// MustSet is Set that panics on a bad index.
func (m *Matrix[E]) MustSet(row, col int, v E) {
	if err := m.Set(row, col, v); err != nil {
		panic(err)
	}
}

// Row returns a copy of row i as a 1×cols vector.
func (m *Matrix[E]) Row(i int) (*Matrix[E], error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(ctxRow, &IndexError{Axis: AxisRow, Index: i, Rows: m.r, Cols: m.c})
	}

	v := alloc[E](1, m.c)
	copy(v.data, m.data[i*m.c:(i+1)*m.c])

	return v, nil
}

// Col returns a copy of column j as a rows×1 column vector.
func (m *Matrix[E]) Col(j int) (*Matrix[E], error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(ctxCol, &IndexError{Axis: AxisCol, Index: j, Rows: m.r, Cols: m.c})
	}

	v := alloc[E](m.r, 1)
	for i := 0; i < m.r; i++ {
		v.data[i] = m.data[i*m.c+j]
	}

	return v, nil
}

// Data returns a nested copy of the elements.
func (m *Matrix[E]) Data() [][]E {
	out := make([][]E, m.r)
	for i := range out {
		out[i] = make([]E, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Flat returns a copy of the row-major buffer.
func (m *Matrix[E]) Flat() []E {
	out := make([]E, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns an independent copy of m.
func (m *Matrix[E]) Clone() *Matrix[E] {
	out := alloc[E](m.r, m.c)
	copy(out.data, m.data)

	return out
}

// Equal reports whether o has the same shape and identical elements.
// Floats compare with ==, so NaN entries are never equal; use AllClose for
// tolerant comparison.
func (m *Matrix[E]) Equal(o *Matrix[E]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if v != o.data[k] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Matrix[E]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits elements in row-major order until f returns false.
func (m *Matrix[E]) Do(f func(i, j int, v E) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(i, j, v), in row-major order.
func (m *Matrix[E]) Apply(f func(i, j int, v E) E) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// mapped returns a new matrix of the same shape holding f(v) for every v.
func mapped[E, Q num.Element](m *Matrix[E], f func(E) Q) *Matrix[Q] {
	out := alloc[Q](m.r, m.c)
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out
}
