// SPDX-License-Identifier: MIT

// Package display renders matrices and polynomials as bordered terminal
// panels with lipgloss.
//
// Cells are right-aligned per column and measured with lipgloss.Width, so
// multi-byte glyphs such as superscripts line up. Colour is applied only when
// the output supports it; borders are always drawn.
package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/polynomial"
)

// Styles shared by every panel.
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))
)

type options struct {
	precision int
	title     string
	border    lipgloss.Border
}

// Option configures a panel.
type Option func(*options)

// WithPrecision rounds float components to p decimals; p < 0 prints the
// shortest exact form, which is the default.
func WithPrecision(p int) Option { return func(o *options) { o.precision = p } }

// WithTitle prints t above the panel.
func WithTitle(t string) Option { return func(o *options) { o.title = t } }

// WithBorder replaces the rounded border.
func WithBorder(b lipgloss.Border) Option { return func(o *options) { o.border = b } }

func gather(opts []Option) options {
	o := options{precision: -1, border: lipgloss.RoundedBorder()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// panel frames body and prefixes the optional title.
func panel(body string, o options) string {
	out := panelStyle.Border(o.border).Render(body)
	if o.title == "" {
		return out
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(o.title), out)
}

// formatFloat prints v exactly or with prec decimals.
func formatFloat(v float64, bits, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, bits)
}

// Cell formats one element: floats honour precision, Complex values are
// printed as a±bi with both parts formatted alike, anything else uses %v.
func Cell[E num.Element](v E, precision int) string {
	switch x := any(v).(type) {
	case float64:
		return formatFloat(x, 64, precision)
	case float32:
		return formatFloat(float64(x), 32, precision)
	case num.Complex[float64]:
		return complexCell(x.Real(), x.Imag(), 64, precision)
	case num.Complex[float32]:
		return complexCell(float64(x.Real()), float64(x.Imag()), 32, precision)
	default:
		return fmt.Sprint(v)
	}
}

func complexCell(re, im float64, bits, prec int) string {
	sign := "+"
	if math.Signbit(im) {
		sign, im = "-", -im
	}

	return formatFloat(re, bits, prec) + sign + formatFloat(im, bits, prec) + "i"
}

// Matrix renders m as a bordered grid with right-aligned columns.
// A nil or empty matrix renders an empty panel.
func Matrix[E num.Element](m *matrix.Matrix[E], opts ...Option) string {
	o := gather(opts)
	if m == nil {
		return panel("", o)
	}

	rows := m.Data()
	cells := make([][]string, len(rows))
	widths := make([]int, m.Cols())
	var i, j int
	for i = range rows {
		cells[i] = make([]string, len(rows[i]))
		for j = range rows[i] {
			s := Cell(rows[i][j], o.precision)
			cells[i][j] = s
			widths[j] = max(widths[j], lipgloss.Width(s))
		}
	}

	lines := make([]string, len(cells))
	for i = range cells {
		parts := make([]string, len(cells[i]))
		for j = range cells[i] {
			pad := widths[j] - lipgloss.Width(cells[i][j])
			parts[j] = strings.Repeat(" ", pad) + cells[i][j]
		}
		lines[i] = strings.Join(parts, "  ")
	}

	return panel(strings.Join(lines, "\n"), o)
}

// Polynomial renders p as "name(x) = …" in a panel.
func Polynomial[T num.Real](name string, p polynomial.Polynomial[T], opts ...Option) string {
	o := gather(opts)

	return panel(name+"(x) = "+p.Format(o.precision), o)
}

// Scalar renders a single value, such as a determinant, in a panel.
func Scalar[E num.Element](label string, v E, opts ...Option) string {
	o := gather(opts)

	return panel(label+" = "+Cell(v, o.precision), o)
}
