// SPDX-License-Identifier: MIT

// Package plot renders polynomials as terminal line charts with asciigraph.
//
// A polynomial is sampled on the integer grid k/Resolution for k from
// ⌊From·Resolution⌋ to ⌈To·Resolution⌉, so Resolution is the number of
// samples per unit along x and the interval ends are widened to the grid.
package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/polynomial"
)

// Defaults used by DefaultArgs.
const (
	DefaultFrom       = -5.0
	DefaultTo         = 5.0
	DefaultResolution = 4
	DefaultHeight     = 12
	DefaultPrecision  = 1

	// maxSamples bounds (To-From)·Resolution.
	maxSamples = 1 << 16
)

var (
	// ErrBadRange indicates From >= To or a non-finite bound.
	ErrBadRange = errors.New("plot: invalid x range")

	// ErrBadResolution indicates a non-positive resolution or too many samples.
	ErrBadResolution = errors.New("plot: invalid resolution")

	// ErrBadHeight indicates a negative chart height.
	ErrBadHeight = errors.New("plot: invalid height")
)

// Args controls sampling and rendering.
type Args struct {
	From, To   float64 // x interval
	Resolution int     // samples per unit
	Height     int     // chart rows; 0 lets asciigraph pick from the data
	Width      int     // chart columns; 0 plots one column per sample
	Legend     bool    // append "y=<p>" to the caption
	Precision  int     // coefficient decimals in the legend
	Caption    string
}

// DefaultArgs returns the interval [-5, 5] at 4 samples per unit, 12 rows
// high, with a legend.
func DefaultArgs() Args {
	return Args{
		From:       DefaultFrom,
		To:         DefaultTo,
		Resolution: DefaultResolution,
		Height:     DefaultHeight,
		Legend:     true,
		Precision:  DefaultPrecision,
	}
}

// Validate reports the first invalid field of a.
func (a Args) Validate() error {
	switch {
	case math.IsNaN(a.From) || math.IsInf(a.From, 0) || math.IsNaN(a.To) || math.IsInf(a.To, 0):
		return fmt.Errorf("[%v, %v]: %w", a.From, a.To, ErrBadRange)
	case a.From >= a.To:
		return fmt.Errorf("[%v, %v]: %w", a.From, a.To, ErrBadRange)
	case a.Resolution <= 0:
		return fmt.Errorf("resolution %d: %w", a.Resolution, ErrBadResolution)
	case (a.To-a.From)*float64(a.Resolution) > maxSamples:
		return fmt.Errorf("%v samples exceed %d: %w", (a.To-a.From)*float64(a.Resolution), maxSamples, ErrBadResolution)
	case a.Height < 0:
		return fmt.Errorf("height %d: %w", a.Height, ErrBadHeight)
	}

	return nil
}

// Samples evaluates p on the sampling grid of a.
func Samples[T num.Real](p polynomial.Polynomial[T], a Args) (xs, ys []float64, err error) {
	if err = a.Validate(); err != nil {
		return nil, nil, err
	}

	res := float64(a.Resolution)
	lo := int(math.Floor(a.From * res))
	hi := int(math.Ceil(a.To * res))
	xs = make([]float64, 0, hi-lo+1)
	ys = make([]float64, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		x := float64(k) / res
		xs = append(xs, x)
		ys = append(ys, p.EvalFloat(x))
	}

	return xs, ys, nil
}

// Polynomial renders p as an asciigraph line chart.
//
// Errors:
//   - ErrBadRange, ErrBadResolution, ErrBadHeight from Args.Validate.
func Polynomial[T num.Real](p polynomial.Polynomial[T], a Args) (string, error) {
	_, ys, err := Samples(p, a)
	if err != nil {
		return "", err
	}

	opts := []asciigraph.Option{asciigraph.Precision(2)}
	if a.Height > 0 {
		opts = append(opts, asciigraph.Height(a.Height))
	}
	if a.Width > 0 {
		opts = append(opts, asciigraph.Width(a.Width))
	}
	if c := caption(p, a); c != "" {
		opts = append(opts, asciigraph.Caption(c))
	}

	return asciigraph.Plot(ys, opts...), nil
}

// caption joins the user caption and the legend.
func caption[T num.Real](p polynomial.Polynomial[T], a Args) string {
	if !a.Legend {
		return a.Caption
	}

	legend := "y=" + p.Format(max(a.Precision, 0))
	if a.Caption == "" {
		return legend
	}

	return a.Caption + "  " + legend
}
