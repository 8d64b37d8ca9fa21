// SPDX-License-Identifier: MIT

// Package config loads and saves the YAML workspace read by the linalg
// command: named matrices and polynomials, the element type to compute in,
// display precision and plot settings.
//
//	dtype: float64
//	precision: 4
//	matrices:
//	  a: [[2, -8], [1, -1]]
//	polynomials:
//	  p: [1, 1, -6]
//	plot: {from: -5, to: 5, resolution: 4, height: 12}
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/plot"
	"github.com/katalvlaran/linalg/polynomial"
)

// Supported dtype values.
const (
	DtypeInt64   = "int64"
	DtypeFloat64 = "float64"
)

// Defaults used by DefaultConfig.
const (
	DefaultDtype     = DtypeFloat64
	DefaultPrecision = 4
)

var (
	// ErrUnknownDtype indicates a dtype other than int64 or float64.
	ErrUnknownDtype = errors.New("config: unknown dtype")

	// ErrUnknownName indicates a lookup of an undefined matrix or polynomial.
	ErrUnknownName = errors.New("config: unknown name")

	// ErrInvalid indicates a value that fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the YAML document.
type Config struct {
	Dtype       string                 `yaml:"dtype"`
	Precision   int                    `yaml:"precision"`
	Matrices    map[string][][]float64 `yaml:"matrices,omitempty"`
	Polynomials map[string][]float64   `yaml:"polynomials,omitempty"`
	Plot        PlotConfig             `yaml:"plot"`
}

// PlotConfig mirrors the sampling fields of plot.Args.
type PlotConfig struct {
	From       float64 `yaml:"from"`
	To         float64 `yaml:"to"`
	Resolution int     `yaml:"resolution"`
	Height     int     `yaml:"height"`
}

// DefaultConfig returns an empty float64 workspace with the plot defaults.
func DefaultConfig() *Config {
	return &Config{
		Dtype:       DefaultDtype,
		Precision:   DefaultPrecision,
		Matrices:    map[string][][]float64{},
		Polynomials: map[string][]float64{},
		Plot: PlotConfig{
			From:       plot.DefaultFrom,
			To:         plot.DefaultTo,
			Resolution: plot.DefaultResolution,
			Height:     plot.DefaultHeight,
		},
	}
}

// Load reads path over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the dtype, the plot settings and every matrix and
// polynomial. Under dtype int64 every entry must be integral.
func (c *Config) Validate() error {
	if c.Dtype != DtypeInt64 && c.Dtype != DtypeFloat64 {
		return fmt.Errorf("%q: %w", c.Dtype, ErrUnknownDtype)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision %d: %w", c.Precision, ErrInvalid)
	}
	if err := c.PlotArgs().Validate(); err != nil {
		return fmt.Errorf("plot: %w: %w", ErrInvalid, err)
	}

	for _, name := range sortedKeys(c.Matrices) {
		m, err := matrix.New(c.Matrices[name])
		if err == nil && c.Dtype == DtypeInt64 {
			_, err = matrix.Dtype[int64](m)
		}
		if err != nil {
			return fmt.Errorf("matrix %q: %w: %w", name, ErrInvalid, err)
		}
	}
	for _, name := range sortedKeys(c.Polynomials) {
		if c.Dtype != DtypeInt64 {
			continue
		}
		if _, err := polynomial.Dtype[int64](polynomial.New(c.Polynomials[name]...)); err != nil {
			return fmt.Errorf("polynomial %q: %w: %w", name, ErrInvalid, err)
		}
	}

	return nil
}

// sortedKeys makes validation report the same entry on every run.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// MatrixNames lists the defined matrices in sorted order.
func (c *Config) MatrixNames() []string { return sortedKeys(c.Matrices) }

// PolynomialNames lists the defined polynomials in sorted order.
func (c *Config) PolynomialNames() []string { return sortedKeys(c.Polynomials) }

// Matrix returns the named matrix in float64.
func (c *Config) Matrix(name string) (*matrix.Matrix[float64], error) {
	rows, ok := c.Matrices[name]
	if !ok {
		return nil, fmt.Errorf("matrix %q: %w", name, ErrUnknownName)
	}

	return matrix.New(rows)
}

// MatrixAs returns the named matrix converted to E with matrix.Dtype.
func MatrixAs[E num.Real](c *Config, name string) (*matrix.Matrix[E], error) {
	m, err := c.Matrix(name)
	if err != nil {
		return nil, err
	}

	return matrix.Dtype[E](m)
}

// SetMatrix stores m under name.
func SetMatrix[E num.Real](c *Config, name string, m *matrix.Matrix[E]) error {
	f, err := matrix.Dtype[float64](m)
	if err != nil {
		return err
	}
	if c.Matrices == nil {
		c.Matrices = map[string][][]float64{}
	}
	c.Matrices[name] = f.Data()

	return nil
}

// Polynomial returns the named polynomial in float64.
func (c *Config) Polynomial(name string) (polynomial.Polynomial[float64], error) {
	coeffs, ok := c.Polynomials[name]
	if !ok {
		return polynomial.Polynomial[float64]{}, fmt.Errorf("polynomial %q: %w", name, ErrUnknownName)
	}

	return polynomial.New(coeffs...), nil
}

// PolynomialAs returns the named polynomial converted to T.
func PolynomialAs[T num.Real](c *Config, name string) (polynomial.Polynomial[T], error) {
	p, err := c.Polynomial(name)
	if err != nil {
		return polynomial.Polynomial[T]{}, err
	}

	return polynomial.Dtype[T](p)
}

// PlotArgs converts the plot section to plot.Args with a legend at the
// configured precision.
func (c *Config) PlotArgs() plot.Args {
	a := plot.DefaultArgs()
	a.From, a.To = c.Plot.From, c.Plot.To
	a.Resolution, a.Height = c.Plot.Resolution, c.Plot.Height
	a.Precision = c.Precision

	return a
}
