// SPDX-License-Identifier: MIT

package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/config"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/plot"
)

const workspace = `dtype: int64
precision: 2
matrices:
  a: [[2, -8], [1, -1]]
  b: [[-3, 2, -5], [-1, 0, -2], [3, -4, 1]]
polynomials:
  p: [1, 1, -6]
plot: {from: -3, to: 3, resolution: 2, height: 8}
`

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "linalg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DtypeFloat64, cfg.Dtype)
	assert.Equal(t, config.DefaultPrecision, cfg.Precision)
	assert.Equal(t, plot.DefaultResolution, cfg.Plot.Resolution)
	assert.Empty(t, cfg.MatrixNames())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeFile(t, workspace))
	require.NoError(t, err)

	assert.Equal(t, config.DtypeInt64, cfg.Dtype)
	assert.Equal(t, []string{"a", "b"}, cfg.MatrixNames())
	assert.Equal(t, []string{"p"}, cfg.PolynomialNames())

	a, err := config.MatrixAs[int64](cfg, "a")
	require.NoError(t, err)
	d, err := a.Determinant()
	require.NoError(t, err)
	assert.Equal(t, int64(6), d)

	p, err := config.PolynomialAs[int64](cfg, "p")
	require.NoError(t, err)
	assert.Equal(t, "x²+x-6", p.String())

	args := cfg.PlotArgs()
	assert.Equal(t, -3.0, args.From)
	assert.Equal(t, 8, args.Height)
	assert.Equal(t, 2, args.Precision)
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeFile(t, "matrices:\n  i: [[1, 0], [0, 1]]\n"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDtype, cfg.Dtype)
	assert.Equal(t, plot.DefaultHeight, cfg.Plot.Height)

	m, err := cfg.Matrix("i")
	require.NoError(t, err)
	assert.True(t, m.Equal(matrix.MustIdentity[float64](2)))
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = config.Load(writeFile(t, "dtype: [unterminated"))
	require.Error(t, err)

	cases := []struct {
		name string
		body string
		want []error
	}{
		{"dtype", "dtype: complex128\n", []error{config.ErrUnknownDtype}},
		{"precision", "precision: -1\n", []error{config.ErrInvalid}},
		{"ragged matrix", "matrices:\n  r: [[1, 2], [3]]\n", []error{config.ErrInvalid, matrix.ErrBadShape}},
		{"fractional int64 matrix", "dtype: int64\nmatrices:\n  f: [[1.5]]\n", []error{config.ErrInvalid, num.ErrConversion}},
		{"fractional int64 polynomial", "dtype: int64\npolynomials:\n  q: [0.5, 1]\n", []error{config.ErrInvalid, num.ErrConversion}},
		{"plot range", "plot: {from: 1, to: -1, resolution: 2}\n", []error{config.ErrInvalid, plot.ErrBadRange}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeFile(t, tc.body))
			for _, want := range tc.want {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestUnknownName(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	_, err := cfg.Matrix("nope")
	require.ErrorIs(t, err, config.ErrUnknownName)
	_, err = config.MatrixAs[int](cfg, "nope")
	require.ErrorIs(t, err, config.ErrUnknownName)
	_, err = cfg.Polynomial("nope")
	require.ErrorIs(t, err, config.ErrUnknownName)
	_, err = config.PolynomialAs[float32](cfg, "nope")
	require.ErrorIs(t, err, config.ErrUnknownName)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Dtype = config.DtypeInt64
	require.NoError(t, config.SetMatrix(cfg, "m", matrix.MustNew([][]int{{1, 2}, {3, 4}})))
	cfg.Polynomials["p"] = []float64{3, -5, 1}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, config.Save(path, cfg))

	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
