// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/config"
	"github.com/katalvlaran/linalg/display"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/plot"
)

// errExists is returned by init when the target file is present.
var errExists = errors.New("file exists; pass --force to overwrite")

// sampleConfig is the workspace written by init.
func sampleConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Matrices["a"] = [][]float64{{2, -8}, {1, -1}}
	cfg.Matrices["b"] = [][]float64{{-3, 2, -5}, {-1, 0, -2}, {3, -4, 1}}
	cfg.Matrices["c"] = [][]float64{{0, 1}, {1, 1}}
	cfg.Polynomials["p"] = []float64{1, 1, -6}

	return cfg
}

func (a *app) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "write a sample workspace to --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s: %w", a.configPath, errExists)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := config.Save(a.configPath, sampleConfig()); err != nil {
				return err
			}
			a.log.Info("workspace written", "path", a.configPath)
			fmt.Fprintln(cmd.OutOrStdout(), a.configPath)

			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list matrices and polynomials in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dtype: %s\n", a.cfg.Dtype)
			for _, name := range a.cfg.MatrixNames() {
				rows := a.cfg.Matrices[name]
				cols := 0
				if len(rows) > 0 {
					cols = len(rows[0])
				}
				fmt.Fprintf(w, "matrix %s %d×%d\n", name, len(rows), cols)
			}
			for _, name := range a.cfg.PolynomialNames() {
				p, _ := a.cfg.Polynomial(name)
				fmt.Fprintf(w, "polynomial %s %s\n", name, p)
			}

			return nil
		},
	}
}

// namedCmd builds a command taking one workspace NAME.
func (a *app) namedCmd(use, short string, run func(a *app, w io.Writer, name string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			return run(a, cmd.OutOrStdout(), args[0])
		},
	}
}

// byDtype dispatches to the int64 or float64 instantiation of f.
func byDtype(a *app, w io.Writer, name string,
	i64 func(*app, io.Writer, string) error,
	f64 func(*app, io.Writer, string) error,
) error {
	if a.cfg.Dtype == config.DtypeInt64 {
		return i64(a, w, name)
	}

	return f64(a, w, name)
}

func (a *app) opts(title string) []display.Option {
	return []display.Option{display.WithTitle(title), display.WithPrecision(a.cfg.Precision)}
}

func (a *app) detCmd() *cobra.Command {
	return a.namedCmd("det", "determinant (Leibniz expansion)", func(a *app, w io.Writer, name string) error {
		return byDtype(a, w, name, runDet[int64], runDet[float64])
	})
}

func runDet[E num.Real](a *app, w io.Writer, name string) error {
	m, err := config.MatrixAs[E](a.cfg, name)
	if err != nil {
		return err
	}
	d, err := m.Determinant()
	if err != nil {
		return err
	}
	a.log.Debug("determinant", "name", name, "rows", m.Rows(), "value", d)
	fmt.Fprintln(w, display.Scalar("det("+name+")", d, display.WithPrecision(a.cfg.Precision)))

	return nil
}

func (a *app) adjointCmd() *cobra.Command {
	return a.namedCmd("adjoint", "adjoint (transposed cofactor matrix)", func(a *app, w io.Writer, name string) error {
		return byDtype(a, w, name, runAdjoint[int64], runAdjoint[float64])
	})
}

func runAdjoint[E num.Real](a *app, w io.Writer, name string) error {
	m, err := config.MatrixAs[E](a.cfg, name)
	if err != nil {
		return err
	}
	adj, err := m.Adjoint()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, display.Matrix(adj, a.opts("adj("+name+")")...))

	return nil
}

func (a *app) transposeCmd() *cobra.Command {
	return a.namedCmd("transpose", "transpose", func(a *app, w io.Writer, name string) error {
		return byDtype(a, w, name, runTranspose[int64], runTranspose[float64])
	})
}

func runTranspose[E num.Real](a *app, w io.Writer, name string) error {
	m, err := config.MatrixAs[E](a.cfg, name)
	if err != nil {
		return err
	}
	t, err := m.Transpose()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, display.Matrix(t, a.opts(name+"ᵀ")...))

	return nil
}

// floatMatrix loads name in float64; decompositions divide by pivots.
func (a *app) floatMatrix(name string) (*matrix.Matrix[float64], error) {
	if a.cfg.Dtype == config.DtypeInt64 {
		a.log.Warn("decomposing in float64; integer division would truncate", "name", name)
	}

	return a.cfg.Matrix(name)
}

func (a *app) luCmd() *cobra.Command {
	return a.namedCmd("lu", "LU decomposition with a unit upper factor", func(a *app, w io.Writer, name string) error {
		m, err := a.floatMatrix(name)
		if err != nil {
			return err
		}
		l, u, err := m.LU()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, display.Matrix(matrix.EpsilonFilter(l), a.opts("L")...))
		fmt.Fprintln(w, display.Matrix(matrix.EpsilonFilter(u), a.opts("U")...))

		return nil
	})
}

func (a *app) pluCmd() *cobra.Command {
	return a.namedCmd("plu", "LU decomposition after a row permutation", func(a *app, w io.Writer, name string) error {
		m, err := a.floatMatrix(name)
		if err != nil {
			return err
		}
		p, l, u, err := m.PLU()
		if err != nil {
			return err
		}
		a.log.Debug("permutation found", "name", name, "identity", p.Equal(matrix.MustIdentity[float64](p.Rows())))
		fmt.Fprintln(w, display.Matrix(p, a.opts("P")...))
		fmt.Fprintln(w, display.Matrix(matrix.EpsilonFilter(l), a.opts("L")...))
		fmt.Fprintln(w, display.Matrix(matrix.EpsilonFilter(u), a.opts("U")...))

		return nil
	})
}

func (a *app) inverseCmd() *cobra.Command {
	return a.namedCmd("inverse", "inverse through PLU substitution", func(a *app, w io.Writer, name string) error {
		m, err := a.floatMatrix(name)
		if err != nil {
			return err
		}
		inv, err := m.Inverse()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, display.Matrix(matrix.EpsilonFilter(inv), a.opts(name+"⁻¹")...))

		return nil
	})
}

func (a *app) rootsCmd() *cobra.Command {
	return a.namedCmd("roots", "real roots of a polynomial of degree two or less", func(a *app, w io.Writer, name string) error {
		p, err := a.cfg.Polynomial(name)
		if err != nil {
			return err
		}
		roots, err := p.RealRoots()
		if err != nil {
			return err
		}

		fmt.Fprintln(w, display.Polynomial(name, p, display.WithPrecision(a.cfg.Precision)))
		if len(roots) == 0 {
			fmt.Fprintln(w, "no real roots")
			return nil
		}
		parts := make([]string, len(roots))
		for i, r := range roots {
			parts[i] = "x = " + strconv.FormatFloat(r, 'f', a.cfg.Precision, 64)
		}
		fmt.Fprintln(w, strings.Join(parts, "\n"))

		return nil
	})
}

func (a *app) plotCmd() *cobra.Command {
	var from, to float64
	var resolution, height, width int
	var cmd *cobra.Command
	cmd = a.namedCmd("plot", "plot a polynomial in the terminal", func(a *app, w io.Writer, name string) error {
		p, err := a.cfg.Polynomial(name)
		if err != nil {
			return err
		}

		args := a.cfg.PlotArgs()
		args.Caption = name
		args.Width = width
		flags := cmd.Flags()
		if flags.Changed("from") {
			args.From = from
		}
		if flags.Changed("to") {
			args.To = to
		}
		if flags.Changed("resolution") {
			args.Resolution = resolution
		}
		if flags.Changed("height") {
			args.Height = height
		}
		a.log.Debug("plotting", "name", name, "from", args.From, "to", args.To, "resolution", args.Resolution)

		out, err := plot.Polynomial(p, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)

		return nil
	})
	cmd.Flags().Float64Var(&from, "from", 0, "left end of the x range")
	cmd.Flags().Float64Var(&to, "to", 0, "right end of the x range")
	cmd.Flags().IntVar(&resolution, "resolution", 0, "samples per unit")
	cmd.Flags().IntVar(&height, "height", 0, "chart rows")
	cmd.Flags().IntVar(&width, "width", 0, "chart columns")

	return cmd
}
