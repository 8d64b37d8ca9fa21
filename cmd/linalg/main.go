// SPDX-License-Identifier: MIT

// Command linalg evaluates matrices and polynomials stored in a YAML
// workspace: determinants, adjoints, LU/PLU factors, real roots and plots.
//
//	linalg init                 # write a sample linalg.yaml
//	linalg det a                # determinant of matrix a
//	linalg plu b --log-level debug
//	linalg plot p --from -4 --to 3
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/config"
)

// app carries flag values and the loaded workspace between commands.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg *config.Config
	log *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "linalg",
		Short:        "small-matrix algebra over a YAML workspace",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogging(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "linalg.yaml", "workspace file (yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "debug, info, warn or error")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable coloured log output")

	root.AddCommand(
		a.initCmd(),
		a.listCmd(),
		a.detCmd(),
		a.adjointCmd(),
		a.transposeCmd(),
		a.luCmd(),
		a.pluCmd(),
		a.inverseCmd(),
		a.rootsCmd(),
		a.plotCmd(),
	)

	return root
}

// setupLogging installs a tint handler on the command's stderr.
func (a *app) setupLogging(cmd *cobra.Command) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	a.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    a.noColor,
	}))

	return nil
}

// load reads the workspace named by --config.
func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s not found; run `linalg init` to create one: %w", a.configPath, err)
	}
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log.Debug("workspace loaded",
		"path", a.configPath,
		"dtype", cfg.Dtype,
		"matrices", len(cfg.Matrices),
		"polynomials", len(cfg.Polynomials))

	return nil
}
