// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/prism/calculate"
	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/report"
	"github.com/katalvlaran/prism/solver"
)

type solveOptions struct {
	out  string
	plot bool
}

// output is one written quantity: file stem, axis name, values.
type output struct {
	name  string
	title string
	axis  string
	x     []float64
	a     *matrix.Array
}

func newSolveCmd(log *logrus.Logger, root *rootOptions) *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve <config>",
		Short: "Solve a PRISM problem and write correlation functions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, log, root, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&opts.plot, "plot", false, "also write PNG plots of g(r) and S(k)")

	return cmd
}

func runSolve(cmd *cobra.Command, log *logrus.Logger, root *rootOptions, opts *solveOptions, path string) error {
	cfg, sys, err := loadSystem(path, log)
	if err != nil {
		return err
	}
	solverOpts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	if root.verbose {
		solverOpts = append(solverOpts, solver.WithVerbose(true))
	}
	p, err := sys.Solver(solverOpts...)
	if err != nil {
		return err
	}
	res, err := p.Solve(cmd.Context())
	if err != nil {
		return err
	}

	outputs, err := collect(res)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return err
	}
	types := res.Types()
	for _, o := range outputs {
		if err := writeTable(filepath.Join(opts.out, o.name+".tsv"), o, types); err != nil {
			return err
		}
	}
	if opts.plot {
		for _, o := range outputs[:2] {
			pl, err := report.Plot(o.title, o.axis, o.name, o.x, o.a, types)
			if err != nil {
				return err
			}
			if err := report.SavePlot(pl, filepath.Join(opts.out, o.name+".png")); err != nil {
				return err
			}
		}
	}

	log.WithFields(logrus.Fields{
		"iter":     res.Iterations(),
		"residual": res.ResidualNorm(),
		"out":      opts.out,
	}).Info("results written")
	fmt.Fprintf(cmd.OutOrStdout(), "converged in %d iterations, residual %.3g\n", res.Iterations(), res.ResidualNorm())

	return nil
}

// collect derives the written quantities; g(r) and S(k) come first.
func collect(res *solver.Result) ([]output, error) {
	dom := res.Domain()
	gr, err := calculate.PairCorrelation(res)
	if err != nil {
		return nil, err
	}
	sk, err := calculate.StructureFactor(res)
	if err != nil {
		return nil, err
	}
	pmf, err := calculate.PotentialOfMeanForce(res)
	if err != nil {
		return nil, err
	}

	return []output{
		{name: "gr", title: "pair correlation g(r)", axis: "r", x: dom.R(), a: gr},
		{name: "sk", title: "structure factor S(k)", axis: "k", x: dom.K(), a: sk},
		{name: "cr", title: "direct correlation c(r)", axis: "r", x: dom.R(), a: res.DirectCorrReal()},
		{name: "hr", title: "total correlation h(r)", axis: "r", x: dom.R(), a: res.TotalCorrReal()},
		{name: "pmf", title: "potential of mean force w(r)", axis: "r", x: dom.R(), a: pmf},
	}, nil
}

func writeTable(path string, o output, types []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.WriteTSV(f, o.axis, o.x, o.a, types)
}
