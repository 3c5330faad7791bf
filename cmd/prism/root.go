// SPDX-License-Identifier: MIT
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/prism/config"
	"github.com/katalvlaran/prism/system"
)

type rootOptions struct {
	logLevel string
	verbose  bool
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "prism",
		Short:         "Polymer Reference Interaction Site Model solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			if opts.verbose && level < logrus.InfoLevel {
				level = logrus.InfoLevel
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warning", "logrus level: debug, info, warning, error")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every iteration")

	cmd.AddCommand(newSolveCmd(log, opts), newCheckCmd(log))

	return cmd
}

// loadSystem reads a config file and builds its system with log attached.
func loadSystem(path string, log logrus.FieldLogger) (*config.Config, *system.System, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	sys, err := cfg.System()
	if err != nil {
		return nil, nil, err
	}
	sys.SetLogger(log)

	return cfg, sys, nil
}
