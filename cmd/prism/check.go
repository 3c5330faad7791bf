// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCheckCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check <config>",
		Short: "Validate and assemble a problem without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sys, err := loadSystem(args[0], log)
			if err != nil {
				return err
			}
			a, err := sys.Assemble()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "types: %v\n", sys.Types())
			fmt.Fprintf(out, "grid: %s\n", sys.Domain())
			for _, pr := range sys.Closure.Pairs() {
				cl, _ := sys.Closure.Get(pr.A, pr.B)
				om, _ := sys.Omega.Get(pr.A, pr.B)
				fmt.Fprintf(out, "%s: %s %s\n", pr, cl, om)
			}
			for _, p := range a.Potentials {
				fmt.Fprintf(out, "  %s\n", p)
			}
			for _, w := range a.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}

			return nil
		},
	}
}
