// SPDX-License-Identifier: MIT

// Command prism solves PRISM integral equations described by INI or TOML
// files and writes g(r), c(r), S(k) and w(r) tables and plots.
//
//	prism solve problem.toml --out results --plot
//	prism check problem.ini
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logrus.New()
	if err := newRootCmd(log).ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("prism failed")
		os.Exit(1)
	}
}
