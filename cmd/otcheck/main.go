// SPDX-License-Identifier: MIT

// Command otcheck compares the stochastic entropic solver against a converged
// Sinkhorn reference on small synthetic problems.
//
//	otcheck synthetic --sources 7 --targets 4 --budgets 100,1000,10000
//	otcheck golden --json
//
// Defaults come from flags, then OTSGD_* environment variables (optionally
// loaded from a .env file), then the library defaults.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
