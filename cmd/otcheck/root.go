// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the resolved configuration into subcommands.
type app struct {
	cfg     config
	envFile string
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:   "otcheck",
		Short: "Check the stochastic entropic OT solver against Sinkhorn.",
		Long: `otcheck runs averaged stochastic ascent on small transport problems ` +
			`and reports how far its distance estimate is from a converged ` +
			`log-domain Sinkhorn reference.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", ".env", "optional dotenv file with OTSGD_* defaults")
	pf.Float64Var(&a.cfg.Epsilon, "epsilon", a.cfg.Epsilon, "entropic regularisation (env "+envEpsilon+")")
	pf.Float64Var(&a.cfg.LearningRate, "lr", a.cfg.LearningRate, "base learning rate (env "+envRate+")")
	pf.Int64Var(&a.cfg.Seed, "seed", a.cfg.Seed, "random seed, 0 for the library default (env "+envSeed+")")
	pf.IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "cost-matrix goroutines, 0 for GOMAXPROCS (env "+envWorkers+")")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error (env "+envLogLevel+")")
	pf.BoolVar(&a.cfg.JSON, "json", false, "print the report as JSON")

	root.AddCommand(newSyntheticCmd(a), newGoldenCmd(a))

	return root
}

// resolve merges env values under explicitly set flags and builds the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	env, err := loadEnv(defaultConfig(), a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("epsilon") {
		a.cfg.Epsilon = env.Epsilon
	}
	if !flags.Changed("lr") {
		a.cfg.LearningRate = env.LearningRate
	}
	if !flags.Changed("seed") {
		a.cfg.Seed = env.Seed
	}
	if !flags.Changed("workers") {
		a.cfg.Workers = env.Workers
	}
	if !flags.Changed("log-level") {
		a.cfg.LogLevel = env.LogLevel
	}

	a.log, err = newLogger(a.cfg.LogLevel)

	return err
}
