// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/otsgd/entropic"
)

// Environment keys read by loadEnv.
const (
	envEpsilon  = "OTSGD_EPSILON"
	envRate     = "OTSGD_LR"
	envSeed     = "OTSGD_SEED"
	envLogLevel = "OTSGD_LOG_LEVEL"
	envWorkers  = "OTSGD_WORKERS"
)

// config is the resolved run configuration shared by all subcommands.
type config struct {
	Epsilon      float64
	LearningRate float64
	Seed         int64
	LogLevel     string
	Workers      int
	JSON         bool
}

func defaultConfig() config {
	return config{
		Epsilon:      entropic.DefaultEpsilon,
		LearningRate: entropic.DefaultLearningRate,
		Seed:         1,
		LogLevel:     "info",
	}
}

// loadEnv applies envFile (if present) and then OTSGD_* variables over cfg.
// A missing envFile is not an error; a malformed one is.
func loadEnv(cfg config, envFile string) (config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var err error
	if s, ok := os.LookupEnv(envEpsilon); ok {
		if cfg.Epsilon, err = strconv.ParseFloat(s, 64); err != nil {
			return cfg, fmt.Errorf("%s: %w", envEpsilon, err)
		}
	}
	if s, ok := os.LookupEnv(envRate); ok {
		if cfg.LearningRate, err = strconv.ParseFloat(s, 64); err != nil {
			return cfg, fmt.Errorf("%s: %w", envRate, err)
		}
	}
	if s, ok := os.LookupEnv(envSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			return cfg, fmt.Errorf("%s: %w", envSeed, err)
		}
	}
	if s, ok := os.LookupEnv(envWorkers); ok {
		if cfg.Workers, err = strconv.Atoi(s); err != nil {
			return cfg, fmt.Errorf("%s: %w", envWorkers, err)
		}
	}
	if s, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = s
	}

	return cfg, nil
}

// newLogger builds the stderr text logger for the configured level.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
