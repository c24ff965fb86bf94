// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// explorebench drives the exploration library with a simulated multi-armed
// bandit and reports arm allocation, decision latency, and the gathered
// prometheus metrics.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ava-labs/exploration/explore/meterexplore"
)

func main() {
	config, err := getConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load config: %s\n", err)
		os.Exit(1)
	}

	log, err := newLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't build logger: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	registry := prometheus.NewRegistry()
	explorer, err := meterexplore.New(config.MetricsNamespace, registry)
	if err != nil {
		log.Fatal("couldn't register metrics", zap.Error(err))
	}

	log.Info("starting benchmark",
		zap.String("policy", config.Policy),
		zap.String("runID", config.RunID),
		zap.Int("actions", config.Actions),
		zap.Int("rounds", config.Rounds),
		zap.Int("workers", config.Workers),
	)

	result, err := runBench(config, explorer, log)
	if err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}
	if err := report(result, registry, os.Stdout, log); err != nil {
		log.Fatal("couldn't render report", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parsed)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}
