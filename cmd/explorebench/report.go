// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"
)

// report renders the per-arm allocation table to [writer] and logs the reward
// rate, the decision latency distribution, and the operation metrics gathered
// from [registry].
func report(result *benchResult, registry *prometheus.Registry, writer io.Writer, log *zap.Logger) error {
	var pulled int64
	for _, pulls := range result.pulls {
		pulled += pulls
	}

	data := make([][]string, len(result.pulls))
	for i, pulls := range result.pulls {
		estimate := 0.0
		if pulls > 0 {
			estimate = float64(result.rewards[i]) / float64(pulls)
		}
		data[i] = []string{
			strconv.Itoa(i),
			fmt.Sprintf("%.4f", result.trueProbs[i]),
			strconv.FormatInt(pulls, 10),
			fmt.Sprintf("%.2f%%", 100*float64(pulls)/float64(pulled)),
			fmt.Sprintf("%.4f", estimate),
		}
	}
	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"Arm", "True P(reward)", "Pulls", "Share", "Estimate"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.AppendBulk(data)
	table.Render()

	mean, err := stats.Mean(result.rewardRates)
	if err != nil {
		return err
	}
	stdev, err := stats.StandardDeviation(result.rewardRates)
	if err != nil {
		return err
	}
	log.Info("reward rate across workers",
		zap.Float64("mean", mean),
		zap.Float64("stdev", stdev),
	)
	log.Info("decision latency",
		zap.Duration("p50", time.Duration(result.latency.ValueAtQuantile(50))),
		zap.Duration("p90", time.Duration(result.latency.ValueAtQuantile(90))),
		zap.Duration("p99", time.Duration(result.latency.ValueAtQuantile(99))),
		zap.Duration("max", time.Duration(result.latency.Max())),
	)

	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			histogram := metric.GetHistogram()
			if histogram == nil {
				continue
			}
			log.Info("operation metered",
				zap.String("metric", family.GetName()),
				zap.Uint64("calls", histogram.GetSampleCount()),
				zap.Duration("totalTime", time.Duration(histogram.GetSampleSum())),
			)
		}
	}
	return nil
}
