// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterexplore

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/exploration/utils/metric"
	"github.com/ava-labs/exploration/utils/wrappers"
)

func newMetric(namespace, name string) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("Latency of a %s call in nanoseconds", name),
		Buckets:   metric.NanosecondsBuckets,
	})
}

type metrics struct {
	generateEpsilonGreedy,
	generateSoftmax,
	generateBag,
	enforceMinimumProbability,
	sampleAfterNormalizing,
	sampleWithoutNormalizing,
	samplePDF,
	sampleRankedPDF,
	swapChosen prometheus.Histogram
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.generateEpsilonGreedy = newMetric(namespace, "generate_epsilon_greedy")
	m.generateSoftmax = newMetric(namespace, "generate_softmax")
	m.generateBag = newMetric(namespace, "generate_bag")
	m.enforceMinimumProbability = newMetric(namespace, "enforce_minimum_probability")
	m.sampleAfterNormalizing = newMetric(namespace, "sample_after_normalizing")
	m.sampleWithoutNormalizing = newMetric(namespace, "sample_without_normalizing")
	m.samplePDF = newMetric(namespace, "sample_pdf")
	m.sampleRankedPDF = newMetric(namespace, "sample_ranked_pdf")
	m.swapChosen = newMetric(namespace, "swap_chosen")

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.generateEpsilonGreedy),
		registerer.Register(m.generateSoftmax),
		registerer.Register(m.generateBag),
		registerer.Register(m.enforceMinimumProbability),
		registerer.Register(m.sampleAfterNormalizing),
		registerer.Register(m.sampleWithoutNormalizing),
		registerer.Register(m.samplePDF),
		registerer.Register(m.sampleRankedPDF),
		registerer.Register(m.swapChosen),
	)
	return errs.Err
}
