// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package meterexplore wraps the explore operations with prometheus latency
// histograms, so callers can watch the cost of policy generation and
// sampling in production.
package meterexplore

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/exploration/explore"
	"github.com/ava-labs/exploration/utils/timer/mockable"
)

// Explorer meters every operation it forwards to the explore package.
type Explorer struct {
	metrics
	clock mockable.Clock
}

// New returns an Explorer whose metrics are registered under [namespace]
// with [registerer].
func New(namespace string, registerer prometheus.Registerer) (*Explorer, error) {
	e := &Explorer{}
	return e, e.metrics.Initialize(namespace, registerer)
}

func (e *Explorer) GenerateEpsilonGreedy(epsilon float64, topAction int, pmf []float64) error {
	start := e.clock.Time()
	err := explore.GenerateEpsilonGreedy(epsilon, topAction, pmf)
	end := e.clock.Time()
	e.metrics.generateEpsilonGreedy.Observe(float64(end.Sub(start)))
	return err
}

func (e *Explorer) GenerateSoftmax(lambda float64, scores, pmf []float64) error {
	start := e.clock.Time()
	err := explore.GenerateSoftmax(lambda, scores, pmf)
	end := e.clock.Time()
	e.metrics.generateSoftmax.Observe(float64(end.Sub(start)))
	return err
}

func (e *Explorer) GenerateBag(topActions []int, pmf []float64) error {
	start := e.clock.Time()
	err := explore.GenerateBag(topActions, pmf)
	end := e.clock.Time()
	e.metrics.generateBag.Observe(float64(end.Sub(start)))
	return err
}

func (e *Explorer) EnforceMinimumProbability(minimumUniform float64, updateZeroElements bool, pmf []float64) error {
	start := e.clock.Time()
	err := explore.EnforceMinimumProbability(minimumUniform, updateZeroElements, pmf)
	end := e.clock.Time()
	e.metrics.enforceMinimumProbability.Observe(float64(end.Sub(start)))
	return err
}

func (e *Explorer) SampleAfterNormalizing(seed explore.Seed, pmf []float64) (int, error) {
	start := e.clock.Time()
	index, err := explore.SampleAfterNormalizing(seed, pmf)
	end := e.clock.Time()
	e.metrics.sampleAfterNormalizing.Observe(float64(end.Sub(start)))
	return index, err
}

func (e *Explorer) SampleWithoutNormalizing(seed explore.Seed, pmf []float64) (int, error) {
	start := e.clock.Time()
	index, err := explore.SampleWithoutNormalizing(seed, pmf)
	end := e.clock.Time()
	e.metrics.sampleWithoutNormalizing.Observe(float64(end.Sub(start)))
	return index, err
}

func (e *Explorer) SamplePDF(seed explore.Seed, pdf []explore.DensityPoint, rangeMin, rangeMax float64) (float64, error) {
	start := e.clock.Time()
	value, err := explore.SamplePDF(seed, pdf, rangeMin, rangeMax)
	end := e.clock.Time()
	e.metrics.samplePDF.Observe(float64(end.Sub(start)))
	return value, err
}

// Methods cannot take type parameters, so the generic operations are metered
// by free functions over an [Explorer].

func SampleRankedPDF[T any](e *Explorer, seed explore.Seed, pdf []explore.DensityPoint, ranking []T, rangeMin, rangeMax float64) (float64, T, error) {
	start := e.clock.Time()
	value, chosen, err := explore.SampleRankedPDF(seed, pdf, ranking, rangeMin, rangeMax)
	end := e.clock.Time()
	e.metrics.sampleRankedPDF.Observe(float64(end.Sub(start)))
	return value, chosen, err
}

func SwapChosen[T any](e *Explorer, actions []T, chosenIndex int) error {
	start := e.clock.Time()
	err := explore.SwapChosen(actions, chosenIndex)
	end := e.clock.Time()
	e.metrics.swapChosen.Observe(float64(end.Sub(start)))
	return err
}
