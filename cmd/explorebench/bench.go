// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/schollz/progressbar/v3"

	"go.uber.org/zap"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ava-labs/exploration/explore"
	"github.com/ava-labs/exploration/explore/meterexplore"
)

type benchResult struct {
	trueProbs   []float64
	pulls       []int64
	rewards     []int64
	rewardRates []float64
	latency     *hdrhistogram.Histogram
}

// runBench plays [cfg.Workers] independent bandits against the same simulated
// environment and merges their results.
func runBench(cfg Config, explorer *meterexplore.Explorer, log *zap.Logger) (*benchResult, error) {
	env := newRNG(cfg.RNGSeed)
	trueProbs := make([]float64, cfg.Actions)
	for i := range trueProbs {
		trueProbs[i] = env.Float64()
	}
	log.Info("simulated environment ready",
		zap.Uint64("rngSeed", cfg.RNGSeed),
		zap.Int("bestArm", floats.MaxIdx(trueProbs)),
		zap.Float64("bestArmProbability", floats.Max(trueProbs)),
	)

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Workers)
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(cfg.Rounds)*int64(cfg.Workers), "sampling")
	}

	workers := make([]*worker, cfg.Workers)
	eg, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < cfg.Workers; i++ {
		w := newWorker(&cfg, i, trueProbs, explorer, limiter, bar)
		workers[i] = w
		eg.Go(func() error {
			return w.run(ctx)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return mergeResults(cfg, trueProbs, workers), nil
}

// worker runs one bandit. Workers share the explorer and the rate limiter but
// nothing else, so they only synchronize on the metrics.
type worker struct {
	cfg      *Config
	id       int
	explorer *meterexplore.Explorer
	limiter  *rate.Limiter
	bar      *progressbar.ProgressBar

	trueProbs []float64
	rewardRNG *rng
	poisson   distuv.Poisson

	estimates    []float64
	pulls        []int64
	rewards      []int64
	bagEstimates [][]float64
	bagPulls     [][]int64

	pmf     []float64
	votes   []int
	ranking []int
	pdf     []explore.DensityPoint

	latency *hdrhistogram.Histogram
}

func newWorker(
	cfg *Config,
	id int,
	trueProbs []float64,
	explorer *meterexplore.Explorer,
	limiter *rate.Limiter,
	bar *progressbar.ProgressBar,
) *worker {
	src := prng.NewMT19937()
	src.Seed(cfg.RNGSeed + uint64(id) + 1)
	w := &worker{
		cfg:       cfg,
		id:        id,
		explorer:  explorer,
		limiter:   limiter,
		bar:       bar,
		trueProbs: trueProbs,
		rewardRNG: &rng{src: src},
		poisson: distuv.Poisson{
			Lambda: 1,
			Src:    src,
		},
		estimates: make([]float64, cfg.Actions),
		pulls:     make([]int64, cfg.Actions),
		rewards:   make([]int64, cfg.Actions),
		pmf:       make([]float64, cfg.Actions),
		votes:     make([]int, cfg.Bags),
		ranking:   make([]int, cfg.Actions),
		latency:   hdrhistogram.New(1, int64(time.Minute), 3),
	}
	if cfg.Policy == PolicyBag {
		w.bagEstimates = make([][]float64, cfg.Bags)
		w.bagPulls = make([][]int64, cfg.Bags)
		for i := range w.bagEstimates {
			w.bagEstimates[i] = make([]float64, cfg.Actions)
			w.bagPulls[i] = make([]int64, cfg.Actions)
		}
	}
	if cfg.Policy == PolicyContinuous {
		w.pdf = make([]explore.DensityPoint, cfg.Actions)
	}
	return w
}

func (w *worker) run(ctx context.Context) error {
	for round := 0; round < w.cfg.Rounds; round++ {
		if w.limiter != nil {
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		seed := explore.SeedFromString(fmt.Sprintf("%s-%d-%d", w.cfg.RunID, w.id, round))
		start := time.Now()
		chosen, err := w.decide(seed)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("worker %d round %d: %w", w.id, round, err)
		}
		_ = w.latency.RecordValue(elapsed.Nanoseconds())

		var reward int64
		if w.rewardRNG.Bernoulli(w.trueProbs[chosen]) {
			reward = 1
		}
		w.pulls[chosen]++
		w.rewards[chosen] += reward
		w.update(chosen, float64(reward))

		if w.bar != nil {
			_ = w.bar.Add(1)
		}
	}
	return nil
}

// decide generates the policy's distribution over the arms, floors it, and
// samples the arm to pull.
func (w *worker) decide(seed explore.Seed) (int, error) {
	switch w.cfg.Policy {
	case PolicyEpsilonGreedy:
		if err := w.explorer.GenerateEpsilonGreedy(w.cfg.Epsilon, floats.MaxIdx(w.estimates), w.pmf); err != nil {
			return 0, err
		}
	case PolicySoftmax:
		if err := w.explorer.GenerateSoftmax(w.cfg.Lambda, w.estimates, w.pmf); err != nil {
			return 0, err
		}
	case PolicyBag:
		for i, estimates := range w.bagEstimates {
			w.votes[i] = floats.MaxIdx(estimates)
		}
		if err := w.explorer.GenerateBag(w.votes, w.pmf); err != nil {
			return 0, err
		}
	case PolicyContinuous:
		return w.decideContinuous(seed)
	}

	if w.cfg.MinimumProbability > 0 {
		if err := w.explorer.EnforceMinimumProbability(w.cfg.MinimumProbability, false, w.pmf); err != nil {
			return 0, err
		}
	}
	chosen, err := w.explorer.SampleAfterNormalizing(seed, w.pmf)
	if err != nil {
		return 0, err
	}
	w.resetRanking()
	return chosen, meterexplore.SwapChosen(w.explorer, w.ranking, chosen)
}

// decideContinuous spreads the arms over the unit interval and samples a
// position from a density shaped by the reward estimates. The returned arm is
// the one owning the sampled position.
func (w *worker) decideContinuous(seed explore.Seed) (int, error) {
	w.resetRanking()
	n := float64(len(w.estimates))
	for i, estimate := range w.estimates {
		w.pdf[i] = explore.DensityPoint{
			Pos: (float64(i) + 0.5) / n,
			// Keep a positive density everywhere so cold arms stay
			// reachable.
			Density: estimate + 0.05,
		}
	}
	_, chosen, err := meterexplore.SampleRankedPDF(w.explorer, seed, w.pdf, w.ranking, 0, 1)
	if err != nil {
		return 0, err
	}
	return chosen, meterexplore.SwapChosen(w.explorer, w.ranking, chosen)
}

func (w *worker) resetRanking() {
	for i := range w.ranking {
		w.ranking[i] = i
	}
}

func (w *worker) update(chosen int, reward float64) {
	w.estimates[chosen] += (reward - w.estimates[chosen]) / float64(w.pulls[chosen])
	if w.cfg.Policy != PolicyBag {
		return
	}
	// Online bagging: each ensemble member sees the example a
	// Poisson-distributed number of times.
	for i, estimates := range w.bagEstimates {
		for n := int(w.poisson.Rand()); n > 0; n-- {
			w.bagPulls[i][chosen]++
			estimates[chosen] += (reward - estimates[chosen]) / float64(w.bagPulls[i][chosen])
		}
	}
}

func mergeResults(cfg Config, trueProbs []float64, workers []*worker) *benchResult {
	result := &benchResult{
		trueProbs:   trueProbs,
		pulls:       make([]int64, cfg.Actions),
		rewards:     make([]int64, cfg.Actions),
		rewardRates: make([]float64, 0, len(workers)),
		latency:     hdrhistogram.New(1, int64(time.Minute), 3),
	}
	for _, w := range workers {
		var pulled, rewarded int64
		for i := range result.pulls {
			result.pulls[i] += w.pulls[i]
			result.rewards[i] += w.rewards[i]
			pulled += w.pulls[i]
			rewarded += w.rewards[i]
		}
		result.latency.Merge(w.latency)
		result.rewardRates = append(result.rewardRates, float64(rewarded)/float64(pulled))
	}
	return result
}
