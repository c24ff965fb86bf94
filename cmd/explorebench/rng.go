// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
)

// source is the subset of a generator the environment draws from.
type source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator state.
	Uint64() uint64
}

// rng drives the simulated environment: the arm payoff probabilities and the
// Bernoulli rewards handed back to the policies. It is separate from the
// seeds fed to the samplers, which are derived per decision so that runs can
// be replayed.
type rng struct {
	lock sync.Mutex
	src  source
}

func newRNG(seed uint64) *rng {
	src := prng.NewMT19937()
	src.Seed(seed)
	return &rng{src: src}
}

// Float64 returns a uniform draw in [0, 1).
func (r *rng) Float64() float64 {
	r.lock.Lock()
	n := r.src.Uint64()
	r.lock.Unlock()
	return float64(n>>11) / (1 << 53)
}

// Bernoulli returns true with probability [p].
func (r *rng) Bernoulli(p float64) bool {
	return r.Float64() < p
}
