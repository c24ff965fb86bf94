// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package explore

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GenerateEpsilonGreedy overwrites [pmf] with an epsilon-greedy distribution:
// every action receives [epsilon]/N of the mass and [topAction] additionally
// receives the remaining 1-[epsilon].
//
// Returns ErrBadRange if [epsilon] is outside [0,1], [topAction] is out of
// bounds, or [pmf] is empty. On error [pmf] is left untouched.
func GenerateEpsilonGreedy(epsilon float64, topAction int, pmf []float64) error {
	if len(pmf) == 0 || epsilon < 0 || epsilon > 1 {
		return ErrBadRange
	}
	if topAction < 0 || topAction >= len(pmf) {
		return ErrBadRange
	}

	base := epsilon / float64(len(pmf))
	for i := range pmf {
		pmf[i] = base
	}
	pmf[topAction] += 1 - epsilon
	return nil
}

// GenerateSoftmax overwrites [pmf] with the softmax of [scores] sharpened by
// [lambda]. A positive [lambda] concentrates mass on the highest score, a
// negative one on the lowest, and zero yields a uniform distribution.
//
// Returns ErrBadRange if the buffers are empty or their lengths differ. On
// error [pmf] is left untouched.
func GenerateSoftmax(lambda float64, scores, pmf []float64) error {
	if len(scores) == 0 || len(scores) != len(pmf) {
		return ErrBadRange
	}

	// Shifting by the maximum score makes the highest score contribute
	// exactly exp(0) = 1, which keeps the exponentials from overflowing for
	// positive [lambda] no matter how large the scores are.
	maxScore := floats.Max(scores)
	for i, score := range scores {
		pmf[i] = math.Exp(lambda * (score - maxScore))
	}
	floats.Scale(1/floats.Sum(pmf), pmf)
	return nil
}

// GenerateBag overwrites [pmf] with the vote shares of a bag of policies:
// entry i becomes the number of votes for action i divided by the total
// number of votes. [topActions] holds one chosen action per voter.
//
// Returns ErrBadRange if [topActions] is empty or names an action outside
// [pmf]. Votes are validated before anything is written, so on error [pmf]
// is left untouched.
func GenerateBag(topActions []int, pmf []float64) error {
	if len(topActions) == 0 {
		return ErrBadRange
	}
	for _, action := range topActions {
		if action < 0 || action >= len(pmf) {
			return ErrBadRange
		}
	}

	for i := range pmf {
		pmf[i] = 0
	}
	for _, action := range topActions {
		pmf[action]++
	}
	// Each share is a single division of integer tallies, so equal vote
	// counts produce exactly equal probabilities.
	total := float64(len(topActions))
	for i := range pmf {
		pmf[i] /= total
	}
	return nil
}
