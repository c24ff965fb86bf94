// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package explore

import "gonum.org/v1/gonum/floats"

// SampleAfterNormalizing normalizes [pmf] in place and then samples an index
// from it with [seed]. This is the entry point for callers whose weights do
// not already sum to 1.
//
// Returns ErrBadRange if [pmf] is empty or its mass is not positive, in
// which case [pmf] is left untouched.
func SampleAfterNormalizing(seed Seed, pmf []float64) (int, error) {
	if len(pmf) == 0 {
		return 0, ErrBadRange
	}
	total := floats.Sum(pmf)
	if total <= 0 {
		return 0, ErrBadRange
	}
	floats.Scale(1/total, pmf)
	return sampleIndex(seed, pmf), nil
}

// SampleWithoutNormalizing samples an index from [pmf] with [seed]. The
// distribution must already be normalized; it is read but never written.
//
// Returns ErrBadRange if [pmf] is empty.
func SampleWithoutNormalizing(seed Seed, pmf []float64) (int, error) {
	if len(pmf) == 0 {
		return 0, ErrBadRange
	}
	return sampleIndex(seed, pmf), nil
}

// sampleIndex walks the cumulative distribution of [pmf] and returns the
// first index whose running total exceeds the seed's draw.
//
// Rounding can leave the final total just short of the draw even though the
// mass sums to 1. The last index is returned in that case, so a well-formed
// distribution never fails to produce an action.
func sampleIndex(seed Seed, pmf []float64) int {
	draw := seed.uniform()
	sum := 0.0
	for i, p := range pmf {
		sum += p
		if sum > draw {
			return i
		}
	}
	return len(pmf) - 1
}
