// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package explore

// EnforceMinimumProbability rewrites [pmf] so that every eligible action
// carries at least [minimumUniform]/N of the mass. Actions below the floor
// are raised to it, funded by the actions above it, each of which gives up a
// share proportional to its mass in excess of the floor. Donors therefore
// never drop below the floor themselves and the total mass is preserved.
//
// When [updateZeroElements] is false, actions with exactly zero probability
// are left at zero and sit out the rebalance entirely.
//
// Returns ErrBadRange if [minimumUniform] is outside [0,1] or [pmf] is
// empty. On error [pmf] is left untouched.
func EnforceMinimumProbability(minimumUniform float64, updateZeroElements bool, pmf []float64) error {
	if len(pmf) == 0 || minimumUniform < 0 || minimumUniform > 1 {
		return ErrBadRange
	}

	floor := minimumUniform / float64(len(pmf))
	var deficit, excess float64
	for _, p := range pmf {
		switch {
		case p == 0 && !updateZeroElements:
		case p < floor:
			deficit += floor - p
		case p > floor:
			excess += p - floor
		}
	}
	if deficit == 0 {
		return nil
	}

	// keep is the fraction of its excess each donor retains after funding
	// the floor.
	keep := 0.0
	if excess > deficit {
		keep = (excess - deficit) / excess
	}
	for i, p := range pmf {
		switch {
		case p == 0 && !updateZeroElements:
		case p <= floor:
			pmf[i] = floor
		default:
			pmf[i] = floor + (p-floor)*keep
		}
	}
	return nil
}
