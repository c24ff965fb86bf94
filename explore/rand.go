// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package explore

import "github.com/ava-labs/exploration/utils/hashing"

// Seed selects the pseudo-random draw behind a sampling operation. The same
// seed always selects the same draw, which is what makes logged decisions
// replayable.
type Seed uint64

// SeedFromString hashes [s] into a Seed. The hash is fixed, so a given string
// maps to the same seed in every process and every release.
func SeedFromString(s string) Seed {
	return Seed(hashing.ComputeHash32([]byte(s)))
}

// uniform maps the seed to a draw in [0,1).
//
// The mapping is a stateless bit mixer rather than a shared generator, so
// draws for sequential seeds are decorrelated without any synchronization.
//
// Invariant: Callers replay logged decisions by reusing seeds, so any change
// to this mapping is considered breaking.
func (s Seed) uniform() float64 {
	z := uint64(s) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}
