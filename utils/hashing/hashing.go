// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import "github.com/spaolacci/murmur3"

// ComputeHash32 computes a 32 bit hash of the input byte slice. The hash is
// seeded with a fixed constant, so a given input maps to the same value in
// every process.
//
// This is not a cryptographic hash. It is used to reduce opaque identifiers,
// such as decision keys, onto a small deterministic space.
func ComputeHash32(buf []byte) uint32 {
	return murmur3.Sum32(buf)
}
