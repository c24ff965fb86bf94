// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package explore computes and samples the probability distributions used by
// online decision policies to trade exploitation against exploration.
//
// Callers build a probability mass function over their action set with one of
// the generators, optionally pass it through [EnforceMinimumProbability], and
// hand it to a sampler together with a [Seed] to draw an action. Every
// operation writes through the caller's buffer and keeps no state, so equal
// inputs always produce equal outputs. A buffer must not be shared between
// concurrent calls.
package explore

import "errors"

var (
	// ErrBadRange is returned when a parameter falls outside its documented
	// domain, an index is out of bounds, or a buffer is empty. Output buffers
	// must not be trusted after an error.
	ErrBadRange = errors.New("bad range")

	// ErrPDFRankingSizeMismatch is returned when a ranking does not pair one
	// element with every density point of the pdf it annotates.
	ErrPDFRankingSizeMismatch = errors.New("pdf and ranking size mismatch")
)
