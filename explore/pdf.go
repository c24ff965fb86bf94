// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package explore

import "math"

// DensityPoint is one sample of a piecewise-linear probability density: the
// relative likelihood [Density] of drawing a value at position [Pos].
type DensityPoint struct {
	Pos     float64
	Density float64
}

// SamplePDF draws a continuous value in [rangeMin, rangeMax] from the
// piecewise-linear density described by [pdf] with [seed].
//
// The density interpolates linearly between consecutive points and extends
// the first and last densities as constants out to the range bounds. The
// draw selects a position by cumulative area, so regions of higher density
// are proportionally more likely.
//
// Returns ErrBadRange if [rangeMax] <= [rangeMin], [pdf] is empty, a density
// is negative, positions are not strictly increasing inside the range, or
// the total area is not positive.
func SamplePDF(seed Seed, pdf []DensityPoint, rangeMin, rangeMax float64) (float64, error) {
	value, _, err := samplePDF(seed, pdf, rangeMin, rangeMax)
	return value, err
}

// SampleRankedPDF draws like [SamplePDF] and additionally returns the element
// of [ranking] paired with the density point owning the drawn position. Each
// point owns the span from its position up to the next one; the first point
// also owns the span down to [rangeMin] and the last point the span up to
// [rangeMax].
//
// Returns ErrPDFRankingSizeMismatch if [ranking] and [pdf] differ in length.
func SampleRankedPDF[T any](seed Seed, pdf []DensityPoint, ranking []T, rangeMin, rangeMax float64) (float64, T, error) {
	var zero T
	if len(ranking) != len(pdf) {
		return 0, zero, ErrPDFRankingSizeMismatch
	}
	value, entry, err := samplePDF(seed, pdf, rangeMin, rangeMax)
	if err != nil {
		return 0, zero, err
	}
	return value, ranking[entry], nil
}

func samplePDF(seed Seed, pdf []DensityPoint, rangeMin, rangeMax float64) (float64, int, error) {
	if len(pdf) == 0 || rangeMax <= rangeMin {
		return 0, 0, ErrBadRange
	}
	prev := rangeMin
	for i, point := range pdf {
		if point.Density < 0 {
			return 0, 0, ErrBadRange
		}
		if i == 0 {
			if point.Pos < rangeMin {
				return 0, 0, ErrBadRange
			}
		} else if point.Pos <= prev {
			return 0, 0, ErrBadRange
		}
		prev = point.Pos
	}
	if prev > rangeMax {
		return 0, 0, ErrBadRange
	}

	totalArea := 0.0
	for k := 0; k <= len(pdf); k++ {
		left, right, leftDensity, rightDensity, _ := segment(pdf, rangeMin, rangeMax, k)
		totalArea += (right - left) * (leftDensity + rightDensity) / 2
	}
	if math.IsNaN(totalArea) || totalArea <= 0 {
		return 0, 0, ErrBadRange
	}

	target := seed.uniform() * totalArea
	area := 0.0
	for k := 0; k <= len(pdf); k++ {
		left, right, leftDensity, rightDensity, entry := segment(pdf, rangeMin, rangeMax, k)
		segmentArea := (right - left) * (leftDensity + rightDensity) / 2
		if area+segmentArea > target {
			frac := (target - area) / segmentArea
			return left + frac*(right-left), entry, nil
		}
		area += segmentArea
	}
	// Rounding can leave the accumulated area just short of the target. The
	// top of the range is returned rather than failing.
	return rangeMax, len(pdf) - 1, nil
}

// segment returns the bounds, edge densities, and owning pdf entry of the
// k'th piece of the density over [rangeMin, rangeMax]. Piece 0 runs from
// [rangeMin] to the first point at constant density, piece len(pdf) runs
// from the last point to [rangeMax] likewise, and every piece in between
// interpolates between two consecutive points.
func segment(pdf []DensityPoint, rangeMin, rangeMax float64, k int) (left, right, leftDensity, rightDensity float64, entry int) {
	switch {
	case k == 0:
		first := pdf[0]
		return rangeMin, first.Pos, first.Density, first.Density, 0
	case k == len(pdf):
		last := pdf[len(pdf)-1]
		return last.Pos, rangeMax, last.Density, last.Density, len(pdf) - 1
	default:
		from, to := pdf[k-1], pdf[k]
		return from.Pos, to.Pos, from.Density, to.Density, k - 1
	}
}
