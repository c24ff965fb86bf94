// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package explore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"
)

const tolerance = 1e-9

func TestGenerateEpsilonGreedy(t *testing.T) {
	tests := []struct {
		name      string
		epsilon   float64
		topAction int
		size      int
		expected  []float64
	}{
		{
			name:      "greedy",
			epsilon:   0,
			topAction: 0,
			size:      4,
			expected:  []float64{1, 0, 0, 0},
		},
		{
			name:      "uniform",
			epsilon:   1,
			topAction: 2,
			size:      4,
			expected:  []float64{0.25, 0.25, 0.25, 0.25},
		},
		{
			name:      "split",
			epsilon:   0.5,
			topAction: 1,
			size:      2,
			expected:  []float64{0.25, 0.75},
		},
		{
			name:      "single action",
			epsilon:   0.4,
			topAction: 0,
			size:      1,
			expected:  []float64{1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			pmf := make([]float64, test.size)
			require.NoError(GenerateEpsilonGreedy(test.epsilon, test.topAction, pmf))
			require.InDeltaSlice(test.expected, pmf, tolerance)
		})
	}
}

func TestGenerateEpsilonGreedyMass(t *testing.T) {
	require := require.New(t)

	const (
		epsilon = 0.3
		top     = 2
		size    = 5
	)
	pmf := make([]float64, size)
	require.NoError(GenerateEpsilonGreedy(epsilon, top, pmf))

	require.InDelta(1, floats.Sum(pmf), tolerance)
	require.InDelta(1-epsilon+epsilon/size, pmf[top], tolerance)
	for i, p := range pmf {
		if i == top {
			continue
		}
		require.InDelta(epsilon/size, p, tolerance)
	}
}

func TestGenerateEpsilonGreedyBadRange(t *testing.T) {
	tests := []struct {
		name      string
		epsilon   float64
		topAction int
		pmf       []float64
	}{
		{
			name:      "empty pmf",
			epsilon:   0.5,
			topAction: 0,
			pmf:       nil,
		},
		{
			name:      "negative epsilon",
			epsilon:   -0.1,
			topAction: 0,
			pmf:       make([]float64, 3),
		},
		{
			name:      "epsilon above one",
			epsilon:   1.1,
			topAction: 0,
			pmf:       make([]float64, 3),
		},
		{
			name:      "negative top action",
			epsilon:   0.5,
			topAction: -1,
			pmf:       make([]float64, 3),
		},
		{
			name:      "top action out of bounds",
			epsilon:   0.5,
			topAction: 3,
			pmf:       make([]float64, 3),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := GenerateEpsilonGreedy(test.epsilon, test.topAction, test.pmf)
			require.ErrorIs(t, err, ErrBadRange)
		})
	}
}

func TestGenerateSoftmax(t *testing.T) {
	require := require.New(t)

	scores := []float64{1, 3, 2}
	pmf := make([]float64, 3)
	require.NoError(GenerateSoftmax(2, scores, pmf))

	require.InDelta(1, floats.Sum(pmf), tolerance)
	for _, p := range pmf {
		require.Greater(p, 0.0)
	}
	// sharpening must preserve the ordering of the scores
	require.Greater(pmf[1], pmf[2])
	require.Greater(pmf[2], pmf[0])
}

func TestGenerateSoftmaxZeroLambda(t *testing.T) {
	require := require.New(t)

	pmf := make([]float64, 4)
	require.NoError(GenerateSoftmax(0, []float64{-100, 3, 7, 1e9}, pmf))
	require.InDeltaSlice([]float64{0.25, 0.25, 0.25, 0.25}, pmf, tolerance)
}

func TestGenerateSoftmaxNegativeLambda(t *testing.T) {
	require := require.New(t)

	pmf := make([]float64, 3)
	require.NoError(GenerateSoftmax(-1, []float64{1, 3, 2}, pmf))
	require.Greater(pmf[0], pmf[2])
	require.Greater(pmf[2], pmf[1])
}

func TestGenerateSoftmaxLargeScores(t *testing.T) {
	require := require.New(t)

	// Without the max shift these exponentials would overflow float64.
	pmf := make([]float64, 3)
	require.NoError(GenerateSoftmax(1, []float64{1000, 1001, 1002}, pmf))

	require.InDelta(1, floats.Sum(pmf), tolerance)
	for _, p := range pmf {
		require.False(math.IsNaN(p))
		require.False(math.IsInf(p, 0))
	}
	require.Greater(pmf[2], pmf[1])
	require.Greater(pmf[1], pmf[0])
}

func TestGenerateSoftmaxKnownDistribution(t *testing.T) {
	require := require.New(t)

	// weights exp(-ln 2) : exp(0) = 1 : 2
	pmf := make([]float64, 2)
	require.NoError(GenerateSoftmax(1, []float64{0, math.Log(2)}, pmf))
	require.InDelta(1.0/3, pmf[0], tolerance)
	require.InDelta(2.0/3, pmf[1], tolerance)
}

func TestGenerateSoftmaxBadRange(t *testing.T) {
	require := require.New(t)

	require.ErrorIs(GenerateSoftmax(1, nil, nil), ErrBadRange)
	require.ErrorIs(GenerateSoftmax(1, []float64{1, 2, 3}, make([]float64, 4)), ErrBadRange)
	require.ErrorIs(GenerateSoftmax(1, []float64{1, 2, 3, 4}, make([]float64, 3)), ErrBadRange)
}

func TestGenerateBag(t *testing.T) {
	tests := []struct {
		name       string
		topActions []int
		size       int
		expected   []float64
	}{
		{
			name:       "majority",
			topActions: []int{0, 0, 1},
			size:       3,
			expected:   []float64{2.0 / 3, 1.0 / 3, 0},
		},
		{
			name:       "unanimous",
			topActions: []int{1, 1, 1, 1},
			size:       2,
			expected:   []float64{0, 1},
		},
		{
			name:       "single voter",
			topActions: []int{2},
			size:       4,
			expected:   []float64{0, 0, 1, 0},
		},
		{
			name:       "split",
			topActions: []int{3, 1, 3, 0},
			size:       4,
			expected:   []float64{0.25, 0.25, 0, 0.5},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			pmf := make([]float64, test.size)
			require.NoError(GenerateBag(test.topActions, pmf))
			// vote shares are exact, not approximate
			require.Equal(test.expected, pmf)
		})
	}
}

func TestGenerateBagBadRange(t *testing.T) {
	require := require.New(t)

	require.ErrorIs(GenerateBag(nil, make([]float64, 3)), ErrBadRange)
	require.ErrorIs(GenerateBag([]int{0, 3}, make([]float64, 3)), ErrBadRange)
	require.ErrorIs(GenerateBag([]int{-1}, make([]float64, 3)), ErrBadRange)
	require.ErrorIs(GenerateBag([]int{0}, nil), ErrBadRange)
}

func TestGenerateBagFailureLeavesPMF(t *testing.T) {
	require := require.New(t)

	pmf := []float64{0.125, 0.25, 0.625}
	require.ErrorIs(GenerateBag([]int{1, 5}, pmf), ErrBadRange)
	require.Equal([]float64{0.125, 0.25, 0.625}, pmf)
}
