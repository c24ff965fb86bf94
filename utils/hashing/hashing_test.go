// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeHash32(t *testing.T) {
	// Published test vectors for 32 bit murmur3 with a zero seed.
	tests := []struct {
		input    string
		expected uint32
	}{
		{
			input:    "",
			expected: 0x00000000,
		},
		{
			input:    "hello",
			expected: 0x248bfa47,
		},
		{
			input:    "hello, world",
			expected: 0x149bbb7f,
		},
		{
			input:    "19 Jan 2038 at 3:14:07 AM",
			expected: 0xe31e8a70,
		},
		{
			input:    "The quick brown fox jumps over the lazy dog",
			expected: 0x2e4ff723,
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			require.Equal(t, test.expected, ComputeHash32([]byte(test.input)))
		})
	}
}

func TestComputeHash32Stability(t *testing.T) {
	require := require.New(t)

	input := []byte{0, 1, 2, 255, 254, 253}
	expected := ComputeHash32(input)
	for i := 0; i < 10; i++ {
		require.Equal(expected, ComputeHash32(input))
	}
}
