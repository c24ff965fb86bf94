// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockSet(t *testing.T) {
	require := require.New(t)

	clock := Clock{}
	fake := time.Date(2023, time.April, 1, 12, 0, 0, 0, time.UTC)
	clock.Set(fake)
	require.Equal(fake, clock.Time())
	require.Equal(fake, clock.Time())

	clock.Sync()
	require.NotEqual(fake, clock.Time())
}
