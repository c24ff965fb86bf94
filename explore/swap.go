// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package explore

// SwapChosen moves the element at [chosenIndex] to the front of [actions]
// with a single swap, so a sampled action becomes the first entry of the
// list it was sampled from. Only positions 0 and [chosenIndex] change.
//
// Returns ErrBadRange if [chosenIndex] is out of bounds or [actions] is
// empty.
func SwapChosen[T any](actions []T, chosenIndex int) error {
	if chosenIndex < 0 || chosenIndex >= len(actions) {
		return ErrBadRange
	}
	actions[0], actions[chosenIndex] = actions[chosenIndex], actions[0]
	return nil
}
