// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package sequencer

import "math/bits"

// Grey converts a step number to a binary-reflected grey code.
// Bit k of Grey(t) is the parity of how many times disc k has moved after t steps.
func Grey(v uint64) uint64 {
	return v ^ (v >> 1)
}

// GreyInc gives the only bit that differs between Grey(v) and Grey(v+1).
func GreyInc(v uint64) uint64 {
	return Grey(v ^ (v + 1))
}

// GreyIncBit is the disc index moved by step v+1. Same as Counter.LastRollover after v+1 increments.
func GreyIncBit(v uint64) uint8 {
	if v&1 == 0 {
		return 0
	}
	return uint8(bits.Len64(GreyInc(v)) - 1)
}
