// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package sequencer

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/insolar/hanoi/hanoi/tower"
)

var (
	ErrWidth     = errors.New("counter width out of range")
	ErrExhausted = errors.New("counter exhausted")
)

const maxWord = ^uint(0)

// Counter is an unsigned integer of arbitrary width that is only ever incremented.
// Each increment reports the position of the lowest set bit of the new value, which is
// the index of the disc that moves on that step.
type Counter struct {
	words        []uint // most significant word first
	width        int
	lastRollover uint
	steps        uint64
	exhausted    bool
}

// New allocates a zero counter able to reach 2^width - 1. The increment that would reach 2^width
// fails with ErrExhausted. The width is capped by the disc index range, as a rollover position
// beyond it could not name a disc.
func New(width int) (*Counter, error) {
	if width < 0 || width > tower.MaxDiscs {
		return nil, errors.Wrapf(ErrWidth, "width=%d, max=%d", width, tower.MaxDiscs)
	}

	n := (width + bits.UintSize - 1) / bits.UintSize
	if n == 0 {
		n = 1
	}
	return &Counter{words: make([]uint, n), width: width}, nil
}

// Increment adds one with ripple-carry from the least significant word and returns the
// position of the lowest set bit of the result. Amortized over a run it costs O(1), as a carry
// into the next word happens once per 2^UintSize increments. An exhausted counter is left as it was.
func (c *Counter) Increment() (uint, error) {
	if c.exhausted {
		return c.lastRollover, ErrExhausted
	}

	last := len(c.words) - 1
	carried := 0
	for carried <= last && c.words[last-carried] == maxWord {
		carried++
	}

	if carried > last {
		c.exhausted = true
		return c.lastRollover, errors.Wrapf(ErrExhausted, "after %d steps", c.steps)
	}

	w := c.words[last-carried] + 1
	rollover := uint(carried*bits.UintSize + bits.TrailingZeros(w))
	if rollover >= uint(c.width) {
		c.exhausted = true
		return c.lastRollover, errors.Wrapf(ErrExhausted, "width %d reached after %d steps", c.width, c.steps)
	}

	for i := 0; i < carried; i++ {
		c.words[last-i] = 0
	}
	c.words[last-carried] = w
	c.lastRollover = rollover
	c.steps++
	return c.lastRollover, nil
}

// LastRollover is the lowest set bit of the value after the latest Increment.
func (c *Counter) LastRollover() uint {
	return c.lastRollover
}

// Steps is the number of successful increments, it equals the value while it fits into 64 bits.
func (c *Counter) Steps() uint64 {
	return c.steps
}

func (c *Counter) Width() int {
	return c.width
}

func (c *Counter) Words() int {
	return len(c.words)
}
