// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package solver

import (
	"github.com/pkg/errors"

	"github.com/insolar/hanoi/hanoi/sequencer"
	"github.com/insolar/hanoi/hanoi/tower"
)

// smallestDiscNext maps a tower position (A=0, B=1, C=2) to the next position of disc 0.
// An odd number of discs needs A->C->B->A and an even one A->B->C->A for the puzzle to end on C.
func smallestDiscNext(numDiscs int) [3]int {
	if numDiscs&1 == 1 {
		return [3]int{2, 0, 1}
	}
	return [3]int{1, 2, 0}
}

// RunIterative solves a fresh puzzle of numDiscs without recursion.
func RunIterative(cfg Config, numDiscs int, sink MoveSink) (Result, error) {
	board, err := NewBoard(numDiscs)
	if err != nil {
		return Result{}, err
	}
	return board.SolveIterative(cfg, sink)
}

// SolveIterative moves all discs from A to C. On step t the disc to move is the lowest set bit
// of t, taken from a binary counter. Disc 0 follows a fixed rotation, any other disc has
// exactly one legal destination. Exactly 2^N-1 moves are made.
func (b *Board) SolveIterative(cfg Config, sink MoveSink) (Result, error) {
	r := NewRunner(cfg, ModeIterative, b, sink)
	if err := r.start(); err != nil {
		return r.result(), err
	}

	counter, err := sequencer.New(b.numDiscs)
	if err != nil {
		return r.result(), err
	}

	towers := b.Towers()
	next := smallestDiscNext(b.numDiscs)

	for !b.Solved() {
		r.Snapshot()

		bit, err := counter.Increment()
		if err != nil {
			return r.result(), errors.Wrap(err, "iterative solver")
		}
		if cfg.SelfCheck && uint(sequencer.GreyIncBit(counter.Steps()-1)) != bit {
			return r.result(), errors.Wrapf(ErrInvariant, "step %d: counter selected disc %d", counter.Steps(), bit)
		}

		src := topWithIndex(towers, bit)
		if src < 0 {
			return r.result(), errors.Wrapf(ErrInvariant, "step %d: disc %d is not on top of any tower",
				counter.Steps(), bit)
		}

		dst := next[src]
		if bit != 0 {
			if dst, err = onlyDestination(towers, src); err != nil {
				return r.result(), errors.Wrapf(err, "step %d", counter.Steps())
			}
		}

		if _, err := r.Move(towers[src], towers[dst]); err != nil {
			return r.result(), err
		}
	}

	return r.finish()
}

// topWithIndex scans A, B, C and returns the first position whose top disc is bit, or -1.
func topWithIndex(towers [3]*tower.Tower, bit uint) int {
	for i, t := range towers {
		if idx, ok := t.Peek().Index(); ok && uint(idx) == bit {
			return i
		}
	}
	return -1
}

func onlyDestination(towers [3]*tower.Tower, src int) (int, error) {
	d1, d2 := (src+1)%3, (src+2)%3
	ok1, ok2 := towers[src].CanMove(towers[d1]), towers[src].CanMove(towers[d2])

	switch {
	case ok1 && !ok2:
		return d1, nil
	case ok2 && !ok1:
		return d2, nil
	case ok1:
		return -1, errors.Wrapf(ErrInvariant, "top of %s can go both to %s and %s",
			towers[src].Name(), towers[d1].Name(), towers[d2].Name())
	default:
		return -1, errors.Wrapf(ErrInvariant, "top of %s has nowhere to go", towers[src].Name())
	}
}
