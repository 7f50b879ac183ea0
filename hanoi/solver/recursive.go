// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package solver

import (
	"github.com/pkg/errors"

	"github.com/insolar/hanoi/hanoi/tower"
)

func RunRecursive(cfg Config, numDiscs int, sink MoveSink) (Result, error) {
	board, err := NewBoard(numDiscs)
	if err != nil {
		return Result{}, err
	}
	return board.SolveRecursive(cfg, sink)
}

// SolveRecursive is the textbook solution: move N-1 discs aside, move the largest, move N-1 back on top.
func (b *Board) SolveRecursive(cfg Config, sink MoveSink) (Result, error) {
	r := NewRunner(cfg, ModeRecursive, b, sink)
	if err := r.start(); err != nil {
		return r.result(), err
	}
	if err := r.recurse(b.numDiscs, b.A, b.C, b.B); err != nil {
		return r.result(), err
	}
	return r.finish()
}

func (r *Runner) recurse(count int, src, dst, spare *tower.Tower) error {
	if count == 0 {
		return nil
	}
	if err := r.recurse(count-1, src, spare, dst); err != nil {
		return err
	}

	r.Snapshot()
	if _, err := r.Move(src, dst); err != nil {
		return errors.Wrapf(err, "moving %d discs from %s to %s", count, src.Name(), dst.Name())
	}

	return r.recurse(count-1, spare, dst, src)
}

// Solve runs a non-interactive driver on a fresh board.
func Solve(cfg Config, mode Mode, numDiscs int, sink MoveSink) (Result, error) {
	switch mode {
	case ModeIterative:
		return RunIterative(cfg, numDiscs, sink)
	case ModeRecursive:
		return RunRecursive(cfg, numDiscs, sink)
	}
	return Result{}, errors.Wrapf(ErrUnknownMode, "%s can not be run unattended", mode)
}
