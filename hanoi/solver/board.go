// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package solver

import (
	"github.com/pkg/errors"

	"github.com/insolar/hanoi/hanoi/tower"
)

const (
	NameA = "A"
	NameB = "B"
	NameC = "C"
)

var ErrInvariant = errors.New("puzzle invariant violated")

// Board is the three towers of a puzzle. Discs start on A and the solution ends on C.
type Board struct {
	A, B, C  *tower.Tower
	numDiscs int
}

func NewBoard(numDiscs int) (*Board, error) {
	a, err := tower.Full(NameA, numDiscs)
	if err != nil {
		return nil, err
	}
	return &Board{
		A:        a,
		B:        tower.EmptyWithCapacity(NameB, numDiscs),
		C:        tower.EmptyWithCapacity(NameC, numDiscs),
		numDiscs: numDiscs,
	}, nil
}

func (b *Board) NumDiscs() int {
	return b.numDiscs
}

func (b *Board) Towers() [3]*tower.Tower {
	return [3]*tower.Tower{b.A, b.B, b.C}
}

// ByName resolves a single tower letter.
func (b *Board) ByName(name string) (*tower.Tower, bool) {
	switch name {
	case NameA:
		return b.A, true
	case NameB:
		return b.B, true
	case NameC:
		return b.C, true
	}
	return nil, false
}

func (b *Board) Solved() bool {
	return b.C.Count() == b.numDiscs
}

// Check verifies that every tower is ordered and that the discs on all towers are exactly {0..N-1}.
func (b *Board) Check() error {
	seen := make([]bool, b.numDiscs)
	total := 0
	for _, t := range b.Towers() {
		if !t.IsValid() {
			return errors.Wrapf(ErrInvariant, "tower %s is out of order", t)
		}
		for _, idx := range t.Discs() {
			switch {
			case int(idx) >= b.numDiscs:
				return errors.Wrapf(ErrInvariant, "tower %s holds unknown disc %d", t.Name(), idx)
			case seen[idx]:
				return errors.Wrapf(ErrInvariant, "disc %d is duplicated", idx)
			}
			seen[idx] = true
			total++
		}
	}
	if total != b.numDiscs {
		return errors.Wrapf(ErrInvariant, "found %d discs of %d", total, b.numDiscs)
	}
	return nil
}
