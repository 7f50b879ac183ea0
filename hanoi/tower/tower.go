// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package tower

import (
	"strings"

	"github.com/pkg/errors"
)

type MoveResult uint8

const (
	Rejected MoveResult = iota
	Moved
)

func (v MoveResult) String() string {
	if v == Moved {
		return "moved"
	}
	return "rejected"
}

// Tower is one peg of the puzzle. It exclusively owns its discs, and MoveTo is the only way
// a disc leaves one tower for another.
// Discs are kept bottom first, so the top disc is the last element.
type Tower struct {
	name  string
	discs []Index
}

func Empty(name string) *Tower {
	return &Tower{name: name}
}

// EmptyWithCapacity preallocates room for capacity discs, a tower never holds more than the puzzle size.
func EmptyWithCapacity(name string, capacity int) *Tower {
	if capacity < 0 {
		capacity = 0
	}
	return &Tower{name: name, discs: make([]Index, 0, capacity)}
}

// Full builds a tower holding discs size-1 (bottom) through 0 (top).
func Full(name string, size int) (*Tower, error) {
	switch {
	case size < 0:
		return nil, errors.Wrapf(ErrNegativeSize, "tower %s: size %d", name, size)
	case size > MaxDiscs:
		return nil, errors.Wrapf(ErrTooManyDiscs, "tower %s: size %d, max %d", name, size, MaxDiscs)
	}

	t := EmptyWithCapacity(name, size)
	for i := size - 1; i >= 0; i-- {
		t.discs = append(t.discs, Index(i))
	}
	return t, nil
}

func (t *Tower) Name() string {
	return t.name
}

// Push places disc on top without any legality check. NoDisc is ignored.
func (t *Tower) Push(disc Disc) {
	if idx, ok := disc.Index(); ok {
		t.discs = append(t.discs, idx)
	}
}

func (t *Tower) Pop() (Disc, bool) {
	n := len(t.discs)
	if n == 0 {
		return NoDisc, false
	}
	top := t.discs[n-1]
	t.discs = t.discs[:n-1]
	return DiscOf(top), true
}

func (t *Tower) Peek() Disc {
	if n := len(t.discs); n > 0 {
		return DiscOf(t.discs[n-1])
	}
	return NoDisc
}

func (t *Tower) Count() int {
	return len(t.discs)
}

// IsValid checks that every disc is strictly smaller than the one beneath it.
func (t *Tower) IsValid() bool {
	for i := 1; i < len(t.discs); i++ {
		if t.discs[i] >= t.discs[i-1] {
			return false
		}
	}
	return true
}

// CanMove is the only legality rule of the puzzle: the source has a disc, and the destination
// is either empty or topped by a larger disc.
func (t *Tower) CanMove(dst *Tower) bool {
	top := t.Peek()
	if top.IsEmpty() {
		return false
	}
	onto := dst.Peek()
	return onto.IsEmpty() || top.Smaller(onto)
}

// MoveTo transfers the top disc onto dst. An illegal move changes nothing and returns
// Rejected with *IllegalMoveError.
func (t *Tower) MoveTo(dst *Tower) (MoveResult, error) {
	if !t.CanMove(dst) {
		return Rejected, &IllegalMoveError{
			Disc: t.Peek(),
			Onto: dst.Peek(),
			From: t.name,
			To:   dst.name,
		}
	}

	disc, _ := t.Pop()
	dst.Push(disc)
	return Moved, nil
}

// Discs returns a copy of the disc indices, top first.
func (t *Tower) Discs() []Index {
	n := len(t.discs)
	res := make([]Index, n)
	for i, idx := range t.discs {
		res[n-1-i] = idx
	}
	return res
}

func (t *Tower) String() string {
	b := strings.Builder{}
	b.WriteString(t.name)
	b.WriteByte('[')
	for i, idx := range t.Discs() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(DiscOf(idx).String())
	}
	b.WriteByte(']')
	return b.String()
}
