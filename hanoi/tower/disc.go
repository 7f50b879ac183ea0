// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package tower

import (
	"math"
	"strconv"
)

// Index identifies a disc by its size. Zero is the smallest disc.
type Index uint8

// MaxDiscs is the largest number of discs a puzzle can hold, every index of [0, MaxDiscs) must fit into Index.
const MaxDiscs = math.MaxUint8 + 1

// Disc is either an occupied slot holding a disc index or the empty sentinel NoDisc.
type Disc struct {
	index    Index
	occupied bool
}

// NoDisc is returned by Peek and Pop when a tower has nothing left on it.
var NoDisc = Disc{}

func DiscOf(index Index) Disc {
	return Disc{index: index, occupied: true}
}

func (v Disc) IsEmpty() bool {
	return !v.occupied
}

func (v Disc) Index() (Index, bool) {
	return v.index, v.occupied
}

// Smaller is true when both discs are present and v is smaller than other.
func (v Disc) Smaller(other Disc) bool {
	return v.occupied && other.occupied && v.index < other.index
}

func (v Disc) String() string {
	if !v.occupied {
		return "-"
	}
	return strconv.Itoa(int(v.index))
}
