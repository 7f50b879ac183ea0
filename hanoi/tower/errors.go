// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package tower

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrNegativeSize = errors.New("negative tower size")
	ErrTooManyDiscs = errors.New("too many discs for disc index width")
)

// IllegalMoveError describes a rejected MoveTo. It matches ErrIllegalMove with errors.Is.
type IllegalMoveError struct {
	Disc Disc // top of the source tower, NoDisc when the source was empty
	Onto Disc // top of the destination tower
	From string
	To   string
}

func (e *IllegalMoveError) Error() string {
	if e.Disc.IsEmpty() {
		return fmt.Sprintf("%s: tower %s is empty, nothing to move to %s", ErrIllegalMove, e.From, e.To)
	}
	return fmt.Sprintf("%s: disc %s from %s can not be placed onto disc %s at %s",
		ErrIllegalMove, e.Disc, e.From, e.Onto, e.To)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}
