// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package solver

import (
	"fmt"

	"github.com/insolar/hanoi/hanoi/tower"
)

// Move is one relocation of a top disc. Step starts from 1.
type Move struct {
	Step uint64      `json:"step" yaml:"step"`
	Disc tower.Index `json:"disc" yaml:"disc"`
	From string      `json:"from" yaml:"from"`
	To   string      `json:"to" yaml:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%d: %s -> %s", m.Disc, m.From, m.To)
}

// MoveSink receives every applied move in order. An error stops the run.
type MoveSink interface {
	Moved(Move) error
}

// RejectSink is an optional extension of MoveSink that is told about refused moves.
type RejectSink interface {
	Rejected(error)
}

type MoveSinkFunc func(Move) error

func (fn MoveSinkFunc) Moved(m Move) error {
	return fn(m)
}

// Recorder keeps all moves in memory. Use it for small puzzles only, a run has 2^N-1 moves.
type Recorder struct {
	Moves []Move
}

func (r *Recorder) Moved(m Move) error {
	r.Moves = append(r.Moves, m)
	return nil
}

type multiSink []MoveSink

func (v multiSink) Moved(m Move) error {
	for _, s := range v {
		if err := s.Moved(m); err != nil {
			return err
		}
	}
	return nil
}

func (v multiSink) Rejected(err error) {
	for _, s := range v {
		if rs, ok := s.(RejectSink); ok {
			rs.Rejected(err)
		}
	}
}

// Sinks combines sinks, nil entries are skipped. Returns nil when nothing is left.
func Sinks(sinks ...MoveSink) MoveSink {
	res := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			res = append(res, s)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	}
	return res
}
