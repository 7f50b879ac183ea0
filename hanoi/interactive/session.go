// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package interactive

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/insolar/hanoi/hanoi/solver"
	"github.com/insolar/hanoi/hanoi/tower"
)

// Unavailable marks a tower that can not be chosen in a prompt.
const Unavailable = "X"

const quit = "Q"

var ErrBadInput = errors.New("bad input")

type Outcome uint8

const (
	Moved Outcome = iota
	Rejected
	Quit
)

func (v Outcome) String() string {
	switch v {
	case Moved:
		return "moved"
	case Rejected:
		return "rejected"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Session is a puzzle driven by a person, one move per Turn.
type Session struct {
	runner *solver.Runner
	board  *solver.Board
}

func NewSession(cfg solver.Config, numDiscs int, sink solver.MoveSink) (*Session, error) {
	board, err := solver.NewBoard(numDiscs)
	if err != nil {
		return nil, err
	}
	return &Session{
		runner: solver.NewRunner(cfg, solver.ModeInteractive, board, sink),
		board:  board,
	}, nil
}

func (s *Session) Board() *solver.Board {
	return s.board
}

func (s *Session) Moves() uint64 {
	return s.runner.Moves()
}

func (s *Session) Solved() bool {
	return s.board.Solved()
}

// Sources lists A, B, C in order with Unavailable in place of an empty tower.
func (s *Session) Sources() []string {
	res := make([]string, 0, 3)
	for _, t := range s.board.Towers() {
		if t.Peek().IsEmpty() {
			res = append(res, Unavailable)
		} else {
			res = append(res, t.Name())
		}
	}
	return res
}

// Destinations lists the two other towers in A, B, C order with Unavailable in place of
// those that can not take the top disc of src.
func (s *Session) Destinations(src string) ([]string, error) {
	from, err := s.tower(src)
	if err != nil {
		return nil, err
	}

	res := make([]string, 0, 2)
	for _, t := range s.board.Towers() {
		switch {
		case t == from:
			continue
		case from.CanMove(t):
			res = append(res, t.Name())
		default:
			res = append(res, Unavailable)
		}
	}
	return res, nil
}

// IsQuit reports whether an input line asks to end the session.
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), quit)
}

// Turn applies one move given as two tower letters. Malformed input returns ErrBadInput and
// changes nothing. An illegal move returns Rejected with *tower.IllegalMoveError. Moved with an
// error means the board did change but the move could not be reported or checked.
func (s *Session) Turn(src, dst string) (Outcome, error) {
	if IsQuit(src) || IsQuit(dst) {
		return Quit, nil
	}

	from, err := s.tower(src)
	if err != nil {
		return Rejected, err
	}
	to, err := s.tower(dst)
	if err != nil {
		return Rejected, err
	}
	if from == to {
		return Rejected, errors.Wrapf(ErrBadInput, "source and destination are both %s", from.Name())
	}

	m, err := s.runner.Move(from, to)
	switch {
	case err == nil:
	case m.Step == 0:
		return Rejected, err
	default:
		// the disc was moved, the error comes from a sink or the self-check
		return Moved, err
	}

	if s.Solved() {
		s.runner.Logger().Info().Uint64("moves", s.Moves()).Msg("puzzle solved")
	}
	return Moved, nil
}

func (s *Session) tower(name string) (*tower.Tower, error) {
	if t, ok := s.board.ByName(strings.ToUpper(strings.TrimSpace(name))); ok {
		return t, nil
	}
	return nil, errors.Wrapf(ErrBadInput, "unknown tower %q", name)
}
