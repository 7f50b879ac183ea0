// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package solver

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/insolar/hanoi/hanoi/tower"
)

type Result struct {
	Board *Board
	Moves uint64
}

// Runner applies moves to a board on behalf of a driver and reports them to logging,
// the optional self-check and the sink. It is not safe for concurrent use.
type Runner struct {
	cfg   Config
	log   zerolog.Logger
	mode  Mode
	board *Board
	sink  MoveSink
	moves uint64
}

func NewRunner(cfg Config, mode Mode, board *Board, sink MoveSink) *Runner {
	log := cfg.logger().With().Str("driver", mode.String()).Int("discs", board.NumDiscs()).Logger()
	return &Runner{
		cfg:   cfg,
		log:   log,
		mode:  mode,
		board: board,
		sink:  sink,
	}
}

func (r *Runner) Board() *Board {
	return r.board
}

func (r *Runner) Moves() uint64 {
	return r.moves
}

func (r *Runner) Logger() *zerolog.Logger {
	return &r.log
}

// Snapshot hands the board to Config.Snapshot when PrintBoard is set.
func (r *Runner) Snapshot() {
	if r.cfg.PrintBoard && r.cfg.Snapshot != nil {
		r.cfg.Snapshot(r.moves, r.board)
	}
}

// Move transfers the top disc of from onto to. A refused move leaves the board as it was,
// is passed to a RejectSink and is returned as *tower.IllegalMoveError with a zero Move.
// A non-zero Move.Step means the disc was moved, even when the sink or the self-check failed.
func (r *Runner) Move(from, to *tower.Tower) (Move, error) {
	top := from.Peek()
	if _, err := from.MoveTo(to); err != nil {
		r.log.Warn().Err(err).Msg("move rejected")
		if rs, ok := r.sink.(RejectSink); ok {
			rs.Rejected(err)
		}
		return Move{}, err
	}

	r.moves++
	idx, _ := top.Index()
	m := Move{Step: r.moves, Disc: idx, From: from.Name(), To: to.Name()}

	if r.cfg.Concise {
		r.log.Info().Uint64("step", m.Step).Msg(m.String())
	}
	if r.cfg.SelfCheck {
		if err := r.board.Check(); err != nil {
			return m, errors.Wrapf(err, "after step %d", m.Step)
		}
	}
	if r.sink != nil {
		if err := r.sink.Moved(m); err != nil {
			return m, errors.Wrapf(err, "move sink failed at step %d", m.Step)
		}
	}
	return m, nil
}

func (r *Runner) start() error {
	if r.board.A.Count() != r.board.NumDiscs() || r.moves != 0 {
		return errors.Wrap(ErrInvariant, "board is not in the initial position")
	}
	r.log.Info().Msg("solve started")
	return nil
}

func (r *Runner) finish() (Result, error) {
	r.Snapshot()
	res := r.result()
	if !r.board.Solved() {
		return res, errors.Wrapf(ErrInvariant, "finished with %d of %d discs on %s",
			r.board.C.Count(), r.board.NumDiscs(), NameC)
	}
	r.log.Info().Uint64("moves", r.moves).Msg("solve finished")
	return res, nil
}

func (r *Runner) result() Result {
	return Result{Board: r.board, Moves: r.moves}
}
