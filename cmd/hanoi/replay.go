// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/insolar/hanoi/configuration"
	"github.com/insolar/hanoi/hanoi/interactive"
	"github.com/insolar/hanoi/hanoi/solver"
	"github.com/insolar/hanoi/metrics"
	"github.com/insolar/hanoi/movelog"
	"github.com/insolar/hanoi/render"
)

var errListingMismatch = errors.New("move listing does not match the board")

func (a *app) replayCommand() *cobra.Command {
	var inputFormat string
	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "apply a json or yaml move listing to a fresh board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			format, err := movelog.ParseFormat(inputFormat)
			if err != nil {
				return err
			}

			in := a.in
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "failed to open move listing")
				}
				defer f.Close()
				in = f
			}

			moves, err := movelog.Decode(in, format)
			if err != nil {
				return err
			}
			logger, err := a.logger(cfg.Log)
			if err != nil {
				return err
			}
			return a.runReplay(cfg, logger, moves)
		},
	}
	cmd.Flags().StringVar(&inputFormat, "input-format", string(movelog.FormatJSON), "move listing format: json or yaml")
	addSolverFlags(cmd.Flags(), true)
	return cmd
}

func (a *app) runReplay(cfg configuration.Configuration, logger zerolog.Logger, moves []solver.Move) error {
	m := metrics.New(cfg.Metrics.Namespace)
	session, err := interactive.NewSession(a.solverConfig(cfg, &logger), cfg.Solver.Discs, m.Sink(solver.ModeInteractive))
	if err != nil {
		return err
	}

	for i, mv := range moves {
		if err := checkListed(session, uint64(i+1), mv); err != nil {
			return err
		}
		if _, err := session.Turn(mv.From, mv.To); err != nil {
			return errors.Wrapf(err, "listed move %s", mv)
		}
	}

	render.Board(a.out, session.Board())
	_, _ = fmt.Fprintf(a.out, "Replayed %d moves, solved: %t\n", len(moves), session.Solved())
	m.Finished(solver.ModeInteractive, session.Board())
	return a.dumpMetrics(cfg, m)
}

// checkListed verifies the step number and the disc of a listed move before it is applied.
func checkListed(session *interactive.Session, step uint64, mv solver.Move) error {
	if mv.Step != step {
		return errors.Wrapf(errListingMismatch, "expected step %d, listed %d", step, mv.Step)
	}
	from, ok := session.Board().ByName(mv.From)
	if !ok {
		return errors.Wrapf(interactive.ErrBadInput, "step %d: unknown tower %q", step, mv.From)
	}
	if top, ok := from.Peek().Index(); ok && top != mv.Disc {
		return errors.Wrapf(errListingMismatch, "step %d: disc %d is listed, %s has %d on top",
			step, mv.Disc, mv.From, top)
	}
	return nil
}
