// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/insolar/hanoi/configuration"
	"github.com/insolar/hanoi/hanoi/interactive"
	"github.com/insolar/hanoi/hanoi/solver"
	"github.com/insolar/hanoi/metrics"
	"github.com/insolar/hanoi/render"
)

func (a *app) runPlay(cfg configuration.Configuration, logger zerolog.Logger) error {
	m := metrics.New(cfg.Metrics.Namespace)
	session, err := interactive.NewSession(a.solverConfig(cfg, &logger), cfg.Solver.Discs, m.Sink(solver.ModeInteractive))
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(a.in)
	prompt := func(what string, choices []string) (string, bool) {
		_, _ = fmt.Fprintf(a.out, "Select %s stack or [Q]uit [%s]: ", what, strings.Join(choices, ", "))
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

loop:
	for !session.Solved() {
		render.Board(a.out, session.Board())

		src, ok := prompt("source", session.Sources())
		if !ok || interactive.IsQuit(src) {
			break
		}
		dsts, err := session.Destinations(src)
		if err != nil {
			_, _ = fmt.Fprintln(a.out, err)
			continue
		}

		dst, ok := prompt("destination", dsts)
		if !ok {
			break
		}

		outcome, err := session.Turn(src, dst)
		switch {
		case outcome == interactive.Quit:
			break loop
		case err != nil:
			_, _ = fmt.Fprintln(a.out, "Error!", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	render.Board(a.out, session.Board())
	if session.Solved() {
		_, _ = fmt.Fprintf(a.out, "Solved in %d moves\n", session.Moves())
	}
	m.Finished(solver.ModeInteractive, session.Board())
	return a.dumpMetrics(cfg, m)
}
