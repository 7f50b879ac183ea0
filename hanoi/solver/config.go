// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package solver

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Mode string

const (
	ModeIterative   Mode = "n"
	ModeRecursive   Mode = "r"
	ModeInteractive Mode = "i"
)

var ErrUnknownMode = errors.New("unknown solution mode")

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "iterative", "non-recursive":
		return ModeIterative, nil
	case "r", "recursive":
		return ModeRecursive, nil
	case "i", "interactive":
		return ModeInteractive, nil
	}
	return "", errors.Wrapf(ErrUnknownMode, "%q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeIterative:
		return "iterative"
	case ModeRecursive:
		return "recursive"
	case ModeInteractive:
		return "interactive"
	}
	return string(m)
}

// SnapshotFunc is called by drivers when board snapshots are requested. Rendering is up to the host.
type SnapshotFunc func(step uint64, board *Board)

// Config carries the per-run switches of a driver.
type Config struct {
	// Logger defaults to a no-op logger when nil.
	Logger *zerolog.Logger

	// PrintBoard requests a Snapshot before every step and once after the last one.
	PrintBoard bool
	Snapshot   SnapshotFunc

	// Concise logs one line per move.
	Concise bool

	// SelfCheck validates the whole board after every move.
	SelfCheck bool
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}
