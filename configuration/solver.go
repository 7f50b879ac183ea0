// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package configuration

// Solver holds configuration of a puzzle run.
type Solver struct {
	// Discs is the puzzle size.
	Discs int
	// Mode is n (iterative), r (recursive) or i (interactive).
	Mode string
	// PrintBoard draws the board before every step and after the last one.
	PrintBoard bool
	// Concise logs one line per move.
	Concise bool
	// SelfCheck validates the board after every move.
	SelfCheck bool
	// Format of the move listing: none, text, json or yaml.
	Format string
}

// NewSolver creates new default Solver configuration.
func NewSolver() Solver {
	return Solver{
		Discs:  3,
		Mode:   "n",
		Format: "text",
	}
}
