// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/insolar/hanoi/configuration"
	"github.com/insolar/hanoi/hanoi/solver"
	"github.com/insolar/hanoi/instrumentation/inslogger"
	"github.com/insolar/hanoi/metrics"
	"github.com/insolar/hanoi/movelog"
	"github.com/insolar/hanoi/render"
	"github.com/insolar/hanoi/version"
)

type app struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	configPath string
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut}
}

// flag name -> configuration key
var solverFlags = map[string]string{
	"discs":       "solver.discs",
	"mode":        "solver.mode",
	"print-board": "solver.printboard",
	"concise":     "solver.concise",
	"self-check":  "solver.selfcheck",
	"format":      "solver.format",
	"metrics":     "metrics.enabled",
	"log-level":   "log.level",
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           cmdName,
		Short:         "Towers of Hanoi solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to configuration file")

	rootCmd.AddCommand(
		a.solveCommand(),
		a.playCommand(),
		a.replayCommand(),
		a.configCommand(),
		version.GetCommand(cmdName),
	)
	return rootCmd
}

func addSolverFlags(fs *pflag.FlagSet, interactive bool) {
	def := configuration.NewConfiguration()
	fs.IntP("discs", "n", def.Solver.Discs, "number of discs")
	if !interactive {
		fs.StringP("mode", "m", def.Solver.Mode, "solution mode: n (iterative), r (recursive) or i (interactive)")
		fs.Bool("print-board", def.Solver.PrintBoard, "draw the board before every move")
		fs.String("format", def.Solver.Format, "move listing format: none, text, json or yaml")
	}
	fs.Bool("concise", def.Solver.Concise, "log every move")
	fs.Bool("self-check", def.Solver.SelfCheck, "validate the board after every move")
	fs.Bool("metrics", def.Metrics.Enabled, "dump metrics to stderr when finished")
	fs.String("log-level", def.Log.Level, "log level")
}

func (a *app) solveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the puzzle and list the moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return a.runSolve(cfg)
		},
	}
	addSolverFlags(cmd.Flags(), false)
	return cmd
}

func (a *app) playCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "solve the puzzle by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := a.logger(cfg.Log)
			if err != nil {
				return err
			}
			return a.runPlay(cfg, logger)
		},
	}
	addSolverFlags(cmd.Flags(), true)
	return cmd
}

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.out, configuration.ToString(cfg))
			return err
		},
	}
	addSolverFlags(cmd.Flags(), false)
	return cmd
}

func (a *app) loadConfig(fs *pflag.FlagSet) (configuration.Configuration, error) {
	holder := configuration.NewHolder(a.configPath)
	for name, key := range solverFlags {
		if f := fs.Lookup(name); f != nil {
			if err := holder.Viper.BindPFlag(key, f); err != nil {
				return configuration.Configuration{}, errors.Wrapf(err, "failed to bind flag %s", name)
			}
		}
	}
	if err := holder.Load(); err != nil {
		return configuration.Configuration{}, err
	}
	return *holder.Configuration, nil
}

func (a *app) logger(cfg configuration.Log) (zerolog.Logger, error) {
	output, err := inslogger.ParseOutput(cfg.OutputType, inslogger.StdErrOutput)
	if err != nil {
		return zerolog.Nop(), err
	}
	w := a.errOut
	if output == inslogger.StdOutOutput {
		w = a.out
	}
	return inslogger.NewLogWithWriter(cfg, w)
}

func (a *app) solverConfig(cfg configuration.Configuration, logger *zerolog.Logger) solver.Config {
	return solver.Config{
		Logger:     logger,
		PrintBoard: cfg.Solver.PrintBoard,
		Concise:    cfg.Solver.Concise,
		SelfCheck:  cfg.Solver.SelfCheck,
	}
}

func (a *app) runSolve(cfg configuration.Configuration) error {
	logger, err := a.logger(cfg.Log)
	if err != nil {
		return err
	}

	mode, err := solver.ParseMode(cfg.Solver.Mode)
	if err != nil {
		return err
	}
	if mode == solver.ModeInteractive {
		return a.runPlay(cfg, logger)
	}

	format, err := movelog.ParseFormat(cfg.Solver.Format)
	if err != nil {
		return err
	}

	var (
		text     *movelog.TextWriter
		recorder *solver.Recorder
		listing  solver.MoveSink
	)
	switch {
	case format == movelog.FormatText:
		text = movelog.NewTextWriter(a.out)
		listing = text
	case !format.Streams():
		recorder = &solver.Recorder{}
		listing = recorder
	}

	m := metrics.New(cfg.Metrics.Namespace)
	scfg := a.solverConfig(cfg, &logger)
	if scfg.PrintBoard {
		boardOut := a.out
		if recorder != nil {
			// json and yaml listings own stdout
			boardOut = a.errOut
		}
		snapshot := render.Snapshot(boardOut)
		scfg.Snapshot = func(step uint64, b *solver.Board) {
			if text != nil {
				// keep listed moves and drawn boards in order
				_ = text.Flush()
			}
			snapshot(step, b)
		}
	}

	res, err := solver.Solve(scfg, mode, cfg.Solver.Discs, solver.Sinks(listing, m.Sink(mode)))
	if text != nil {
		if ferr := text.Flush(); ferr != nil && err == nil {
			err = errors.Wrap(ferr, "failed to write moves")
		}
	}
	if err != nil {
		return err
	}
	m.Finished(mode, res.Board)

	if recorder != nil {
		if err := movelog.Encode(a.out, format, recorder.Moves); err != nil {
			return err
		}
	}
	return a.dumpMetrics(cfg, m)
}

func (a *app) dumpMetrics(cfg configuration.Configuration, m *metrics.Metrics) error {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return m.WriteText(a.errOut)
}
