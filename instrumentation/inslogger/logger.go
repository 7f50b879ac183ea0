// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package inslogger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/insolar/hanoi/configuration"
)

const TimestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

type LogFormat uint8

const (
	TextFormat LogFormat = iota
	JSONFormat
)

func (f LogFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

type LogOutput uint8

const (
	StdErrOutput LogOutput = iota
	StdOutOutput
)

func (o LogOutput) String() string {
	if o == StdOutOutput {
		return "stdout"
	}
	return "stderr"
}

const zerologAdapter = "zerolog"

func init() {
	zerolog.TimeFieldFormat = TimestampFormat
}

func ParseFormat(formatStr string, defValue LogFormat) (LogFormat, error) {
	switch strings.ToLower(formatStr) {
	case "", "default":
		return defValue, nil
	case TextFormat.String():
		return TextFormat, nil
	case JSONFormat.String():
		return JSONFormat, nil
	}
	return defValue, errors.Errorf("unknown Format: '%s', replaced with '%s'", formatStr, defValue)
}

func ParseOutput(outputStr string, defValue LogOutput) (LogOutput, error) {
	switch strings.ToLower(outputStr) {
	case "", "default":
		return defValue, nil
	case StdErrOutput.String():
		return StdErrOutput, nil
	case StdOutOutput.String():
		return StdOutOutput, nil
	}
	return defValue, errors.Errorf("unknown Output: '%s', replaced with '%s'", outputStr, defValue)
}

// NewLog creates a logger writing to the output named by cfg.
func NewLog(cfg configuration.Log) (zerolog.Logger, error) {
	output, err := ParseOutput(cfg.OutputType, StdErrOutput)
	if err != nil {
		return zerolog.Nop(), err
	}

	var w io.Writer = os.Stderr
	if output == StdOutOutput {
		w = os.Stdout
	}
	return NewLogWithWriter(cfg, w)
}

// NewLogWithWriter creates a logger on top of w, cfg.OutputType is ignored.
func NewLogWithWriter(cfg configuration.Log, w io.Writer) (zerolog.Logger, error) {
	switch strings.ToLower(cfg.Adapter) {
	case "", zerologAdapter:
	default:
		return zerolog.Nop(), errors.Errorf("invalid logger config, unknown adapter: '%s'", cfg.Adapter)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "invalid logger config")
	}

	format, err := ParseFormat(cfg.Formatter, TextFormat)
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "invalid logger config")
	}

	if format == TextFormat {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05.000"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
