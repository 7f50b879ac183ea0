// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package movelog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/insolar/hanoi/hanoi/solver"
)

type Format string

const (
	FormatNone Format = "none"
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown move log format")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatNone, FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "", "default":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Streams reports whether moves can be written one by one as they happen.
func (f Format) Streams() bool {
	return f == FormatText || f == FormatNone
}

// Encode writes a complete move listing.
func Encode(w io.Writer, format Format, moves []solver.Move) error {
	switch format {
	case FormatNone:
		return nil
	case FormatText:
		tw := NewTextWriter(w)
		for _, m := range moves {
			if err := tw.Moved(m); err != nil {
				return err
			}
		}
		return tw.Flush()
	case FormatJSON:
		if moves == nil {
			moves = []solver.Move{}
		}
		return errors.Wrap(json.NewEncoder(w).Encode(moves), "failed to encode moves as json")
	case FormatYAML:
		out, err := yaml.Marshal(moves)
		if err != nil {
			return errors.Wrap(err, "failed to encode moves as yaml")
		}
		_, err = w.Write(out)
		return err
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// Decode reads a listing written by Encode in json or yaml.
func Decode(r io.Reader, format Format) ([]solver.Move, error) {
	var moves []solver.Move
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&moves); err != nil {
			return nil, errors.Wrap(err, "failed to decode json moves")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&moves); err != nil {
			return nil, errors.Wrap(err, "failed to decode yaml moves")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q can not be decoded", format)
	}
	return moves, nil
}

// TextWriter is a MoveSink printing "disc: FROM -> TO" lines. Call Flush when done.
type TextWriter struct {
	w *bufio.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

func (t *TextWriter) Moved(m solver.Move) error {
	_, err := fmt.Fprintln(t.w, m.String())
	return err
}

func (t *TextWriter) Flush() error {
	return t.w.Flush()
}
