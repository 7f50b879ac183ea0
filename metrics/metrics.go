// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package metrics

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/insolar/hanoi/hanoi/solver"
)

const driverLabel = "driver"

// Metrics is a private registry of puzzle counters, one per process or test.
type Metrics struct {
	Registry *prometheus.Registry

	Moves    *prometheus.CounterVec
	Rejected *prometheus.CounterVec
	Solves   *prometheus.CounterVec
	Discs    prometheus.Gauge
}

func New(namespace string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Number of applied disc moves",
		}, []string{driverLabel}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_moves_total",
			Help:      "Number of refused illegal moves",
		}, []string{driverLabel}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Number of puzzles brought to the solved state",
		}, []string{driverLabel}),
		Discs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "discs",
			Help:      "Size of the latest puzzle",
		}),
	}

	m.Registry.MustRegister(m.Moves, m.Rejected, m.Solves, m.Discs)
	return m
}

// Sink counts moves and rejections of one driver.
func (m *Metrics) Sink(mode solver.Mode) *DriverSink {
	return &DriverSink{
		moves:    m.Moves.WithLabelValues(mode.String()),
		rejected: m.Rejected.WithLabelValues(mode.String()),
	}
}

// Finished records a run result.
func (m *Metrics) Finished(mode solver.Mode, board *solver.Board) {
	m.Discs.Set(float64(board.NumDiscs()))
	if board.Solved() {
		m.Solves.WithLabelValues(mode.String()).Inc()
	}
}

// WriteText dumps all metrics in text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}

	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "failed to encode metrics")
		}
	}
	return nil
}

type DriverSink struct {
	moves    prometheus.Counter
	rejected prometheus.Counter
}

func (s *DriverSink) Moved(solver.Move) error {
	s.moves.Inc()
	return nil
}

func (s *DriverSink) Rejected(error) {
	s.rejected.Inc()
}
