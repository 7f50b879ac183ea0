// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package configuration

// Metrics holds configuration for move metrics.
type Metrics struct {
	// Enabled dumps collected metrics in text exposition format after a run.
	Enabled   bool
	Namespace string
}

// NewMetrics creates new default Metrics configuration.
func NewMetrics() Metrics {
	return Metrics{
		Enabled:   false,
		Namespace: "hanoi",
	}
}
