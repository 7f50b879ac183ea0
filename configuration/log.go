// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package configuration

// Log holds configuration for logging
type Log struct {
	// Default level for logger
	Level string
	// Logging adapter - only zerolog by now
	Adapter string
	// Log output format - text or json
	Formatter string
	// Log output type - stderr or stdout
	OutputType string
}

// NewLog creates new default configuration for logging
func NewLog() Log {
	return Log{
		Level:      "info",
		Adapter:    "zerolog",
		Formatter:  "text",
		OutputType: "stderr",
	}
}
