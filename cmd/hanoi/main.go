// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package main

import (
	"os"

	jww "github.com/spf13/jwalterweatherman"

	"github.com/insolar/hanoi/configuration"
	"github.com/insolar/hanoi/instrumentation/inslogger"
)

const cmdName = "hanoi"

func main() {
	jww.SetStdoutThreshold(jww.LevelError)

	rootCmd := newApp(os.Stdin, os.Stdout, os.Stderr).rootCommand()
	if err := rootCmd.Execute(); err != nil {
		// the configured logger may be the reason of the failure, fall back to defaults
		logger, _ := inslogger.NewLog(configuration.NewLog())
		logger.Fatal().Err(err).Msg(cmdName + " execution failed")
		os.Exit(1)
	}
}
