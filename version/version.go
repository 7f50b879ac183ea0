// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Values are replaced at build time with -ldflags "-X github.com/insolar/hanoi/version.Version=..."
var (
	Version   = "unset"
	BuildDate = "unset"
	GitHash   = "unset"
)

func GetFullVersion() string {
	return fmt.Sprintf("%s (date=%s, hash=%s)", Version, BuildDate, GitHash)
}

// GetCommand returns cobra command that prints version of a binary.
func GetCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version of " + name,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), name, GetFullVersion())
		},
	}
}
