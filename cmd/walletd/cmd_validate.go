package main

import (
	"github.com/iov-one/cowallet/cmd/walletd/app"
	"github.com/iov-one/cowallet/commands/server"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <genesis.json>...",
		Short: "Check that the genesis files can be loaded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.ValidateGenesis(app.Initializers(), args...)
		},
	}
}
