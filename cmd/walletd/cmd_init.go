package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/cmd/walletd/app"
	"github.com/iov-one/cowallet/commands/server"
	"github.com/iov-one/cowallet/errors"
	"github.com/spf13/cobra"
)

func newInitCmd(root *rootOptions, out io.Writer) *cobra.Command {
	var (
		owners   []string
		accounts []string
		funds    uint64
		balance  uint64
		chainID  string
		genesis  string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize app options in genesis file",
		Long: `Write the wallet owners and the initial funding into the app_state of the
genesis file. An existing genesis file, as created by "tendermint init", is
updated in place. A default configuration file is written to the home
directory unless one already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.GenesisOptions{Funds: funds, Balance: balance}
			for _, enc := range owners {
				addr, err := parseAddress(enc)
				if err != nil {
					return errors.Wrapf(err, "owner %q", enc)
				}
				opts.Owners = append(opts.Owners, addr)
			}
			for _, enc := range accounts {
				addr, err := parseAddress(enc)
				if err != nil {
					return errors.Wrapf(err, "account %q", enc)
				}
				opts.Accounts = append(opts.Accounts, addr)
			}
			state, err := app.GenInitOptions(opts)
			if err != nil {
				return err
			}

			if genesis == "" {
				genesis = filepath.Join(root.home, "config", "genesis.json")
			}
			if err := server.InitGenesis(genesis, chainID, state); err != nil {
				return err
			}
			fmt.Fprintf(out, "Genesis written to %s\n", genesis)
			return writeDefaultConfig(root)
		},
	}
	cmd.Flags().StringSliceVar(&owners, "owner", nil, "wallet owner address, repeat for every owner")
	cmd.Flags().StringSliceVar(&accounts, "account", nil, "address of an account funded at genesis")
	cmd.Flags().Uint64Var(&funds, "funds", 0, "initial balance of the wallet")
	cmd.Flags().Uint64Var(&balance, "balance", 0, "initial balance of every --account")
	cmd.Flags().StringVar(&chainID, "chain-id", "wallet-chain", "chain id used when creating a new genesis file")
	cmd.Flags().StringVar(&genesis, "genesis", "", "genesis file (default $home/config/genesis.json)")
	return cmd
}

// parseAddress accepts all address formats and requires a non empty result.
func parseAddress(enc string) (cowallet.Address, error) {
	addr, err := cowallet.ParseAddress(enc)
	if err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

func writeDefaultConfig(root *rootOptions) error {
	path := root.config
	if path == "" {
		path = filepath.Join(root.home, configFile)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "config directory")
	}
	fd, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create config")
	}
	defer fd.Close()
	return server.WriteConfig(fd, server.DefaultConfig(root.home))
}
