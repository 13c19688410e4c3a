package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iov-one/cowallet/cmd/walletd/app"
	"github.com/iov-one/cowallet/commands/server"
	"github.com/iov-one/cowallet/errors"
	"github.com/spf13/cobra"
)

func newDumpCmd(root *rootOptions, out io.Writer) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Export the committed state into a badger database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return errors.Wrap(errors.ErrEmpty, "--out is required")
			}
			conf, err := root.load()
			if err != nil {
				return err
			}
			logger, err := server.NewLogger(out, conf)
			if err != nil {
				return err
			}

			dbPath := app.DBPath(conf.Home)
			if _, err := os.Stat(dbPath); err != nil {
				return errors.Wrapf(errors.ErrNotFound, "database %q", dbPath)
			}
			kv, err := app.CommitKVStore(dbPath)
			if err != nil {
				return err
			}
			if c, ok := kv.(interface{ Close() }); ok {
				defer c.Close()
			}
			if err := kv.LoadLatestVersion(); err != nil {
				return err
			}
			switch info, err := kv.LatestVersion(); {
			case err != nil:
				return err
			case info.Version == 0:
				return errors.Wrapf(errors.ErrInvalidState, "nothing committed in %q", dbPath)
			}
			view := kv.CacheWrap()
			defer view.Discard()

			n, err := server.Dump(view, target, logger.With("module", "dump"))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d entries written to %s\n", n, target)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "out", "", "directory of the badger database")
	return cmd
}
