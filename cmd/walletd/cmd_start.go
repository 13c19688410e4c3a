package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/cowallet/cmd/walletd/app"
	"github.com/iov-one/cowallet/commands/server"
	"github.com/spf13/cobra"
)

func newStartCmd(root *rootOptions, out io.Writer) *cobra.Command {
	var (
		bind     string
		debug    bool
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the abci server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := root.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("bind") {
				conf.Bind = bind
			}
			if cmd.Flags().Changed("debug") {
				conf.Debug = debug
			}
			if cmd.Flags().Changed("log-level") {
				conf.LogLevel = logLevel
			}
			logger, err := server.NewLogger(out, conf)
			if err != nil {
				return err
			}
			logger = logger.With("module", "walletd")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sig)
			go func() {
				select {
				case s := <-sig:
					logger.Info("shutting down", "signal", s)
					cancel()
				case <-ctx.Done():
				}
			}()

			return server.Start(ctx, app.GenerateApp, logger, conf)
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "address server listens on")
	cmd.Flags().BoolVar(&debug, "debug", false, "call stack returned on error")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "one of debug, info, error or none")
	return cmd
}
