package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/commands/server"
	"github.com/spf13/cobra"
)

const configFile = "walletd.toml"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// rootOptions are the flags shared by all commands.
type rootOptions struct {
	home   string
	config string
}

// load returns the configuration of the home directory. Values that are not
// present in the configuration file use defaults.
func (o *rootOptions) load() (server.Config, error) {
	path := o.config
	if path == "" {
		path = filepath.Join(o.home, configFile)
	}
	return server.LoadConfig(path, server.DefaultConfig(o.home))
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "walletd",
		Short:         "Multi-owner wallet ABCI application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOutput(out)

	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".walletd")
	root.PersistentFlags().StringVar(&opts.home, "home", defaultHome, "directory to store files under")
	root.PersistentFlags().StringVar(&opts.config, "config", "", "configuration file (default $home/"+configFile+")")

	root.AddCommand(
		newInitCmd(opts, out),
		newStartCmd(opts, out),
		newKeysCmd(out),
		newDumpCmd(opts, out),
		newValidateCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the app version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(out, cowallet.Version())
			},
		},
	)
	return root
}
