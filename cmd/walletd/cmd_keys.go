package main

import (
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/iov-one/cowallet/cmd/walletd/app"
	"github.com/iov-one/cowallet/crypto"
	"github.com/iov-one/cowallet/errors"
	"github.com/spf13/cobra"
)

// defaultPath is the first account of the IOV coin type.
const defaultPath = "m/44'/234'/0'"

func newKeysCmd(out io.Writer) *cobra.Command {
	var (
		seed string
		path string
	)
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate an ed25519 key pair",
		Long: `Generate an ed25519 key pair and print it together with its address. When
a hex encoded seed is given, the key is derived from it using the given
hardened derivation path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var key *crypto.PrivateKey
			if seed == "" {
				key = crypto.GenPrivKeyEd25519()
			} else {
				raw, err := hex.DecodeString(seed)
				if err != nil {
					return errors.Wrapf(errors.ErrInvalidInput, "seed: %s", err)
				}
				key, err = crypto.DerivePrivKeyEd25519(raw, path)
				if err != nil {
					return err
				}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(app.NewKeyOutput(key))
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "hex encoded seed, random key when empty")
	cmd.Flags().StringVar(&path, "path", defaultPath, "derivation path")
	return cmd
}
