package app

import (
	"encoding/json"
	"path/filepath"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/crypto"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/x/bank"
	"github.com/iov-one/cowallet/x/wallet"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenesisOptions describes the app_state written by "walletd init".
type GenesisOptions struct {
	Owners []cowallet.Address
	// Funds is the initial balance of the wallet account.
	Funds uint64
	// Accounts are funded with Balance each.
	Accounts []cowallet.Address
	Balance  uint64
}

// GenInitOptions produces the app_state of the genesis file.
func GenInitOptions(opts GenesisOptions) (json.RawMessage, error) {
	if len(opts.Owners) == 0 {
		return nil, errors.Wrap(wallet.ErrInvalidOwnerSet, "no owners")
	}

	accounts := []bank.GenesisAccount{
		{Address: wallet.Address(), Balance: opts.Funds},
	}
	for _, a := range opts.Accounts {
		accounts = append(accounts, bank.GenesisAccount{Address: a, Balance: opts.Balance})
	}

	state := map[string]interface{}{
		"bank":   accounts,
		"wallet": wallet.Genesis{Owners: opts.Owners},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal app state")
	}
	return raw, nil
}

// DBPath returns the location of the application database inside of the
// home directory. An empty home means an in memory database.
func DBPath(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, "wallet.db")
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	application, err := Application("walletd", Stack(), TxDecoder, DBPath(home), debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	if logger != nil {
		application.WithLogger(logger)
	}
	return application, nil
}

// KeyOutput is the json representation of a generated key pair.
type KeyOutput struct {
	Address cowallet.Address   `json:"address"`
	Pubkey  *crypto.PublicKey  `json:"pub_key"`
	Secret  *crypto.PrivateKey `json:"secret"`
}

// NewKeyOutput returns the json friendly representation of the key.
func NewKeyOutput(key *crypto.PrivateKey) KeyOutput {
	pub := key.PublicKey()
	return KeyOutput{
		Address: pub.Address(),
		Pubkey:  pub,
		Secret:  key,
	}
}
