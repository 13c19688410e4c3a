package server

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/app"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
)

// ValidateGenesis loads the app state of every genesis file into a
// throwaway store, using given initializer.
func ValidateGenesis(ini cowallet.Initializer, genesisPaths ...string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini cowallet.Initializer, genesisPath string) error {
	genesis, err := app.LoadGenesis(genesisPath)
	if err != nil {
		return err
	}
	if len(genesis.AppState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app state")
	}
	if err := ini.FromGenesis(genesis.AppState, store.MemStore()); err != nil {
		return errors.Wrap(err, "initialize")
	}
	return nil
}
