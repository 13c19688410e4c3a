package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
)

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

// InitGenesis writes the app state into the genesis file. An existing file,
// for example created by "tendermint init", keeps all its other fields. A
// missing file is created with the given chain id.
func InitGenesis(filename, chainID string, appState json.RawMessage) error {
	doc := GenesisDoc{}
	switch raw, err := ioutil.ReadFile(filename); {
	case err == nil:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "genesis %q: %s", filename, err)
		}
	case os.IsNotExist(err):
		if !cowallet.IsValidChainID(chainID) {
			return errors.Wrapf(errors.ErrInvalidInput, "chain id %q", chainID)
		}
		id, err := json.Marshal(chainID)
		if err != nil {
			return errors.Wrap(err, "chain id")
		}
		doc["chain_id"] = id
	default:
		return errors.Wrap(err, "read genesis")
	}

	doc["app_state"] = appState
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal genesis")
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrap(err, "genesis directory")
	}
	return ioutil.WriteFile(filename, out, 0600)
}
