package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/app"
	"github.com/iov-one/cowallet/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "walletd-genesis")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	state := json.RawMessage(`{"greeting":"hello"}`)

	// New file is created.
	fresh := filepath.Join(dir, "config", "genesis.json")
	require.NoError(t, InitGenesis(fresh, "test-chain", state))
	gen, err := app.LoadGenesis(fresh)
	require.NoError(t, err)
	assert.Equal(t, "test-chain", gen.ChainID)
	var greeting string
	require.NoError(t, gen.AppState.ReadOptions("greeting", &greeting))
	assert.Equal(t, "hello", greeting)

	// Existing file keeps other fields.
	existing := filepath.Join(dir, "existing.json")
	require.NoError(t, ioutil.WriteFile(existing, []byte(`{"chain_id": "other-chain", "validators": []}`), 0600))
	require.NoError(t, InitGenesis(existing, "ignored-chain", state))
	raw, err := ioutil.ReadFile(existing)
	require.NoError(t, err)
	var doc GenesisDoc
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.JSONEq(t, `"other-chain"`, string(doc["chain_id"]))
	assert.JSONEq(t, `[]`, string(doc["validators"]))
	assert.JSONEq(t, string(state), string(doc["app_state"]))

	err = InitGenesis(filepath.Join(dir, "bad.json"), "no", state)
	assert.True(t, errors.ErrInvalidInput.Is(err))
}

func TestValidateGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "walletd-genesis")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	ini := cowallet.InitializerFunc(func(opts cowallet.Options, kv cowallet.KVStore) error {
		var n int
		if err := opts.ReadOptions("number", &n); err != nil {
			return err
		}
		if n < 0 {
			return errors.Wrap(errors.ErrInvalidState, "negative")
		}
		return nil
	})

	good := filepath.Join(dir, "good.json")
	require.NoError(t, InitGenesis(good, "test-chain", json.RawMessage(`{"number": 3}`)))
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, InitGenesis(bad, "test-chain", json.RawMessage(`{"number": -3}`)))

	assert.NoError(t, ValidateGenesis(ini, good))
	err = ValidateGenesis(ini, good, bad)
	assert.True(t, errors.ErrInvalidState.Is(err))

	err = ValidateGenesis(ini, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
