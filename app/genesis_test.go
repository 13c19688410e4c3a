package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "genesis")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "genesis.json")
	content := `{"chain_id": "test-chain", "app_state": {"wallet": {"owners": []}}}`
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))

	gen, err := LoadGenesis(path)
	require.NoError(t, err)
	assert.Equal(t, "test-chain", gen.ChainID)
	assert.Contains(t, gen.AppState, "wallet")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, ioutil.WriteFile(broken, []byte("{"), 0600))
	_, err = LoadGenesis(broken)
	assert.True(t, errors.ErrInvalidInput.Is(err))

	_, err = LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	record := func(name string, err error) cowallet.Initializer {
		return cowallet.InitializerFunc(func(cowallet.Options, cowallet.KVStore) error {
			calls = append(calls, name)
			return err
		})
	}

	init := ChainInitializers(record("a", nil), record("b", nil))
	require.NoError(t, init.FromGenesis(nil, store.MemStore()))
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	init = ChainInitializers(record("a", errors.ErrInvalidInput), record("b", nil))
	err := init.FromGenesis(nil, store.MemStore())
	assert.True(t, errors.ErrInvalidInput.Is(err))
	assert.Equal(t, []string{"a"}, calls)
}
