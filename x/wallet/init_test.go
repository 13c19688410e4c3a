package wallet

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"wallet": {
			"owners": [
				"E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
				"hex:0000000000000000000000000000000000000001"
			]
		}
	}`

	var opts cowallet.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	owners, err := NewController().Owners(db)
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, "0000000000000000000000000000000000000001", owners[0].String())
	assert.Equal(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", owners[1].String())
}

func TestGenesisInvalid(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"no owners": {
			genesis: `{"wallet": {"owners": []}}`,
			wantErr: ErrInvalidOwnerSet,
		},
		"malformed owner": {
			genesis: `{"wallet": {"owners": ["zz"]}}`,
			wantErr: errors.ErrInvalidInput,
		},
		"malformed section": {
			genesis: `{"wallet": []}`,
			wantErr: errors.ErrInvalidInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts cowallet.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))
			err := Initializer{}.FromGenesis(opts, store.MemStore())
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestGenesisWithoutWallet(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(cowallet.Options{}, db))

	_, err := NewController().Owners(db)
	assert.True(t, errors.ErrInvalidState.Is(err))
}
