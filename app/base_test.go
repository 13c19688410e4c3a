package app

import (
	"context"
	"testing"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store/iavl"
	"github.com/iov-one/cowallet/weavetest"
	"github.com/iov-one/cowallet/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

// rawQuery exposes stored values by their exact key.
type rawQuery struct{}

func (rawQuery) Query(db cowallet.ReadOnlyKVStore, mod string, data []byte) ([]cowallet.Model, error) {
	if mod != cowallet.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown mod: %s", mod)
	}
	val, err := db.Get(data)
	if err != nil || val == nil {
		return nil, err
	}
	return []cowallet.Model{cowallet.Pair(data, val)}, nil
}

// decodePath returns a transaction routed to the path that is the
// transaction payload.
func decodePath(raw []byte) (cowallet.Tx, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "empty transaction")
	}
	return &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: string(raw)}}, nil
}

func newTestApp(t *testing.T, db cowallet.CommitKVStore) BaseApp {
	t.Helper()

	r := NewRouter()
	r.Handle("test/write", &weavetest.WriteHandler{Key: []byte("written"), Value: []byte("yes")})
	r.Handle("test/fail", &weavetest.WriteHandler{Key: []byte("failed"), Value: []byte("yes"), Err: errors.ErrInsufficientAmount})
	r.Handle("test/panic", weavetest.PanicHandler{Reason: "boom"})

	qr := cowallet.NewQueryRouter()
	qr.Register("/raw", rawQuery{})

	stack := ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(r)

	init := cowallet.InitializerFunc(func(opts cowallet.Options, kv cowallet.KVStore) error {
		var greeting string
		if err := opts.ReadOptions("greeting", &greeting); err != nil {
			return err
		}
		return kv.Set([]byte("greeting"), []byte(greeting))
	})

	store := NewStoreApp("testapp", db, qr, context.Background()).WithInit(init)
	return NewBaseApp(store, decodePath, stack, false)
}

func TestBaseAppLifecycle(t *testing.T) {
	db := iavl.NewMemCommitStore()
	app := newTestApp(t, db)

	app.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain",
		AppStateBytes: []byte(`{"greeting": "hello"}`),
	})
	assert.Equal(t, "test-chain", app.GetChainID())

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, ChainID: "test-chain"}})

	check := app.CheckTx([]byte("test/write"))
	require.Equal(t, uint32(0), check.Code, check.Log)

	res := app.DeliverTx([]byte("test/write"))
	require.Equal(t, uint32(0), res.Code, res.Log)

	res = app.DeliverTx([]byte("test/fail"))
	assert.Equal(t, errors.ErrInsufficientAmount.ABCICode(), res.Code)

	res = app.DeliverTx([]byte("test/panic"))
	assert.Equal(t, uint32(1), res.Code)
	assert.Equal(t, "cannot deliver tx: internal error", res.Log)

	res = app.DeliverTx([]byte("test/unknown"))
	assert.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)

	res = app.DeliverTx(nil)
	assert.Equal(t, errors.ErrInvalidInput.ABCICode(), res.Code)

	// Nothing is visible to queries before the commit.
	assertQuery(t, app, "written", nil)

	app.EndBlock(abci.RequestEndBlock{Height: 1})
	commit := app.Commit()
	assert.NotEmpty(t, commit.Data)

	assertQuery(t, app, "written", []byte("yes"))
	assertQuery(t, app, "greeting", []byte("hello"))
	// The savepoint rolled back the failed transaction.
	assertQuery(t, app, "failed", nil)

	info := app.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)
	assert.Equal(t, "testapp", info.Data)

	unknown := app.Query(abci.RequestQuery{Path: "/unknown"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), unknown.Code)

	badMod := app.Query(abci.RequestQuery{Path: "/raw?prefix", Data: []byte("w")})
	assert.Equal(t, errors.ErrInvalidInput.ABCICode(), badMod.Code)
}

func TestStoreAppRestart(t *testing.T) {
	db := iavl.NewMemCommitStore()
	app := newTestApp(t, db)
	app.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain",
		AppStateBytes: []byte(`{"greeting": "hello"}`),
	})
	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	app.Commit()

	restarted := newTestApp(t, db)
	assert.Equal(t, "test-chain", restarted.GetChainID())
	assert.Equal(t, "test-chain", cowallet.GetChainID(restarted.BlockContext()))
	height, ok := cowallet.GetHeight(restarted.BlockContext())
	assert.True(t, ok)
	assert.Equal(t, int64(1), height)

	// Genesis cannot be loaded twice.
	assert.Panics(t, func() {
		restarted.InitChain(abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(`{}`)})
	})
}

func TestInitChainRequiresAppState(t *testing.T) {
	app := newTestApp(t, iavl.NewMemCommitStore())
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "test-chain"})
	})
}

func assertQuery(t *testing.T, app BaseApp, key string, want []byte) {
	t.Helper()

	res := app.Query(abci.RequestQuery{Path: "/raw", Data: []byte(key)})
	require.Equal(t, uint32(0), res.Code, res.Log)

	var values ResultSet
	require.NoError(t, values.Unmarshal(res.Value))
	if want == nil {
		assert.Empty(t, values.Results)
		return
	}
	require.Len(t, values.Results, 1)
	assert.Equal(t, want, values.Results[0])
}
