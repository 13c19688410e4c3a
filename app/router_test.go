package app

import (
	"context"
	"testing"

	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
	"github.com/iov-one/cowallet/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterSuccess(t *testing.T) {
	const path = "wallet/submit"

	var (
		r       = NewRouter()
		handler = &weavetest.Handler{}
		tx      = &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: path}}
		ctx     = context.Background()
		db      = store.MemStore()
	)
	r.Handle(path, handler)

	_, err := r.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, tx)
	require.NoError(t, err)
	assert.Equal(t, 2, handler.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	var (
		r   = NewRouter()
		tx  = &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "wallet/unknown"}}
		ctx = context.Background()
		db  = store.MemStore()
	)

	_, err := r.Check(ctx, db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterBrokenTx(t *testing.T) {
	r := NewRouter()
	tx := &weavetest.Tx{Err: errors.ErrInvalidMsg}

	_, err := r.Deliver(context.Background(), store.MemStore(), tx)
	assert.True(t, errors.ErrInvalidMsg.Is(err))
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("wallet/execute", &weavetest.Handler{})

	assert.Panics(t, func() { r.Handle("wallet/execute", &weavetest.Handler{}) })
	assert.Panics(t, func() { r.Handle("wallet execute", &weavetest.Handler{}) })
	assert.Panics(t, func() { r.Handle("", &weavetest.Handler{}) })
}
