package utils

import (
	"context"
	"testing"

	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
	"github.com/iov-one/cowallet/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "wallet/execute"}}

	res, err := NewActionTagger().Deliver(ctx, db, tx, &weavetest.Handler{})
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, ActionKey, string(res.Tags[0].Key))
	assert.Equal(t, "wallet/execute", string(res.Tags[0].Value))

	_, err = NewActionTagger().Deliver(ctx, db, tx, &weavetest.Handler{DeliverErr: errors.ErrNotFound})
	assert.True(t, errors.ErrNotFound.Is(err))

	broken := &weavetest.Tx{Err: errors.ErrInvalidMsg}
	h := &weavetest.Handler{}
	_, err = NewActionTagger().Deliver(ctx, db, broken, h)
	assert.True(t, errors.ErrInvalidMsg.Is(err))
	assert.Equal(t, 0, h.DeliverCallCount())

	_, err = NewActionTagger().Check(ctx, db, tx, h)
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
}
