package utils

import (
	"context"
	"testing"

	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
	"github.com/iov-one/cowallet/weavetest"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	h := weavetest.PanicHandler{Reason: "boom"}
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()
	tx := &weavetest.Tx{}

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { h.Check(ctx, s, tx) })
	assert.Panics(t, func() { h.Deliver(ctx, s, tx) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, s, tx, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, s, tx, h)
	assert.True(t, errors.ErrPanic.Is(err))
}
