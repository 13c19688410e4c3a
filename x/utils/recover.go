package utils

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ cowallet.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx cowallet.Context, store cowallet.KVStore, tx cowallet.Tx, next cowallet.Checker) (_ *cowallet.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx cowallet.Context, store cowallet.KVStore, tx cowallet.Tx, next cowallet.Deliverer) (_ *cowallet.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
