package utils

import (
	"github.com/iov-one/cowallet"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is used by ActionTagger as the Key in the Tag it appends
const ActionKey = "action"

// ActionTagger adds a tag `action = msg.Path()` to every successfully
// delivered transaction, so clients can search or subscribe to a given
// wallet operation, for example all executed transfers.
type ActionTagger struct{}

var _ cowallet.Decorator = ActionTagger{}

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check just passes the request along
func (ActionTagger) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx, next cowallet.Checker) (*cowallet.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends a tag on the result if there is a success.
func (ActionTagger) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx, next cowallet.Deliverer) (*cowallet.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	})
	return res, nil
}
