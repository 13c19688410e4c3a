package wallet

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/gconf"
	"github.com/iov-one/cowallet/orm"
	"github.com/iov-one/cowallet/x"
)

const (
	submitCost  = 50
	supportCost = 10
	revokeCost  = 10
	executeCost = 100
)

// CoinMover moves funds between accounts. It is implemented by the host,
// see x/bank.
type CoinMover interface {
	MoveCoins(db cowallet.KVStore, src, dest cowallet.Address, amount uint64) error
}

// Address returns the account holding the wallet funds.
func Address() cowallet.Address {
	return cowallet.NewCondition("wallet", "seq", []byte("cowallet")).Address()
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r cowallet.Registry, auth x.Authenticator, control Controller, mover CoinMover) {
	r.Handle(pathSubmitMsg, SubmitHandler{auth: auth, control: control})
	r.Handle(pathSupportMsg, SupportHandler{auth: auth, control: control})
	r.Handle(pathRevokeMsg, RevokeHandler{auth: auth, control: control})
	r.Handle(pathExecuteMsg, ExecuteHandler{auth: auth, control: control, mover: mover})
}

// RegisterQuery exposes the requests under "/wallet/requests" and the owner
// set under "/wallet/owners".
func RegisterQuery(qr cowallet.QueryRouter) {
	NewRequestBucket().Register("wallet/requests", qr)
	qr.Register("/wallet/owners", gconf.NewQueryHandler(configKey))
}

// caller returns the address of the main signer.
func caller(ctx cowallet.Context, auth x.Authenticator) (cowallet.Address, error) {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return signer.Address(), nil
}

// SubmitHandler creates transfer requests.
type SubmitHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ cowallet.Handler = SubmitHandler{}

func (h SubmitHandler) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cowallet.CheckResult{GasAllocated: submitCost}, nil
}

// Deliver stores the request and returns its id as the result data.
func (h SubmitHandler) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.control.Submit(db, sender, msg.Target, msg.Amount)
	if err != nil {
		return nil, err
	}
	cowallet.GetLogger(ctx).Info("transfer request submitted",
		"request_id", id, "caller", sender, "target", msg.Target, "amount", msg.Amount)
	return &cowallet.DeliverResult{Data: orm.EncodeSequence(id)}, nil
}

func (h SubmitHandler) validate(ctx cowallet.Context, db cowallet.ReadOnlyKVStore, tx cowallet.Tx) (*SubmitTransferRequestMsg, cowallet.Address, error) {
	var msg SubmitTransferRequestMsg
	if err := cowallet.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if err := h.control.Authorize(db, sender); err != nil {
		return nil, nil, err
	}
	return &msg, sender, nil
}

// SupportHandler adds the signer to the request supporters.
type SupportHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ cowallet.Handler = SupportHandler{}

func (h SupportHandler) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cowallet.CheckResult{GasAllocated: supportCost}, nil
}

func (h SupportHandler) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Support(db, sender, msg.RequestID); err != nil {
		return nil, err
	}
	cowallet.GetLogger(ctx).Info("transfer request supported",
		"request_id", msg.RequestID, "caller", sender)
	return &cowallet.DeliverResult{}, nil
}

func (h SupportHandler) validate(ctx cowallet.Context, db cowallet.ReadOnlyKVStore, tx cowallet.Tx) (*SupportTransferRequestMsg, cowallet.Address, error) {
	var msg SupportTransferRequestMsg
	if err := cowallet.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if err := h.control.Authorize(db, sender); err != nil {
		return nil, nil, err
	}
	if _, err := h.control.Request(db, msg.RequestID); err != nil {
		return nil, nil, err
	}
	return &msg, sender, nil
}

// RevokeHandler removes the signer from the request supporters.
type RevokeHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ cowallet.Handler = RevokeHandler{}

func (h RevokeHandler) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cowallet.CheckResult{GasAllocated: revokeCost}, nil
}

func (h RevokeHandler) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.RevokeSupport(db, sender, msg.RequestID); err != nil {
		return nil, err
	}
	cowallet.GetLogger(ctx).Info("transfer request support revoked",
		"request_id", msg.RequestID, "caller", sender)
	return &cowallet.DeliverResult{}, nil
}

func (h RevokeHandler) validate(ctx cowallet.Context, db cowallet.ReadOnlyKVStore, tx cowallet.Tx) (*RevokeSupportMsg, cowallet.Address, error) {
	var msg RevokeSupportMsg
	if err := cowallet.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if err := h.control.Authorize(db, sender); err != nil {
		return nil, nil, err
	}
	if _, err := h.control.Request(db, msg.RequestID); err != nil {
		return nil, nil, err
	}
	return &msg, sender, nil
}

// ExecuteHandler executes fully supported requests and moves the funds
// from the wallet account to the request target.
type ExecuteHandler struct {
	auth    x.Authenticator
	control Controller
	mover   CoinMover
}

var _ cowallet.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cowallet.CheckResult{GasAllocated: executeCost}, nil
}

// Deliver returns the serialized transfer instruction as the result data.
// A failed transfer fails the whole transaction, so the request is only
// removed together with the funds being moved.
func (h ExecuteHandler) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	ins, err := h.control.Execute(db, sender, msg.RequestID)
	if err != nil {
		return nil, err
	}
	if ins.Amount > 0 {
		if err := h.mover.MoveCoins(db, Address(), ins.Target, ins.Amount); err != nil {
			return nil, errors.Wrap(err, "transfer")
		}
	}
	raw, err := ins.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal instruction")
	}
	cowallet.GetLogger(ctx).Info("transfer request executed",
		"request_id", ins.RequestID, "caller", sender, "target", ins.Target, "amount", ins.Amount)
	return &cowallet.DeliverResult{Data: raw}, nil
}

func (h ExecuteHandler) validate(ctx cowallet.Context, db cowallet.ReadOnlyKVStore, tx cowallet.Tx) (*ExecuteTransferRequestMsg, cowallet.Address, error) {
	var msg ExecuteTransferRequestMsg
	if err := cowallet.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if _, err := h.control.CanExecute(db, sender, msg.RequestID); err != nil {
		return nil, nil, err
	}
	return &msg, sender, nil
}
