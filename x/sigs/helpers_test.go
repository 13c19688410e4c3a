package sigs

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/weavetest"
)

// stdTx is a signed transaction carrying a raw message payload.
type stdTx struct {
	weavetest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*stdTx)(nil)
var _ cowallet.Tx = (*stdTx)(nil)

func newStdTx(payload []byte) *stdTx {
	msg := &weavetest.Msg{RoutePath: "test/sign", Serialized: payload}
	return &stdTx{Tx: weavetest.Tx{Msg: msg}}
}

func (tx *stdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *stdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// sigCheckHandler stores the seen signers on each call
type sigCheckHandler struct {
	Signers []cowallet.Condition
}

var _ cowallet.Handler = (*sigCheckHandler)(nil)

func (s *sigCheckHandler) Check(ctx cowallet.Context, store cowallet.KVStore, tx cowallet.Tx) (*cowallet.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &cowallet.CheckResult{}, nil
}

func (s *sigCheckHandler) Deliver(ctx cowallet.Context, store cowallet.KVStore, tx cowallet.Tx) (*cowallet.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &cowallet.DeliverResult{}, nil
}
