package weavetest

import "github.com/iov-one/cowallet"

// Handler is a mock implementation of the cowallet.Handler interface.
//
// Each method call is counted. If set, the error is returned, otherwise the
// configured result.
type Handler struct {
	checkCall   int
	CheckResult cowallet.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult cowallet.DeliverResult
	DeliverErr    error
}

var _ cowallet.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the key value pair before returning the configured
// error (which may be nil).
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ cowallet.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &cowallet.CheckResult{}, h.Err
}

func (h *WriteHandler) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &cowallet.DeliverResult{}, h.Err
}

// PanicHandler panics with given value on every call.
type PanicHandler struct {
	Reason interface{}
}

var _ cowallet.Handler = PanicHandler{}

func (h PanicHandler) Check(cowallet.Context, cowallet.KVStore, cowallet.Tx) (*cowallet.CheckResult, error) {
	panic(h.Reason)
}

func (h PanicHandler) Deliver(cowallet.Context, cowallet.KVStore, cowallet.Tx) (*cowallet.DeliverResult, error) {
	panic(h.Reason)
}
