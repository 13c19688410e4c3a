package weavetest

import "github.com/iov-one/cowallet"

// Decorator is a mock implementation of the cowallet.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ cowallet.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx, next cowallet.Checker) (*cowallet.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &cowallet.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx, next cowallet.Deliverer) (*cowallet.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &cowallet.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

func Decorate(h cowallet.Handler, d cowallet.Decorator) cowallet.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn cowallet.Handler
	dc cowallet.Decorator
}

var _ cowallet.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx cowallet.Context, db cowallet.KVStore, tx cowallet.Tx) (*cowallet.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
