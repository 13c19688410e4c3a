package bank

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
)

// Controller is the functionality needed by other extensions to move
// funds around.
type Controller interface {
	Balance(db cowallet.ReadOnlyKVStore, addr cowallet.Address) (uint64, error)
	MoveCoins(db cowallet.KVStore, src, dest cowallet.Address, amount uint64) error
	IssueCoins(db cowallet.KVStore, dest cowallet.Address, amount uint64) error
}

// BaseController is a simple implementation of the Controller.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the accounts bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// Balance returns the amount held by the address.
func (c BaseController) Balance(db cowallet.ReadOnlyKVStore, addr cowallet.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "address")
	}
	acc, err := c.bucket.GetOrCreate(db, addr)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db cowallet.KVStore, src, dest cowallet.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive amount")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	if err := c.bucket.Has(db, src); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(ErrEmptyAccount, "%s", src)
		}
		return err
	}
	sender, err := c.bucket.GetOrCreate(db, src)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := c.bucket.Put(db, src, sender); err != nil {
		return err
	}

	// Recipient is loaded after the sender is saved, so that moving funds
	// to self is a no-op.
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, recipient)
}

// IssueCoins adds the given amount to the destination address. Fails if the
// balance would overflow.
func (c BaseController) IssueCoins(db cowallet.KVStore, dest cowallet.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, recipient)
}
