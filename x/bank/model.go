package bank

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/orm"
)

const bucketName = "bank"

var _ orm.Model = (*Account)(nil)

// Validate is a no-op, any balance is valid.
func (a *Account) Validate() error {
	return nil
}

// Add increases the balance, failing on overflow.
func (a *Account) Add(amount uint64) error {
	sum := a.Balance + amount
	if sum < a.Balance {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	a.Balance = sum
	return nil
}

// Subtract decreases the balance, failing when it is insufficient.
func (a *Account) Subtract(amount uint64) error {
	if a.Balance < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "have %d, need %d", a.Balance, amount)
	}
	a.Balance -= amount
	return nil
}

// Bucket stores accounts by their address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for the accounts.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(bucketName, &Account{}),
	}
}

// GetOrCreate loads the account. A missing account has a zero balance.
func (b Bucket) GetOrCreate(db cowallet.ReadOnlyKVStore, addr cowallet.Address) (*Account, error) {
	var acc Account
	switch err := b.One(db, addr, &acc); {
	case err == nil:
		return &acc, nil
	case errors.ErrNotFound.Is(err):
		return &Account{}, nil
	default:
		return nil, err
	}
}
