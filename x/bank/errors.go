package bank

import "github.com/iov-one/cowallet/errors"

var (
	// ErrEmptyAccount is returned when funds are taken from an address
	// that has no account.
	ErrEmptyAccount = errors.Register(1030, "empty account")
)
