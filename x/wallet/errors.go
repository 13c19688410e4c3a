package wallet

import "github.com/iov-one/cowallet/errors"

// Wallet reserves 1050~1059 error codes
var (
	ErrRequestNotFound                = errors.Register(1050, "request not found")
	ErrRequestNotSupportedByAllOwners = errors.Register(1051, "request not supported by all owners")
	ErrInvalidOwnerSet                = errors.Register(1052, "invalid owner set")
)
