package sigs

import "github.com/iov-one/cowallet/errors"

var (
	// ErrInvalidSequence is returned when the signature nonce does not
	// match the signer state.
	ErrInvalidSequence = errors.Register(120, "invalid sequence number")
)
