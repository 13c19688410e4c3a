package sigs

import (
	"github.com/iov-one/cowallet/crypto"
	"github.com/iov-one/cowallet/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the sigs.Decorator
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the
	// transaction, without the signatures.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signatures of all signers.
	GetSignatures() []*StdSignature
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if len(s.Pubkey) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if len(s.Signature) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	if err := s.PublicKey().Validate(); err != nil {
		return errors.Wrap(errors.ErrUnauthorized, err.Error())
	}
	return nil
}

// PublicKey returns the key of the signer.
func (s *StdSignature) PublicKey() *crypto.PublicKey {
	return &crypto.PublicKey{Ed25519: s.Pubkey}
}
