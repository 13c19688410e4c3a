package x

import (
	"github.com/iov-one/cowallet"
)

// Authenticator extracts the identity of the caller from the context.
// Handlers receive one in their constructor, so the way a transaction is
// authenticated can be replaced without touching the extension.
type Authenticator interface {
	// GetConditions returns all conditions fulfilled by the current
	// transaction, in the order they were provided.
	GetConditions(cowallet.Context) []cowallet.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(cowallet.Context, cowallet.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators. Order is
// preserved so that the first condition of the first authenticator is the
// main signer.
func (m MultiAuth) GetConditions(ctx cowallet.Context) []cowallet.Condition {
	var res []cowallet.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx cowallet.Context, addr cowallet.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator
func GetAddresses(ctx cowallet.Context, auth Authenticator) []cowallet.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]cowallet.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// MainSigner returns the first condition if any, otherwise nil.
//
// The main signer is the caller identity of a transaction. Operations that
// act on behalf of a single party use its address.
func MainSigner(ctx cowallet.Context, auth Authenticator) cowallet.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx cowallet.Context, auth Authenticator, required []cowallet.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}
