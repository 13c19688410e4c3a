package wallet

import (
	"github.com/iov-one/cowallet"
)

const optKey = "wallet"

// Genesis is the "wallet" section of the genesis file.
type Genesis struct {
	Owners []cowallet.Address `json:"owners"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ cowallet.Initializer = Initializer{}

// FromGenesis initializes the wallet with the owners listed in genesis. A
// genesis without the wallet section leaves the wallet uninitialized.
func (Initializer) FromGenesis(opts cowallet.Options, db cowallet.KVStore) error {
	if _, ok := opts[optKey]; !ok {
		return nil
	}
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	return NewController().Initialize(db, gen.Owners)
}
