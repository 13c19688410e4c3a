package wallet

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/gconf"
	"github.com/iov-one/cowallet/orm"
)

// Controller is the request lifecycle engine. Every operation validates all
// preconditions before writing anything, so a failed call leaves the store
// unchanged.
type Controller interface {
	// Initialize stores the owner set. It can be done only once.
	Initialize(db cowallet.KVStore, owners []cowallet.Address) error

	// Submit creates a new request supported by the caller and returns its
	// id.
	Submit(db cowallet.KVStore, caller, target cowallet.Address, amount uint64) (uint64, error)

	// Support adds the caller to the request supporters.
	Support(db cowallet.KVStore, caller cowallet.Address, id uint64) error

	// RevokeSupport removes the caller from the request supporters. A
	// request without supporters is kept.
	RevokeSupport(db cowallet.KVStore, caller cowallet.Address, id uint64) error

	// Execute removes a request supported by all owners and returns the
	// transfer that the host must perform.
	Execute(db cowallet.KVStore, caller cowallet.Address, id uint64) (*TransferInstruction, error)

	// Authorize returns ErrUnauthorized unless the caller is an owner.
	Authorize(db cowallet.ReadOnlyKVStore, caller cowallet.Address) error

	// CanExecute runs all Execute checks without modifying the store and
	// returns the request that would be executed.
	CanExecute(db cowallet.ReadOnlyKVStore, caller cowallet.Address, id uint64) (*TransferRequest, error)

	Owners(db cowallet.ReadOnlyKVStore) ([]cowallet.Address, error)
	Request(db cowallet.ReadOnlyKVStore, id uint64) (*TransferRequest, error)
	LastRequestID(db cowallet.ReadOnlyKVStore) (uint64, error)
	PendingRequests(db cowallet.ReadOnlyKVStore) ([]PendingRequest, error)
}

// PendingRequest is a stored request together with its id.
type PendingRequest struct {
	ID uint64
	*TransferRequest
}

// BaseController is the default Controller implementation.
type BaseController struct {
	bucket RequestBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the default bucket.
func NewController() BaseController {
	return BaseController{bucket: NewRequestBucket()}
}

// Initialize normalizes and stores the owner set. It fails if the wallet
// was already initialized.
func (c BaseController) Initialize(db cowallet.KVStore, owners []cowallet.Address) error {
	switch ok, err := gconf.Exists(db, configKey); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(ErrInvalidOwnerSet, "already initialized")
	}
	conf := Configuration{Owners: normalize(owners)}
	if err := conf.Validate(); err != nil {
		return err
	}
	return gconf.Save(db, configKey, &conf)
}

// Owners returns the sorted owner set.
func (c BaseController) Owners(db cowallet.ReadOnlyKVStore) ([]cowallet.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, configKey, &conf); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(errors.ErrInvalidState, "wallet not initialized")
		}
		return nil, err
	}
	return conf.Owners, nil
}

// Authorize returns ErrUnauthorized unless the caller is an owner.
func (c BaseController) Authorize(db cowallet.ReadOnlyKVStore, caller cowallet.Address) error {
	_, err := c.authorize(db, caller)
	return err
}

func (c BaseController) authorize(db cowallet.ReadOnlyKVStore, caller cowallet.Address) ([]cowallet.Address, error) {
	owners, err := c.Owners(db)
	if err != nil {
		return nil, err
	}
	if !contains(owners, caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}
	return owners, nil
}

// Submit stores a new request supported by the caller only.
func (c BaseController) Submit(db cowallet.KVStore, caller, target cowallet.Address, amount uint64) (uint64, error) {
	if _, err := c.authorize(db, caller); err != nil {
		return 0, err
	}
	req := TransferRequest{
		Target:     target,
		Amount:     amount,
		Supporters: []cowallet.Address{caller},
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	id, err := c.bucket.NextID(db)
	if err != nil {
		return 0, errors.Wrap(err, "request id")
	}
	if err := c.bucket.Save(db, id, &req); err != nil {
		return 0, err
	}
	return id, nil
}

// Support adds the caller to the supporters. Supporting twice is a noop.
func (c BaseController) Support(db cowallet.KVStore, caller cowallet.Address, id uint64) error {
	if _, err := c.authorize(db, caller); err != nil {
		return err
	}
	req, err := c.bucket.Get(db, id)
	if err != nil {
		return err
	}
	if contains(req.Supporters, caller) {
		return nil
	}
	req.Supporters = insert(req.Supporters, caller)
	return c.bucket.Save(db, id, req)
}

// RevokeSupport removes the caller from the supporters. Revoking a missing
// support is a noop.
func (c BaseController) RevokeSupport(db cowallet.KVStore, caller cowallet.Address, id uint64) error {
	if _, err := c.authorize(db, caller); err != nil {
		return err
	}
	req, err := c.bucket.Get(db, id)
	if err != nil {
		return err
	}
	if !contains(req.Supporters, caller) {
		return nil
	}
	req.Supporters = remove(req.Supporters, caller)
	return c.bucket.Save(db, id, req)
}

// CanExecute checks, in order, that the caller is an owner, that the request
// exists and that it is supported by all owners.
func (c BaseController) CanExecute(db cowallet.ReadOnlyKVStore, caller cowallet.Address, id uint64) (*TransferRequest, error) {
	owners, err := c.authorize(db, caller)
	if err != nil {
		return nil, err
	}
	req, err := c.bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	if !sameSet(req.Supporters, owners) {
		return nil, errors.Wrapf(ErrRequestNotSupportedByAllOwners,
			"%d of %d owners", len(req.Supporters), len(owners))
	}
	return req, nil
}

// Execute removes the request and returns the transfer the host must
// perform.
func (c BaseController) Execute(db cowallet.KVStore, caller cowallet.Address, id uint64) (*TransferInstruction, error) {
	req, err := c.CanExecute(db, caller, id)
	if err != nil {
		return nil, err
	}
	if err := c.bucket.Remove(db, id); err != nil {
		return nil, err
	}
	return &TransferInstruction{
		RequestID: id,
		Target:    req.Target,
		Amount:    req.Amount,
	}, nil
}

// Request returns the stored request or ErrRequestNotFound.
func (c BaseController) Request(db cowallet.ReadOnlyKVStore, id uint64) (*TransferRequest, error) {
	return c.bucket.Get(db, id)
}

// LastRequestID returns the id of the most recently submitted request, or
// zero if none was submitted.
func (c BaseController) LastRequestID(db cowallet.ReadOnlyKVStore) (uint64, error) {
	return c.bucket.LastID(db)
}

// PendingRequests returns all stored requests ordered by id.
func (c BaseController) PendingRequests(db cowallet.ReadOnlyKVStore) ([]PendingRequest, error) {
	it, err := c.bucket.PrefixScan(db, nil, false)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []PendingRequest
	for {
		var req TransferRequest
		key, err := it.LoadNext(&req)
		if err != nil {
			if orm.ErrIteratorDone.Is(err) {
				return res, nil
			}
			return nil, err
		}
		id, err := orm.DecodeSequence(key)
		if err != nil {
			return nil, err
		}
		res = append(res, PendingRequest{ID: id, TransferRequest: &req})
	}
}
