package wallet

import (
	"fmt"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/orm"
)

const (
	bucketName = "wreq"
	configKey  = "wallet"
)

var _ orm.Model = (*TransferRequest)(nil)

// Validate ensures the request is well formed. Supporters must be a sorted
// set, it may be empty.
func (r *TransferRequest) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Target", r.Target.Validate())
	for i, s := range r.Supporters {
		errs = errors.AppendField(errs, fmt.Sprintf("Supporters.%d", i), s.Validate())
	}
	if !isNormalized(r.Supporters) {
		errs = errors.Append(errs, errors.Field("Supporters", errors.ErrInvalidState, "not a sorted set"))
	}
	return errs
}

// Validate ensures the owner set is a non empty, sorted set of valid
// addresses.
func (c *Configuration) Validate() error {
	if len(c.Owners) == 0 {
		return errors.Wrap(ErrInvalidOwnerSet, "no owners")
	}
	for i, o := range c.Owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidOwnerSet, "owner %d: %s", i, err)
		}
	}
	if !isNormalized(c.Owners) {
		return errors.Wrap(ErrInvalidOwnerSet, "owners not a sorted set")
	}
	return nil
}

// RequestBucket stores transfer requests under their sequence id.
type RequestBucket struct {
	orm.ModelBucket
	idSeq orm.Sequence
}

// NewRequestBucket returns a bucket for the transfer requests.
func NewRequestBucket() RequestBucket {
	return RequestBucket{
		ModelBucket: orm.NewModelBucket(bucketName, &TransferRequest{}),
		idSeq:       orm.NewSequence("wallet", "request"),
	}
}

// Get loads the request with given id. ErrRequestNotFound is returned if it
// does not exist.
func (b RequestBucket) Get(db cowallet.ReadOnlyKVStore, id uint64) (*TransferRequest, error) {
	var req TransferRequest
	switch err := b.One(db, orm.EncodeSequence(id), &req); {
	case err == nil:
		return &req, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrRequestNotFound, "id %d", id)
	default:
		return nil, err
	}
}

// Save stores the request under given id.
func (b RequestBucket) Save(db cowallet.KVStore, id uint64, req *TransferRequest) error {
	return b.Put(db, orm.EncodeSequence(id), req)
}

// Remove deletes the request with given id.
func (b RequestBucket) Remove(db cowallet.KVStore, id uint64) error {
	err := b.Delete(db, orm.EncodeSequence(id))
	if errors.ErrNotFound.Is(err) {
		return errors.Wrapf(ErrRequestNotFound, "id %d", id)
	}
	return err
}

// NextID allocates a new request id. Ids start at one and are never reused.
func (b RequestBucket) NextID(db cowallet.KVStore) (uint64, error) {
	return b.idSeq.NextInt(db)
}

// LastID returns the most recently allocated id, zero if none.
func (b RequestBucket) LastID(db cowallet.ReadOnlyKVStore) (uint64, error) {
	return b.idSeq.Latest(db)
}
