/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called buckets. Each bucket contains
only one type of model, stored under its primary key. Sequences provide
unique, ordered keys.
*/
package orm

import (
	"bytes"
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	cowallet.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrInvalidType
	// is returned.
	One(db cowallet.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists and
	// ErrNotFound otherwise.
	Has(db cowallet.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. Before storing, the model is
	// validated.
	Put(db cowallet.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db cowallet.KVStore, key []byte) error

	// PrefixScan returns an iterator over all entities that primary key
	// starts with given prefix. Use nil prefix to iterate over the whole
	// bucket.
	PrefixScan(db cowallet.ReadOnlyKVStore, prefix []byte, reverse bool) (ModelIterator, error)

	// Register registers this bucket with the query router, under
	// "/<name>".
	Register(name string, r cowallet.QueryRouter)
}

// ModelIterator loads stored models one by one.
type ModelIterator interface {
	// LoadNext loads the next model into dest and returns its primary key.
	// ErrIteratorDone is returned when there are no more models.
	LoadNext(dest Model) ([]byte, error)

	// Release releases the iterator.
	Release()
}

// NewModelBucket returns a ModelBucket instance storing models of the same
// type as the example. The bucket name is used to prefix all keys.
func NewModelBucket(name string, example Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	tp := reflect.TypeOf(example)
	if tp.Kind() == reflect.Ptr {
		tp = tp.Elem()
	}
	return &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  tp,
	}
}

type modelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)
var _ cowallet.QueryHandler = (*modelBucket)(nil)

func (mb *modelBucket) One(db cowallet.ReadOnlyKVStore, key []byte, dest Model) error {
	if key == nil {
		return errors.Wrap(errors.ErrHuman, "key is nil")
	}
	if err := mb.checkType(dest); err != nil {
		return err
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot load from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal %T", dest)
	}
	return nil
}

func (mb *modelBucket) Has(db cowallet.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrHuman, "key is nil")
	}
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.model.Name())
	}
	return nil
}

func (mb *modelBucket) Put(db cowallet.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := mb.checkType(m); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %T", m)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db cowallet.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

func (mb *modelBucket) PrefixScan(db cowallet.ReadOnlyKVStore, prefix []byte, reverse bool) (ModelIterator, error) {
	start, end := prefixRange(mb.dbKey(prefix))

	var it cowallet.Iterator
	var err error
	if reverse {
		it, err = db.ReverseIterator(start, end)
	} else {
		it, err = db.Iterator(start, end)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot create iterator")
	}
	return &modelIterator{iterator: it, bucketPrefix: mb.prefix, model: mb.model}, nil
}

func (mb *modelBucket) Register(name string, r cowallet.QueryRouter) {
	if name == "" {
		name = mb.name
	}
	r.Register("/"+name, mb)
}

// Query handles queries from the QueryRouter. Returned keys contain the
// bucket prefix.
func (mb *modelBucket) Query(db cowallet.ReadOnlyKVStore, mod string, data []byte) ([]cowallet.Model, error) {
	switch mod {
	case cowallet.KeyQueryMod:
		key := mb.dbKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []cowallet.Model{cowallet.Pair(key, value)}, nil
	case cowallet.PrefixQueryMod:
		start, end := prefixRange(mb.dbKey(data))
		it, err := db.Iterator(start, end)
		if err != nil {
			return nil, err
		}
		defer it.Close()

		var res []cowallet.Model
		for ; it.Valid(); it.Next() {
			res = append(res, cowallet.Pair(it.Key(), it.Value()))
		}
		return res, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown query mod %q", mod)
	}
}

// dbKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (mb *modelBucket) dbKey(key []byte) []byte {
	l := len(mb.prefix)
	out := make([]byte, l+len(key))
	copy(out, mb.prefix)
	copy(out[l:], key)
	return out
}

func (mb *modelBucket) checkType(m Model) error {
	tp := reflect.TypeOf(m)
	if tp == nil || tp.Kind() != reflect.Ptr || tp.Elem() != mb.model {
		return errors.Wrapf(errors.ErrInvalidType, "%T cannot be represented as %s", m, mb.model)
	}
	return nil
}

type modelIterator struct {
	// this is the raw KVStoreIterator
	iterator cowallet.Iterator
	// this is the bucketPrefix to strip from each key
	bucketPrefix []byte
	model        reflect.Type
}

var _ ModelIterator = (*modelIterator)(nil)

func (i *modelIterator) LoadNext(dest Model) ([]byte, error) {
	if !i.iterator.Valid() {
		return nil, ErrIteratorDone
	}
	if tp := reflect.TypeOf(dest); tp == nil || tp.Kind() != reflect.Ptr || tp.Elem() != i.model {
		return nil, errors.Wrapf(errors.ErrInvalidType, "%T cannot be represented as %s", dest, i.model)
	}

	key, value := i.iterator.Key(), i.iterator.Value()
	i.iterator.Next()

	// since we use raw kvstore here, we must remove the bucket prefix manually
	if !bytes.HasPrefix(key, i.bucketPrefix) {
		return nil, errors.Wrapf(errors.ErrDatabase, "key with unexpected prefix: %X", key)
	}
	if err := dest.Unmarshal(value); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling into %T", dest)
	}
	return key[len(i.bucketPrefix):], nil
}

func (i *modelIterator) Release() {
	i.iterator.Close()
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
