/*
Package badgerdb provides a KVStore backed by a badger database.

It is used as a flat, non versioned export target for the committed
application state. Every write is a separate badger transaction, so use a
cache wrap to group changes that must land together.
*/
package badgerdb

import (
	"bytes"

	"github.com/dgraph-io/badger"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
)

// Store is a KVStore persisted in a badger database.
type Store struct {
	db *badger.DB
}

var _ store.CacheableKVStore = (*Store)(nil)

// Open returns a store using the badger database located in given
// directory. The directory is created if it does not exist.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open badger at %q: %s", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database. The store must not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns nil iff key doesn't exist.
func (s *Store) Get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	switch err {
	// Don't treat missing key as an error
	case nil, badger.ErrKeyNotFound:
		return value, nil
	default:
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
}

// Has checks if a key exists.
func (s *Store) Has(key []byte) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	switch err {
	case nil:
		return true, nil
	case badger.ErrKeyNotFound:
		return false, nil
	default:
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
}

// Set writes the value under given key.
func (s *Store) Set(key, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Delete removes given key. Deleting a missing key is not an error.
func (s *Store) Delete(key []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (s *Store) Iterator(start, end []byte) (store.Iterator, error) {
	models, err := s.collect(start, end)
	if err != nil {
		return nil, err
	}
	return store.NewSliceIterator(models), nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (s *Store) ReverseIterator(start, end []byte) (store.Iterator, error) {
	models, err := s.collect(start, end)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}
	return store.NewSliceIterator(models), nil
}

// collect loads all key value pairs within [start, end) in ascending order.
func (s *Store) collect(start, end []byte) ([]store.Model, error) {
	var res []store.Model
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		if start == nil {
			it.Rewind()
		} else {
			it.Seek(start)
		}
		for ; it.Valid(); it.Next() {
			item := it.Item()
			if end != nil && bytes.Compare(item.Key(), end) >= 0 {
				return nil
			}
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			res = append(res, store.Model{Key: item.KeyCopy(nil), Value: value})
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return res, nil
}

// CacheWrap returns a btree cache on top of this store. Writing the cache
// applies all operations to the database.
func (s *Store) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, store.NewNonAtomicBatch(s), nil)
}

// Copy writes every key value pair found in the source store into this
// store and returns the number of copied entries.
func (s *Store) Copy(src store.ReadOnlyKVStore) (int, error) {
	it, err := src.Iterator(nil, nil)
	if err != nil {
		return 0, errors.Wrap(err, "source iterator")
	}
	defer it.Close()

	var n int
	err = s.db.Update(func(txn *badger.Txn) error {
		for ; it.Valid(); it.Next() {
			if err := txn.Set(it.Key(), it.Value()); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return n, nil
}
