//nolint
package store

import "github.com/iov-one/cowallet"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = cowallet.ReadOnlyKVStore
type SetDeleter = cowallet.SetDeleter
type KVStore = cowallet.KVStore
type Iterator = cowallet.Iterator
type CacheableKVStore = cowallet.CacheableKVStore
type KVCacheWrap = cowallet.KVCacheWrap
type CommitKVStore = cowallet.CommitKVStore
type CommitID = cowallet.CommitID
type Model = cowallet.Model

var Pair = cowallet.Pair

// Batch can write multiple ops atomically to an underlying KVStore
type Batch interface {
	SetDeleter
	Write() error
}
