package badgerdb

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/cowallet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBase() (store.CacheableKVStore, func()) {
	dir, err := ioutil.TempDir("", "badgerdb-")
	if err != nil {
		panic(err)
	}
	db, err := Open(dir)
	if err != nil {
		panic(err)
	}
	return db, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}

func TestBadgerGetSet(t *testing.T) {
	store.NewTestSuite(makeBase).GetSet(t)
}

func TestBadgerCacheConflicts(t *testing.T) {
	store.NewTestSuite(makeBase).CacheConflicts(t)
}

func TestBadgerFuzzIterator(t *testing.T) {
	store.NewTestSuite(makeBase).FuzzIterator(t)
}

func TestBadgerIteratorWithConflicts(t *testing.T) {
	store.NewTestSuite(makeBase).IteratorWithConflicts(t)
}

func TestCopy(t *testing.T) {
	src := store.MemStore()
	require.NoError(t, src.Set([]byte("_c:wallet"), []byte("owners")))
	require.NoError(t, src.Set([]byte("wreq:1"), []byte("first")))
	require.NoError(t, src.Set([]byte("wreq:2"), []byte("second")))
	require.NoError(t, src.Delete([]byte("wreq:2")))

	base, cleanup := makeBase()
	defer cleanup()
	db := base.(*Store)

	n, err := db.Copy(src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := db.Get([]byte("wreq:1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)

	has, err := db.Has([]byte("wreq:2"))
	require.NoError(t, err)
	assert.False(t, has)
}
