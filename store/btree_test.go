package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBase() (CacheableKVStore, func()) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}
	return devnull.CacheWrap(), func() {}
}

func TestBTreeCacheGetSet(t *testing.T) {
	NewTestSuite(makeBase).GetSet(t)
}

func TestBTreeCacheConflicts(t *testing.T) {
	NewTestSuite(makeBase).CacheConflicts(t)
}

func TestBTreeCacheFuzzIterator(t *testing.T) {
	NewTestSuite(makeBase).FuzzIterator(t)
}

func TestBTreeCacheIteratorWithConflicts(t *testing.T) {
	NewTestSuite(makeBase).IteratorWithConflicts(t)
}

// TestSliceIterator makes sure the basic slice iterator works.
func TestSliceIterator(t *testing.T) {
	const size = 10

	ks := randKeys(size, 8)
	vs := randKeys(size, 40)

	models := make([]Model, size)
	for i := 0; i < size; i++ {
		models[i].Key = ks[i]
		models[i].Value = vs[i]
	}

	i := 0
	for iter := NewSliceIterator(models); iter.Valid(); iter.Next() {
		require.True(t, i < size, "iterator step greater than the size")
		assert.Equal(t, ks[i], iter.Key())
		assert.Equal(t, vs[i], iter.Value())
		i++
	}
	assert.Equal(t, size, i)

	it := NewSliceIterator(models)
	require.True(t, it.Valid())
	it.Close()
	assert.False(t, it.Valid(), "closed iterator must be invalid")
	assert.Panics(t, func() { it.Next() })
}

func TestMemStoreIteratorIsolation(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("a"), []byte("A")))
	require.NoError(t, db.Set([]byte("b"), []byte("B")))

	it, err := db.Iterator([]byte("a"), []byte("z"))
	require.NoError(t, err)
	defer it.Close()

	// The iterator holds a snapshot, writes after creation are not visible.
	require.NoError(t, db.Delete([]byte("b")))
	var keys []string
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestBatchShowOps(t *testing.T) {
	b := EmptyKVStore{}.NewBatch().(*NonAtomicBatch)
	require.NoError(t, b.Set([]byte("k"), []byte("v")))
	require.NoError(t, b.Delete([]byte("k")))
	assert.Equal(t, []Op{SetOp([]byte("k"), []byte("v")), DelOp([]byte("k"))}, b.ShowOps())

	require.NoError(t, b.Write())
	assert.Empty(t, b.ShowOps())
}
