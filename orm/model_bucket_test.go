package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Count int64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

// counterPB is the wire representation of the counter.
type counterPB counter

func (m *counterPB) Reset()         { *m = counterPB{} }
func (m *counterPB) String() string { return proto.CompactTextString(m) }
func (*counterPB) ProtoMessage()    {}

func (c *counter) Marshal() ([]byte, error) { return proto.Marshal((*counterPB)(c)) }
func (c *counter) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*counterPB)(c))
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrInvalidModel, "negative count")
	}
	return nil
}

type other struct{ counter }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("c1"), &counter{Count: 1}))

	var c1 counter
	require.NoError(t, b.One(db, []byte("c1"), &c1))
	assert.Equal(t, int64(1), c1.Count)
	assert.NoError(t, b.Has(db, []byte("c1")))

	if err := b.Put(db, []byte("c2"), &counter{Count: -1}); !errors.ErrInvalidModel.Is(err) {
		t.Fatalf("unexpected error for an invalid model: %s", err)
	}
	if err := b.Put(db, []byte("c3"), &other{}); !errors.ErrInvalidType.Is(err) {
		t.Fatalf("unexpected error for a wrong model type: %s", err)
	}
	if err := b.One(db, []byte("c1"), &other{}); !errors.ErrInvalidType.Is(err) {
		t.Fatalf("unexpected error for a wrong destination type: %s", err)
	}

	require.NoError(t, b.Delete(db, []byte("c1")))
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
	if err := b.Has(db, []byte("c1")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model has: %s", err)
	}
}

func TestModelBucketBadName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("X", &counter{}) })
}

func TestModelBucketPrefixScan(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	// a different bucket sharing the name prefix must not leak in
	o := NewModelBucket("cntsx", &counter{})

	for i, key := range []string{"a1", "a2", "b1"} {
		require.NoError(t, b.Put(db, []byte(key), &counter{Count: int64(i + 1)}))
	}
	require.NoError(t, o.Put(db, []byte("a9"), &counter{Count: 99}))

	cases := map[string]struct {
		prefix   []byte
		reverse  bool
		wantKeys []string
		wantVals []int64
	}{
		"whole bucket": {
			prefix:   nil,
			wantKeys: []string{"a1", "a2", "b1"},
			wantVals: []int64{1, 2, 3},
		},
		"whole bucket reversed": {
			prefix:   nil,
			reverse:  true,
			wantKeys: []string{"b1", "a2", "a1"},
			wantVals: []int64{3, 2, 1},
		},
		"with prefix": {
			prefix:   []byte("a"),
			wantKeys: []string{"a1", "a2"},
			wantVals: []int64{1, 2},
		},
		"no match": {
			prefix: []byte("z"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			it, err := b.PrefixScan(db, tc.prefix, tc.reverse)
			require.NoError(t, err)
			defer it.Release()

			var keys []string
			var vals []int64
			for {
				var c counter
				key, err := it.LoadNext(&c)
				if ErrIteratorDone.Is(err) {
					break
				}
				require.NoError(t, err)
				keys = append(keys, string(key))
				vals = append(vals, c.Count)
			}
			assert.Equal(t, tc.wantKeys, keys)
			assert.Equal(t, tc.wantVals, vals)
		})
	}
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	require.NoError(t, b.Put(db, []byte("a1"), &counter{Count: 1}))
	require.NoError(t, b.Put(db, []byte("a2"), &counter{Count: 2}))

	qr := cowallet.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	require.NotNil(t, h)

	res, err := h.Query(db, cowallet.KeyQueryMod, []byte("a1"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []byte("cnts:a1"), res[0].Key)
	var c counter
	require.NoError(t, c.Unmarshal(res[0].Value))
	assert.Equal(t, int64(1), c.Count)

	res, err = h.Query(db, cowallet.KeyQueryMod, []byte("missing"))
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = h.Query(db, cowallet.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	assert.Len(t, res, 2)

	_, err = h.Query(db, "range", nil)
	assert.True(t, errors.ErrInvalidInput.Is(err))
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		end    []byte
	}{
		"empty":         {nil, nil},
		"simple":        {[]byte("abc"), []byte("abd")},
		"overflow":      {[]byte{1, 0xFF}, []byte{2, 0}},
		"full overflow": {[]byte{0xFF, 0xFF}, nil},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.prefix, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
