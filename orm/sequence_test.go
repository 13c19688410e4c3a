package orm

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		init       uint64
		increments uint64
	}{
		0: {"wallet", "request", 0, 22},
		1: {"wallet", "other", 0, 11},
		2: {"wallet", "request", 22, 18},
		3: {"bank", "request", 0, 77},
		4: {"wallet", "other", 11, 248},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			orig, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, tc.init, orig)

			var val uint64
			var last []byte
			for i := uint64(0); i < tc.increments; i++ {
				raw, err := s.NextVal(db)
				require.NoError(t, err)
				if last != nil {
					// byte order follows numeric order
					assert.Equal(t, 1, bytes.Compare(raw, last))
				}
				last = raw
				val, err = DecodeSequence(raw)
				require.NoError(t, err)
			}
			// expect the final value to be this
			assert.Equal(t, tc.init+tc.increments, val)

			latest, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, val, latest)
		})
	}
}

func TestSequenceOverflow(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("wallet", "request")
	require.NoError(t, db.Set(s.id, EncodeSequence(math.MaxUint64)))

	_, err := s.NextInt(db)
	assert.True(t, errors.ErrOverflow.Is(err))

	latest, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), latest)
}

func TestValidateSequence(t *testing.T) {
	assert.True(t, errors.ErrEmpty.Is(ValidateSequence(nil)))
	assert.True(t, errors.ErrInvalidInput.Is(ValidateSequence([]byte{1, 2})))
	assert.NoError(t, ValidateSequence(EncodeSequence(7)))

	_, err := DecodeSequence([]byte{1})
	assert.Error(t, err)
}
