package store

import (
	"bytes"
)

////////////////////////////////////////////////
// Slice -> Iterator

// SliceIterator wraps an Iterator over a slice of models
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{
		data: data,
	}
}

// Valid implements Iterator and returns true iff it can be read
func (s *SliceIterator) Valid() bool {
	return s.idx < len(s.data)
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (s *SliceIterator) Next() {
	s.assertValid()
	s.idx++
}

func (s *SliceIterator) assertValid() {
	if s.idx >= len(s.data) {
		panic("Passed end of slice")
	}
}

// Key returns the key of the cursor.
func (s *SliceIterator) Key() (key []byte) {
	s.assertValid()
	return s.data[s.idx].Key
}

// Value returns the value of the cursor.
func (s *SliceIterator) Value() (value []byte) {
	s.assertValid()
	return s.data[s.idx].Value
}

// Close releases the Iterator.
func (s *SliceIterator) Close() {
	s.data = nil
	s.idx = 0
}

// mergeIterator combines the cached items with everything the parent
// iterator returns. Cached values take precedence and deleted markers hide
// the parent entry. Both inputs must be sorted in the same direction.
func mergeIterator(local []item, parent Iterator, descending bool) Iterator {
	defer parent.Close()

	before := func(a, b []byte) bool {
		if descending {
			return bytes.Compare(a, b) > 0
		}
		return bytes.Compare(a, b) < 0
	}

	var res []Model
	emit := func(it item) {
		if !it.deleted {
			res = append(res, Model{Key: it.key, Value: it.value})
		}
	}

	i := 0
	for ; parent.Valid(); parent.Next() {
		pk := parent.Key()
		for i < len(local) && before(local[i].key, pk) {
			emit(local[i])
			i++
		}
		if i < len(local) && bytes.Equal(local[i].key, pk) {
			emit(local[i])
			i++
			continue
		}
		res = append(res, Model{Key: copyBytes(pk), Value: copyBytes(parent.Value())})
	}
	for ; i < len(local); i++ {
		emit(local[i])
	}
	return NewSliceIterator(res)
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
