package wallet

import (
	"bytes"
	"sort"

	"github.com/iov-one/cowallet"
)

// normalize returns a sorted copy of the addresses with duplicates removed.
func normalize(addrs []cowallet.Address) []cowallet.Address {
	out := make([]cowallet.Address, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i], out[j]) < 0
	})
	uniq := out[:0]
	for i, a := range out {
		if i > 0 && a.Equals(out[i-1]) {
			continue
		}
		uniq = append(uniq, a)
	}
	return uniq
}

// isNormalized returns true if the addresses are strictly ascending.
func isNormalized(addrs []cowallet.Address) bool {
	for i := 1; i < len(addrs); i++ {
		if bytes.Compare(addrs[i-1], addrs[i]) >= 0 {
			return false
		}
	}
	return true
}

// contains expects a normalized set.
func contains(set []cowallet.Address, a cowallet.Address) bool {
	i := sort.Search(len(set), func(i int) bool {
		return bytes.Compare(set[i], a) >= 0
	})
	return i < len(set) && set[i].Equals(a)
}

func insert(set []cowallet.Address, a cowallet.Address) []cowallet.Address {
	if contains(set, a) {
		return set
	}
	return normalize(append(set, a))
}

func remove(set []cowallet.Address, a cowallet.Address) []cowallet.Address {
	out := make([]cowallet.Address, 0, len(set))
	for _, s := range set {
		if !s.Equals(a) {
			out = append(out, s)
		}
	}
	return out
}

// sameSet compares two normalized sets.
func sameSet(a, b []cowallet.Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
