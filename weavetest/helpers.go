package weavetest

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/iov-one/cowallet"
)

// NewCondition returns a random condition. Each call returns a condition
// that was never returned before.
func NewCondition() cowallet.Condition {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		panic(err)
	}
	return cowallet.NewCondition("test", "rand", raw)
}

// RandomAddr returns a valid random address genearted on the fly.
func RandomAddr(t testing.TB) cowallet.Address {
	t.Helper()
	raw := make([]byte, cowallet.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := cowallet.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not a valid address: %s", err)
	}
	return a
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// cowallet.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) cowallet.Address {
	t.Helper()

	addr, err := cowallet.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// SequenceID returns an 8 byte big endian representation of given number,
// the same way orm.Sequence encodes its values.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
