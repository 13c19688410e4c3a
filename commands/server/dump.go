package server

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/store/badgerdb"
	"github.com/tendermint/tendermint/libs/log"
)

// Dump copies the whole state into a badger database created in the out
// directory.
func Dump(src cowallet.ReadOnlyKVStore, out string, logger log.Logger) (int, error) {
	dst, err := badgerdb.Open(out)
	if err != nil {
		return 0, err
	}
	n, err := dst.Copy(src)
	if cerr := dst.Close(); cerr != nil && err == nil {
		err = errors.Wrap(errors.ErrDatabase, cerr.Error())
	}
	if err != nil {
		return 0, err
	}
	logger.Info("State dumped", "path", out, "entries", n)
	return n, nil
}
