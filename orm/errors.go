package orm

import (
	"github.com/iov-one/cowallet/errors"
)

// Orm reserves 100~109 error codes

// ErrIteratorDone is returned by a model iterator when there are no more
// entities to load.
var ErrIteratorDone = errors.Register(100, "iterator done")
