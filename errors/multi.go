package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened. All
// collected errors are stored in a single multi error instance.
//
// This function returns nil when no error was given or all were nil.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			res = append(res, u.Unpack()...)
		} else {
			res = append(res, e)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// multiErr is a group of errors that happened at the same step, for example
// while validating all fields of a message.
type multiErr []error

var _ unpacker = multiErr(nil)

func (e multiErr) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	points := make([]string, len(e))
	for i, err := range e {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(e), strings.Join(points, "\n\t"))
}

// ABCICode returns the code of the first error, consistent with a fail fast
// approach.
func (e multiErr) ABCICode() uint32 {
	return abciCode(e[0])
}

// Unpack returns all clubbed errors.
func (e multiErr) Unpack() []error {
	return e
}

// unpacker is implemented by errors that are a collection of errors.
type unpacker interface {
	Unpack() []error
}
