package utils

import (
	"time"

	"github.com/iov-one/cowallet"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ cowallet.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx cowallet.Context, store cowallet.KVStore, tx cowallet.Tx, next cowallet.Checker) (*cowallet.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx cowallet.Context, store cowallet.KVStore, tx cowallet.Tx, next cowallet.Deliverer) (*cowallet.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx cowallet.Context, tx cowallet.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := cowallet.GetLogger(ctx).With(
		"path", cowallet.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	// An empty message is still logged, the entry carries the path and
	// the duration.
	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
