package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// WithSegment runs fn under a segment of the transaction carried by ctx.
// Without a transaction fn still runs, untimed.
func WithSegment(ctx context.Context, name string, fn func() error) error {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// NoticeTransactionError records err on txn. Both may be nil.
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn == nil || err == nil {
		return
	}
	txn.NoticeError(err)
}

// TraceHandler names the request's transaction after the matching operation
// and records any error the handler returns.
func TraceHandler(operation string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		txn := nrecho.FromContext(c)
		if txn != nil {
			txn.SetName(operation)
		}

		err := next(c)
		NoticeTransactionError(txn, err)
		return err
	}
}
