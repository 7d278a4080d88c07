// Package txn runs multi-document cascades atomically when the
// deployment allows it. Cascade deletes (user removal, group removal)
// must be all-or-nothing; Mongo gives that through sessions on replica
// sets, but a bare standalone server rejects transactions outright, so
// callers fall back to ordered sequential writes when IsNotSupported
// reports the rejection.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// WithTransaction runs fn inside a Mongo session transaction. If the
// server does not support transactions, fn is re-run once outside a
// session: the writes apply in order but without atomicity, which is the
// best a standalone deployment offers.
func WithTransaction(ctx context.Context, client *mongo.Client, log *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			log.Warn("transactions unsupported by deployment, applying cascade without atomicity")
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		log.Warn("transactions unsupported by deployment, applying cascade without atomicity")
		return fn(ctx)
	}
	return err
}

// Server error codes that signal "this deployment cannot do transactions".
const (
	codeTransactionNumbers = 20  // transaction numbers only on replica set members
	codeIllegalOperation   = 51  // illegal operation
	codeOperationNotInTxn  = 263 // cannot run in a multi-document transaction
)

// IsNotSupported reports whether err means the server rejected the use of
// sessions/transactions (as opposed to the transaction itself failing).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case codeTransactionNumbers, codeIllegalOperation, codeOperationNotInTxn:
			return true
		}
	}

	// Driver and server wordings vary; require two corroborating
	// keywords before concluding the deployment lacks support.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "transaction") {
		if strings.Contains(msg, "replica set") ||
			strings.Contains(msg, "session") ||
			strings.Contains(msg, "illegal operation") {
			return true
		}
	}
	if strings.Contains(msg, "session") && strings.Contains(msg, "not supported") {
		return true
	}
	return false
}
