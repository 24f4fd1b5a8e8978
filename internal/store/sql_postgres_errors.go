package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed backend call may be retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint and syntax
	// failures.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, deadlocks,
	// serialization conflicts.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] using the SQLSTATE
// code reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to a classification. Classes 08, 40 and
// 57P03 are retryable, everything else is not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// retryPolicy bounds how many times a retryable call is repeated.
type retryPolicy struct {
	attempts int
	backoff  time.Duration
}

var defaultRetryPolicy = retryPolicy{attempts: 3, backoff: 50 * time.Millisecond}

// withRetry runs fn until it succeeds, returns a non-retryable error, or
// the attempts are exhausted. Backoff grows linearly with the attempt.
func withRetry(ctx context.Context, policy retryPolicy, classifier ErrorClassificator, fn func() error) error {
	var err error
	for attempt := 1; attempt <= policy.attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if classifier.Classify(err) != Retryable || attempt == policy.attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * policy.backoff):
		}
	}
	return err
}
