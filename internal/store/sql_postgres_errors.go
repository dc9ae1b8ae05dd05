package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

// ErrorClassification tells whether a failed database call is worth
// repeating.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint violations,
	// data and syntax errors.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures: lost connections, rolled back
	// transactions and a server that is starting or shutting down.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	// the request never reached the server
	if pgconn.SafeToRetry(err) {
		return Retryable
	}

	return NonRetryable
}

// classifyCode works on SQLSTATE classes 08, 40 and 57, see
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyCode(code string) ErrorClassification {
	switch {
	case code == pgerrcode.QueryCanceled:
		// 57014 is raised for our own statement timeouts and cancellations
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}

const (
	retryAttempts = 3
	retryBase     = 100 * time.Millisecond
)

// withRetry runs fn, retrying it with exponential backoff while c classifies
// its error as [Retryable]. A nil classifier disables retries.
func withRetry(ctx context.Context, c ErrorClassificator, fn func(ctx context.Context) error) error {
	if c == nil {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(retryAttempts, retry.NewExponential(retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && c.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
