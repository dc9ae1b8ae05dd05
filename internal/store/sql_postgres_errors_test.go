package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"admin shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, Retryable},
		{"query canceled", &pgconn.PgError{Code: pgerrcode.QueryCanceled}, NonRetryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
		{"wrapped retryable", errors.Join(ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()
	c := NewPostgresErrorClassifier()

	t.Run("non retryable runs once", func(t *testing.T) {
		calls := 0
		err := withRetry(ctx, c, func(context.Context) error {
			calls++
			return errors.New("boom")
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retryable until success", func(t *testing.T) {
		calls := 0
		err := withRetry(ctx, c, func(context.Context) error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := withRetry(ctx, c, func(context.Context) error {
			calls++
			return &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
		})
		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr)
		assert.Equal(t, retryAttempts+1, calls)
	})

	t.Run("nil classifier", func(t *testing.T) {
		calls := 0
		_ = withRetry(ctx, nil, func(context.Context) error {
			calls++
			return &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
		})
		assert.Equal(t, 1, calls)
	})
}
