package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "no rows", err: sql.ErrNoRows, expected: false},
		{name: "context canceled", err: context.Canceled, expected: false},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "undefined table", err: &pgconn.PgError{Code: "42P01"}, expected: false},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "wrapped deadlock", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "40P01"}), expected: true},
		{name: "connection failure class", err: &pgconn.PgError{Code: "08006"}, expected: true},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, expected: true},
		{name: "connection refused message", err: errors.New("dial tcp: connection refused"), expected: true},
		{name: "plain error", err: errors.New("something else"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isRetryableError(tc.err))
		})
	}
}

func TestRetryWithBackoff(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2,
		EnableRetry:  true,
	}

	t.Run("retries transient errors until success", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: "40001"}
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			return &pgconn.PgError{Code: "23505"}
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			return errors.New("connection reset by peer")
		})

		assert.Error(t, err)
		assert.Equal(t, cfg.MaxAttempts, calls)
	})

	t.Run("disabled runs once", func(t *testing.T) {
		disabled := cfg
		disabled.EnableRetry = false
		calls := 0
		_ = RetryWithBackoff(context.Background(), disabled, func() error {
			calls++
			return errors.New("connection reset by peer")
		})

		assert.Equal(t, 1, calls)
	})
}
