package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanphamm/supplydash-backend/pkg/config"
)

func testPolicy(attempts uint64) *Policy {
	return NewPolicy(config.RetryConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
	})
}

func TestDoRetriesTransientUntilSuccess(t *testing.T) {
	policy := testPolicy(5)

	retries := 0
	policy.OnRetry = func(err error) { retries++ }

	calls := 0
	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("read tcp: connection reset by peer")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, retries)
}

func TestDoDoesNotRetryLogicalErrors(t *testing.T) {
	policy := testPolicy(5)

	calls := 0
	boom := errors.New("boom")
	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestDoExhaustsAttemptBudget(t *testing.T) {
	policy := testPolicy(3)

	retries := 0
	policy.OnRetry = func(err error) { retries++ }

	calls := 0
	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("dial tcp: connection refused")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	// The exhausted final attempt is not a retry.
	assert.Equal(t, 2, retries)
}

func TestIsTransientClassification(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(errors.New("record not found")))

	assert.True(t, IsTransient(errors.New("dial tcp 10.0.0.1:5432: connection refused")))
	assert.True(t, IsTransient(&pgconn.PgError{Code: "08006"}))
	assert.True(t, IsTransient(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsTransient(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, IsTransient(&pgconn.PgError{Code: "23505"}))
}
