package retry

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"github.com/tuanphamm/supplydash-backend/pkg/config"
)

// Policy retries transient store failures with capped exponential backoff.
// Non-transient errors are returned immediately.
type Policy struct {
	maxAttempts uint64
	baseDelay   time.Duration
	maxDelay    time.Duration

	// OnRetry is invoked once per retry that will actually run, before its
	// backoff sleep (metrics hooks). The final failed attempt does not fire it.
	OnRetry func(err error)
}

// NewPolicy builds a Policy from configuration, applying sane floors.
func NewPolicy(cfg config.RetryConfig) *Policy {
	p := &Policy{
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.BaseDelay,
		maxDelay:    cfg.MaxDelay,
	}
	if p.maxAttempts == 0 {
		p.maxAttempts = 1
	}
	if p.baseDelay <= 0 {
		p.baseDelay = 100 * time.Millisecond
	}
	if p.maxDelay <= 0 {
		p.maxDelay = 2 * time.Second
	}
	return p
}

// Do runs fn, retrying when the returned error is classified transient.
// The caller observes either full success or the final error after the
// attempt budget is exhausted.
func (p *Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithCappedDuration(p.maxDelay, retry.NewExponential(p.baseDelay))
	backoff = retry.WithMaxRetries(p.maxAttempts-1, backoff)

	var attempt uint64
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if IsTransient(err) {
			if p.OnRetry != nil && attempt < p.maxAttempts {
				p.OnRetry(err)
			}
			return retry.RetryableError(err)
		}
		return err
	})
}

// Postgres SQLSTATE classes considered transient: connection exceptions,
// serialization failures, deadlocks, and admin-initiated shutdowns.
var transientPGCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"57P01": true, // admin_shutdown
	"57P02": true, // crash_shutdown
	"57P03": true, // cannot_connect_now
}

// IsTransient reports whether err looks like a recoverable transport or
// store-availability failure rather than a logical one.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "08") {
			return true
		}
		return transientPGCodes[pgErr.Code]
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe")
}
