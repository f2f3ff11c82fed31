package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RetryPolicy controls how many times a snapshot save is attempted
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetry makes three attempts, waiting 50ms then 100ms between them
func DefaultRetry() RetryPolicy {
	return RetryPolicy{Attempts: 3, BaseDelay: 50 * time.Millisecond}
}

// Do runs fn until it succeeds, the attempts are used up or ctx is done.
// Returns the error from the final attempt.
func (p RetryPolicy) Do(ctx context.Context, logger *zap.Logger, fn func(context.Context) error) error {
	attempts := max(p.Attempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Debug("save succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}
		lastErr = err

		// no sleep after the last attempt
		if attempt == attempts-1 {
			break
		}

		delay := p.BaseDelay * (1 << attempt)
		logger.Debug("save failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", attempts),
			zap.Duration("retry_delay", delay),
			zap.Error(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return lastErr
		case <-timer.C:
		}
	}
	return lastErr
}
