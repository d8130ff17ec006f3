package events

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// RetryPolicy bounds how hard Publish tries before giving up on an event
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetry backs off 50ms, 100ms between three attempts
var DefaultRetry = RetryPolicy{Attempts: 3, BaseDelay: 50 * time.Millisecond}

// delay is the pause after the given zero-based failed attempt
func (p RetryPolicy) delay(attempt int) time.Duration {
	return p.BaseDelay << attempt
}

// retryable reports whether another attempt could succeed. A closed client
// stays closed; a full queue drains.
func retryable(err error) bool {
	return !errors.Is(err, ErrClosed)
}

// Publish sends event through sender, retrying transient failures with
// exponential backoff. A nil sender means no hub is configured.
//
// Live updates are best effort: callers log the error and carry on.
func Publish(ctx context.Context, sender Sender, event Event, policy RetryPolicy) error {
	if sender == nil {
		return nil
	}
	attempts := max(policy.Attempts, 1)
	logger := slog.With("event_type", event.Type, "task_id", event.TaskID)

	var err error
	for attempt := range attempts {
		if err = sender.SendEvent(event); err == nil {
			if attempt > 0 {
				logger.Debug("event published after retry", "attempt", attempt+1)
			}
			return nil
		}
		if !retryable(err) || attempt == attempts-1 {
			break
		}

		wait := policy.delay(attempt)
		logger.Debug("event publish failed, retrying",
			"attempt", attempt+1,
			"retry_delay", wait,
			"error", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	logger.Warn("event publish failed", "attempts", attempts, "error", err)
	return err
}
