package batch

import (
	"context"
	"time"

	"github.com/ldino3121/faqify"
)

// DefaultRetryDelays returns the backoff delays for generation retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retryable reports whether a failure with the given error is transient.
// Permission, not-found, invalid-input and content failures never succeed
// on a second attempt.
func Retryable(err error) bool {
	switch faqify.ErrorCode(err) {
	case faqify.ETIMEOUT, faqify.ENETWORK, faqify.ERATELIMIT, faqify.EUNAVAILABLE:
		return true
	default:
		return false
	}
}

// GenerateFunc is the signature for a single generation attempt.
type GenerateFunc func(ctx context.Context) (*faqify.Result, error)

// generateWithRetry runs fn, retrying transient failures after each of the
// delays. It returns the last error once the delays are exhausted.
func generateWithRetry(ctx context.Context, fn GenerateFunc, delays []time.Duration) (*faqify.Result, int, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, attempt + 1, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !Retryable(err) {
			return nil, attempt + 1, lastErr
		}

		select {
		case <-ctx.Done():
			return nil, attempt + 1, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, maxAttempts, lastErr
}
