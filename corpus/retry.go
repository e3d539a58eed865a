package corpus

import (
	"context"
	"time"

	"github.com/fwojciec/wikigrouth"
)

// FetchFunc is the signature for a markup fetch function.
type FetchFunc func(ctx context.Context, uri string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches uri, retrying failed attempts after 1s, 2s and 4s.
func FetchWithRetry(ctx context.Context, uri string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, uri, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry with configurable delays.
// Missing articles and invalid addresses are returned without retrying.
func FetchWithRetryDelays(ctx context.Context, uri string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		markup, err := fetch(ctx, uri)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", uri, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	switch wikigrouth.ErrorCode(err) {
	case wikigrouth.ENOTFOUND, wikigrouth.EINVALID:
		return false
	}
	return true
}
