package utils

import (
	"fmt"
	"time"
)

// LinearBackoff waits attempt*unit before retry attempt N+1 (1, 2, 3, ...
// units). No jitter.
func LinearBackoff(unit time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * unit
	}
}

// Retry runs fn up to attempts times, sleeping backoff(n) between attempt
// n and n+1. The sleep is only applied between attempts, never after the
// last one. Returns nil on the first success, otherwise the last error.
func Retry(attempts int, backoff func(attempt int) time.Duration, fn func() error, logger *Logger) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			wait := backoff(attempt - 1)
			logger.Warn("Retrying (attempt %d/%d) after %v...", attempt, attempts, wait)
			time.Sleep(wait)
		}
		if err := fn(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("all %d attempts failed: %w", attempts, lastErr)
}
