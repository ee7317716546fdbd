// ABOUTME: Retry utilities for API calls with exponential backoff
// ABOUTME: Used by the embedding client for consistent retry behavior
package util

import (
	"math/rand/v2"
	"time"
)

const (
	// maxBackoff caps the delay regardless of attempt count.
	maxBackoff = 30 * time.Second
	// maxShift bounds the exponent so the bit shift cannot overflow.
	maxShift = 30
)

// CalculateBackoff returns the delay before the given retry attempt: the
// base delay doubled per attempt, capped at maxBackoff, with ±25% random
// jitter. Attempt 0 (the first try) waits nothing.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > maxShift {
		attempt = maxShift
	}

	backoff := baseDelay << uint(attempt)
	if backoff > maxBackoff || backoff <= 0 {
		backoff = maxBackoff
	}

	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
