// ABOUTME: Tests for retry backoff calculation
// ABOUTME: Validates growth, caps, jitter bounds and degenerate attempts
package util

import (
	"testing"
	"time"
)

func TestCalculateBackoff_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		baseDelay time.Duration
		attempt   int
		min       time.Duration
		max       time.Duration
	}{
		// 2^attempt * base, ±25% jitter
		{"first attempt", 100 * time.Millisecond, 1, 150 * time.Millisecond, 250 * time.Millisecond},
		{"second attempt", 100 * time.Millisecond, 2, 300 * time.Millisecond, 500 * time.Millisecond},
		{"fifth attempt", 100 * time.Millisecond, 5, 2400 * time.Millisecond, 4 * time.Second},
		{"capped at 30s", time.Second, 10, 22500 * time.Millisecond, 37500 * time.Millisecond},
		{"huge attempt does not overflow", time.Millisecond, 100, 0, 37500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBackoff(tt.baseDelay, tt.attempt)
			if got < tt.min || got > tt.max {
				t.Errorf("CalculateBackoff(%v, %d) = %v, want within [%v, %v]",
					tt.baseDelay, tt.attempt, got, tt.min, tt.max)
			}
		})
	}
}

func TestCalculateBackoff_NonPositiveAttempt(t *testing.T) {
	for _, attempt := range []int{0, -1, -100} {
		if got := CalculateBackoff(time.Second, attempt); got != 0 {
			t.Errorf("CalculateBackoff(1s, %d) = %v, want 0", attempt, got)
		}
	}
}

func TestCalculateBackoff_JitterVaries(t *testing.T) {
	base := time.Second
	first := CalculateBackoff(base, 2)

	for i := 0; i < 100; i++ {
		if CalculateBackoff(base, 2) != first {
			return
		}
	}
	t.Error("jitter should produce varying results, but 100 samples were identical")
}
