// Package backoff computes retry delays for idempotent store reads.
package backoff

import (
	"math"
	"math/rand"
	"time"
)

// Delay returns the exponential backoff delay with +/-50% jitter for the
// given attempt. Attempt 1 (the first try) and invalid inputs get no delay.
func Delay(attempt int, baseDelay time.Duration) time.Duration {
	if attempt <= 1 || baseDelay <= 0 {
		return 0
	}

	d := time.Duration(math.Pow(2, float64(attempt-1))) * baseDelay

	jitterRange := float64(d) * 0.5
	jitter := time.Duration(rand.Float64()*2*jitterRange - jitterRange)

	if d += jitter; d < 0 {
		return 0
	}
	return d
}
