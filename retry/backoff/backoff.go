// Package backoff provides delay strategies for retry.
package backoff

import (
	"math"
	"time"
)

// Strategy returns the delay before the next attempt. attempts starts at 1.
type Strategy func(attempts uint) time.Duration

func Constant(interval time.Duration) Strategy {
	return func(attempts uint) time.Duration {
		return interval
	}
}

// Exponential returns baseDelay * base^(attempts - 1).
func Exponential(baseDelay time.Duration, base float64) Strategy {
	return func(attempts uint) time.Duration {
		delay := float64(baseDelay) * math.Pow(base, float64(attempts-1))
		if delay >= float64(math.MaxInt64) || delay < 0 {
			return math.MaxInt64
		}
		return time.Duration(delay)
	}
}

func BinaryExponential(baseDelay time.Duration) Strategy {
	return Exponential(baseDelay, 2)
}
