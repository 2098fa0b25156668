// Package retry runs fallible reads with bounded attempts and backoff.
package retry

import (
	"context"
	"time"

	"quartzgo/errs"
	"quartzgo/retry/backoff"
)

// Action is a function to be performed in a retriable manner.
type Action func(ctx context.Context) error

// Strategy decides whether the action should run again. Strategies run in
// order, so delaying strategies should be last.
type Strategy func(ctx context.Context, attempts uint, err error) bool

// Retry runs action until it succeeds or a strategy declines another
// attempt. It returns the number of attempts made and the last error.
func Retry(ctx context.Context, action Action, strategies ...Strategy) (uint, error) {
	for i := uint(1); ; i++ {
		err := action(ctx)
		if err == nil {
			return i, nil
		}
		if ctx.Err() != nil {
			return i, err
		}
		for _, s := range strategies {
			if !s(ctx, i, err) {
				return i, err
			}
		}
	}
}

// Limit caps the total number of attempts. maxAttempts below 1 is treated as 1.
func Limit(maxAttempts uint) Strategy {
	return func(_ context.Context, attempts uint, _ error) bool {
		return attempts < maxAttempts
	}
}

// RetriableKinds retries only errors of the listed kinds.
func RetriableKinds(kinds ...errs.Kind) Strategy {
	return func(_ context.Context, _ uint, err error) bool {
		kind := errs.KindOf(err)
		for _, k := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}
}

// Backoff sleeps between attempts, capped at maxBackoff. A cancelled
// context ends the wait and stops retrying.
func Backoff(strategy backoff.Strategy, maxBackoff time.Duration) Strategy {
	return func(ctx context.Context, attempts uint, _ error) bool {
		delay := min(strategy(attempts), maxBackoff)
		return sleeperImpl.Sleep(ctx, delay)
	}
}

// Policy is the caller-configurable retry ceiling used by the read paths.
type Policy struct {
	MaxAttempts uint          `yaml:"maxAttempts"`
	BaseDelay   time.Duration `yaml:"baseDelay"`
	MaxDelay    time.Duration `yaml:"maxDelay"`
}

var DefaultPolicy = Policy{
	MaxAttempts: 5,
	BaseDelay:   250 * time.Millisecond,
	MaxDelay:    5 * time.Second,
}

func (p Policy) Strategies() []Strategy {
	return []Strategy{
		Limit(max(p.MaxAttempts, 1)),
		RetriableKinds(errs.KindTransient, errs.KindUnknown),
		Backoff(backoff.BinaryExponential(p.BaseDelay), p.MaxDelay),
	}
}

// Do retries action under the policy. Exhausted errors without a kind are
// surfaced as Transient.
func (p Policy) Do(ctx context.Context, op string, action Action) error {
	_, err := Retry(ctx, action, p.Strategies()...)
	return errs.Wrap(errs.KindTransient, op, err)
}

// Wait sleeps for the backoff that follows the given attempt. It reports
// false once the attempts are used up or ctx is done.
func (p Policy) Wait(ctx context.Context, attempts uint) bool {
	if attempts >= max(p.MaxAttempts, 1) {
		return false
	}
	return Backoff(backoff.BinaryExponential(p.BaseDelay), p.MaxDelay)(ctx, attempts, nil)
}

type sleeper interface {
	Sleep(ctx context.Context, d time.Duration) bool
}

type realSleeper struct{}

func (r *realSleeper) Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

var sleeperImpl sleeper = &realSleeper{}
