package client

import (
	"context"
	"time"

	"github.com/iov-one/weave/errors"
	"github.com/sony/gobreaker"
)

// BreakerGetter stops calling the node after a series of failures and lets
// a single request through once the cool down timeout passes.
type BreakerGetter struct {
	next Getter
	cb   *gobreaker.CircuitBreaker
}

var _ Getter = (*BreakerGetter)(nil)

func NewBreakerGetter(name string, next Getter, timeout time.Duration) *BreakerGetter {
	st := gobreaker.Settings{
		Name:     name,
		Interval: time.Minute,
		Timeout:  timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= 3 {
				return true
			}
			if counts.Requests < 20 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) > 0.05
		},
	}
	return &BreakerGetter{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(st),
	}
}

func (b *BreakerGetter) Get(ctx context.Context, path string, dest interface{}) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Get(ctx, path, dest)
	})
	switch err {
	case gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests:
		return errors.Wrap(ErrUnavailable, err.Error())
	}
	return err
}

// State returns the current state of the breaker.
func (b *BreakerGetter) State() gobreaker.State {
	return b.cb.State()
}

// ErrUnavailable is returned when the node is not called because it failed
// too many times recently.
var ErrUnavailable = errors.Register(3000, "node unavailable")
