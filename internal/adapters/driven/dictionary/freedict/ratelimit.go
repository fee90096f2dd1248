package freedict

import (
	"context"
	"math"

	"golang.org/x/time/rate"
)

// newLimiter builds the politeness limiter for perSecond requests per second.
// Zero or negative means unlimited.
func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(math.Ceil(perSecond))
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// wait blocks until the limiter admits one request or ctx is done.
func wait(ctx context.Context, l *rate.Limiter) error {
	if l == nil || l.Limit() == rate.Inf {
		return nil
	}
	return l.Wait(ctx)
}
