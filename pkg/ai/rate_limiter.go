package ai

import (
	"context"
	"sync"
	"time"
)

var _ Generator = (*RateLimitedGenerator)(nil)

// RateLimitedGenerator caps the request rate of a remote generator with a
// token bucket holding at most limit tokens, refilled evenly over window.
type RateLimitedGenerator struct {
	next     Generator
	tokens   chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

func NewRateLimitedGenerator(next Generator, limit int, window time.Duration) *RateLimitedGenerator {
	if limit < 1 {
		limit = 1
	}
	tokens := make(chan struct{}, limit)
	for range limit {
		tokens <- struct{}{}
	}

	g := &RateLimitedGenerator{
		next:    next,
		tokens:  tokens,
		stopped: make(chan struct{}),
	}
	go g.refill(max(window/time.Duration(limit), time.Nanosecond))

	return g
}

// Generate waits for a token, then forwards to the wrapped generator.
func (g *RateLimitedGenerator) Generate(ctx context.Context, input string, maxLength int) (string, error) {
	select {
	case <-g.tokens:
	case <-ctx.Done():
		return "", ctx.Err()
	case <-g.stopped:
		return "", context.Canceled
	}
	return g.next.Generate(ctx, input, maxLength)
}

// Stop ends the refill loop. It is safe to call more than once.
func (g *RateLimitedGenerator) Stop() {
	g.stopOnce.Do(func() { close(g.stopped) })
}

func (g *RateLimitedGenerator) refill(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case g.tokens <- struct{}{}:
			default:
			}
		case <-g.stopped:
			return
		}
	}
}
