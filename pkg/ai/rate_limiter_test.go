package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRateLimitedGenerator(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	t.Run("forwards within budget", func(t *testing.T) {
		next := new(MockGenerator)
		next.On("Generate", mock.Anything, "emotion: hi", 50).Return("ok", nil)
		g := NewRateLimitedGenerator(next, 2, time.Hour)
		defer g.Stop()

		for range 2 {
			reply, err := g.Generate(context.Background(), "emotion: hi", 50)
			require.NoError(t, err)
			assert.Equal(t, "ok", reply)
		}
		next.AssertNumberOfCalls(t, "Generate", 2)
	})

	t.Run("blocks when exhausted", func(t *testing.T) {
		next := new(MockGenerator)
		next.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("ok", nil)
		g := NewRateLimitedGenerator(next, 1, time.Hour)
		defer g.Stop()

		_, err := g.Generate(context.Background(), "first", 50)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = g.Generate(ctx, "second", 50)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		next.AssertNumberOfCalls(t, "Generate", 1)
	})

	t.Run("refills over time", func(t *testing.T) {
		next := new(MockGenerator)
		next.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("ok", nil)
		g := NewRateLimitedGenerator(next, 1, 10*time.Millisecond)
		defer g.Stop()

		for range 3 {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			_, err := g.Generate(ctx, "again", 50)
			cancel()
			require.NoError(t, err)
		}
	})

	t.Run("limit above window resolution", func(t *testing.T) {
		next := new(MockGenerator)
		next.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("ok", nil)
		g := NewRateLimitedGenerator(next, 10, time.Nanosecond)
		defer g.Stop()

		reply, err := g.Generate(context.Background(), "burst", 50)
		require.NoError(t, err)
		assert.Equal(t, "ok", reply)
	})

	t.Run("stop twice", func(t *testing.T) {
		g := NewRateLimitedGenerator(new(MockGenerator), 1, time.Hour)
		g.Stop()
		assert.NotPanics(t, g.Stop)
	})

	t.Run("stopped", func(t *testing.T) {
		g := NewRateLimitedGenerator(new(MockGenerator), 1, time.Hour)
		<-g.tokens
		g.Stop()

		_, err := g.Generate(context.Background(), "late", 50)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
