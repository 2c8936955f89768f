package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifetime_StopCancelsAndWaits(t *testing.T) {
	lifetime := NewLifetime()
	finished := make(chan struct{})

	lifetime.Go(func(ctx context.Context) {
		<-ctx.Done()
		close(finished)
	})

	require.NoError(t, lifetime.Stop(context.Background()))

	select {
	case <-finished:
	default:
		t.Fatal("goroutine still running after Stop returned")
	}
	assert.ErrorIs(t, lifetime.Context().Err(), context.Canceled)
}

func TestLifetime_StopTimesOut(t *testing.T) {
	lifetime := NewLifetime()
	release := make(chan struct{})
	defer close(release)

	lifetime.Go(func(context.Context) {
		<-release
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := lifetime.Stop(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not stop in time")
}
