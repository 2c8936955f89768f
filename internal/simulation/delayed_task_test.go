package simulation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"smartpack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayedTask_RunsOnceAfterDelay(t *testing.T) {
	task := NewDelayedTask(10*time.Millisecond, nil)
	var calls atomic.Int32

	require.NoError(t, task.Start(context.Background(), func(context.Context) {
		calls.Add(1)
	}, nil))
	assert.True(t, task.Running())

	task.Wait()
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, task.Running())
}

func TestDelayedTask_RejectsSecondStart(t *testing.T) {
	task := NewDelayedTask(time.Hour, nil)
	defer task.Cancel()

	require.NoError(t, task.Start(context.Background(), func(context.Context) {}, nil))

	err := task.Start(context.Background(), func(context.Context) {}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBusy))
}

func TestDelayedTask_CancelPreventsRun(t *testing.T) {
	task := NewDelayedTask(time.Hour, nil)
	var calls, cancelled atomic.Int32

	require.NoError(t, task.Start(context.Background(), func(context.Context) {
		calls.Add(1)
	}, func() {
		cancelled.Add(1)
	}))

	assert.True(t, task.Cancel())
	task.Wait()

	assert.Zero(t, calls.Load())
	assert.Equal(t, int32(1), cancelled.Load())
	assert.False(t, task.Running())
	assert.False(t, task.Cancel())

	require.NoError(t, task.Start(context.Background(), func(context.Context) {}, nil))
	task.Cancel()
	task.Wait()
}

func TestDelayedTask_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := NewDelayedTask(time.Hour, nil)
	var calls atomic.Int32

	require.NoError(t, task.Start(ctx, func(context.Context) {
		calls.Add(1)
	}, nil))
	cancel()
	task.Wait()

	assert.Zero(t, calls.Load())
	require.ErrorIs(t, task.Start(ctx, func(context.Context) {}, nil), context.Canceled)
}

func TestDelayedTask_CancelAfterStartHasNoEffect(t *testing.T) {
	task := NewDelayedTask(time.Millisecond, nil)
	started := make(chan struct{})
	release := make(chan struct{})
	var fnErr error

	require.NoError(t, task.Start(context.Background(), func(ctx context.Context) {
		close(started)
		<-release
		fnErr = ctx.Err()
	}, func() {
		t.Error("onCancel called after the run started")
	}))

	<-started
	assert.False(t, task.Cancel())
	assert.True(t, task.Running())

	close(release)
	task.Wait()
	assert.NoError(t, fnErr)
	assert.False(t, task.Running())
}

func TestDelayedTask_RunsThroughRunner(t *testing.T) {
	runner := &countingRunner{}
	task := NewDelayedTask(time.Millisecond, runner)
	var calls atomic.Int32

	require.NoError(t, task.Start(context.Background(), func(context.Context) {
		calls.Add(1)
	}, nil))

	runner.wg.Wait()
	assert.Equal(t, int32(1), runner.started.Load())
	assert.Equal(t, int32(1), calls.Load())
}

type countingRunner struct {
	started atomic.Int32
	wg      sync.WaitGroup
}

func (r *countingRunner) Go(fn func(ctx context.Context)) {
	r.started.Add(1)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		fn(context.Background())
	}()
}
