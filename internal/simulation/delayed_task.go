package simulation

import (
	"context"
	"sync"
	"time"

	"smartpack/internal/errors"
)

// ErrBusy is returned by DelayedTask.Start while a run is pending.
var ErrBusy = errors.New("task already running")

// Runner starts goroutines it keeps track of, such as lifecycle.Lifetime.
type Runner interface {
	Go(fn func(ctx context.Context))
}

// DelayedTask runs a function once after a fixed delay, with at most one run
// in flight. The pending run can be cancelled until the function starts.
type DelayedTask struct {
	delay  time.Duration
	runner Runner

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	wg      sync.WaitGroup
}

// NewDelayedTask creates a task with the given delay. Runs are started through
// runner when it is not nil, so whoever owns it can wait for them on shutdown.
func NewDelayedTask(delay time.Duration, runner Runner) *DelayedTask {
	return &DelayedTask{delay: delay, runner: runner}
}

// Start schedules fn. It returns ErrBusy when a previous run has not finished.
// The run is cancelled by Cancel or when parent ends, and onCancel, if set, is
// called instead of fn. Once fn has started Cancel no longer reaches it; its
// context only ends with parent.
func (t *DelayedTask) Start(parent context.Context, fn func(ctx context.Context), onCancel func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return errors.WithStack(ErrBusy)
	}
	if err := parent.Err(); err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := context.WithCancel(parent)
	t.running = true
	t.cancel = cancel
	t.wg.Add(1)

	t.spawn(func() {
		defer t.wg.Done()
		defer t.finish(cancel)

		if !t.await(ctx) {
			if onCancel != nil {
				onCancel()
			}

			return
		}
		fn(parent)
	})

	return nil
}

func (t *DelayedTask) spawn(run func()) {
	if t.runner == nil {
		go run()

		return
	}

	t.runner.Go(func(context.Context) { run() })
}

// await waits out the delay and reports whether the run fired. Firing and
// Cancel are serialized by the mutex, so exactly one of them wins.
func (t *DelayedTask) await(ctx context.Context) bool {
	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}
	t.cancel = nil

	return true
}

func (t *DelayedTask) finish(cancel context.CancelFunc) {
	cancel()

	t.mu.Lock()
	t.running = false
	t.cancel = nil
	t.mu.Unlock()
}

// Cancel stops the pending run. It reports false when nothing is pending,
// including when the run has already started.
func (t *DelayedTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || t.cancel == nil {
		return false
	}
	t.cancel()

	return true
}

// Running reports whether a run is pending or executing.
func (t *DelayedTask) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// Wait blocks until the current run, if any, has returned.
func (t *DelayedTask) Wait() {
	t.wg.Wait()
}
