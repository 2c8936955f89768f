// Package lifecycle holds the process lifetime shared by background tasks.
package lifecycle

import (
	"context"
	"sync"
	"time"

	"smartpack/internal/errors"
)

// DefaultTimeout bounds start and stop hooks.
const DefaultTimeout = 10 * time.Second

// Lifetime is a context that ends when the application stops, plus a
// registry of the goroutines running under it.
type Lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLifetime creates a running lifetime.
func NewLifetime() *Lifetime {
	ctx, cancel := context.WithCancel(context.Background())

	return &Lifetime{ctx: ctx, cancel: cancel}
}

// Context returns the context cancelled by Stop.
func (l *Lifetime) Context() context.Context {
	return l.ctx
}

// Go runs fn on a tracked goroutine with the lifetime context.
func (l *Lifetime) Go(fn func(ctx context.Context)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn(l.ctx)
	}()
}

// Stop cancels the lifetime and waits for tracked goroutines until ctx expires.
func (l *Lifetime) Stop(ctx context.Context) error {
	l.cancel()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "background tasks did not stop in time")
	}
}
