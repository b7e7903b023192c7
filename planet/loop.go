package planet

import (
	"context"
	"errors"
)

// ErrStopped is returned by Loop.Tick once the Loop has been stopped.
var ErrStopped = errors.New("planet: loop stopped")

// Loop runs a step function once per host frame until it's stopped, either through Stop or by its parent context
// ending. The host calls Tick from its own frame callback, so each Tick effectively schedules the next.
type Loop struct {
	ctx    context.Context
	cancel context.CancelFunc
	step   func()
}

// NewLoop creates a Loop that calls step on every Tick until ctx is done or Stop is called.
func NewLoop(ctx context.Context, step func()) *Loop {
	ctx, cancel := context.WithCancel(ctx)
	return &Loop{
		ctx:    ctx,
		cancel: cancel,
		step:   step,
	}
}

// Tick runs one step, or returns ErrStopped if the Loop has been stopped.
func (loop *Loop) Tick() error {
	if loop.ctx.Err() != nil {
		return ErrStopped
	}
	loop.step()
	return nil
}

// Stop stops the Loop; the next Tick returns ErrStopped. It's safe to call from any goroutine, and more than once.
func (loop *Loop) Stop() {
	loop.cancel()
}

// Done returns a channel that's closed once the Loop has been stopped.
func (loop *Loop) Done() <-chan struct{} {
	return loop.ctx.Done()
}
