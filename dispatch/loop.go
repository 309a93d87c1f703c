package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrLoopClosed is returned by Post after the loop has been closed.
var ErrLoopClosed = errors.New("dispatch: loop closed")

// DefaultInboxSize is used when NewLoop is given a non-positive capacity.
const DefaultInboxSize = 256

// Loop is a single-goroutine executor: everything posted runs, in order, on
// the goroutine that called Run. It models a UI thread or any other owner
// that requires all mutations of its objects to happen on its own context.
type Loop struct {
	inbox    chan func()
	quit     chan struct{}
	stopped  chan struct{}
	closed   atomic.Bool
	executed atomic.Uint64
}

func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = DefaultInboxSize
	}
	return &Loop{
		inbox:   make(chan func(), capacity),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Run executes posted work until ctx is cancelled or Close is called.
// It blocks; start it on a dedicated goroutine.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.quit:
			return
		case fn := <-l.inbox:
			fn()
			l.executed.Add(1)
		}
	}
}

// Post enqueues fn onto the loop's inbox and returns immediately. It never
// blocks: posting to a full inbox fails rather than stalling the caller's
// clock.
func (l *Loop) Post(fn func()) error {
	if l.closed.Load() {
		return ErrLoopClosed
	}
	select {
	case l.inbox <- fn:
		return nil
	default:
		return fmt.Errorf("dispatch: inbox full (capacity %d)", cap(l.inbox))
	}
}

// Close stops the loop. Work still queued is discarded. Idempotent.
func (l *Loop) Close() {
	if l.closed.CompareAndSwap(false, true) {
		close(l.quit)
	}
}

// Stopped is closed once Run has returned.
func (l *Loop) Stopped() <-chan struct{} { return l.stopped }

// Executed returns how many posted actions have run.
func (l *Loop) Executed() uint64 { return l.executed.Load() }

// Pending returns how many posted actions are waiting in the inbox.
func (l *Loop) Pending() int { return len(l.inbox) }
