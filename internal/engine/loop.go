package engine

import (
	"context"
	"errors"
	"sync"
)

var ErrLoopClosed = errors.New("event loop closed")

// Poster queues fn to run on a single logical thread.
type Poster interface {
	Post(fn func()) bool
}

// PosterFunc adapts a function to Poster.
type PosterFunc func(fn func()) bool

func (f PosterFunc) Post(fn func()) bool { return f(fn) }

// Loop serializes every mutation of the application state onto one goroutine.
// Ticks, async completions and HTTP handlers all post here.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoop(size int) *Loop {
	if size <= 0 {
		size = 64
	}
	return &Loop{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Post enqueues fn. It returns false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case <-l.done:
		return false
	case l.queue <- fn:
		return true
	}
}

// Do runs fn on the loop and waits for its result.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	errc := make(chan error, 1)
	if !l.Post(func() { errc <- fn() }) {
		return ErrLoopClosed
	}
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrLoopClosed
	}
}

// Run processes posted functions until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }
