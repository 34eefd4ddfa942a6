package termsink

import (
	"log/slog"
	"sync"
	"time"

	"github.com/sungam3r/termsink/pkg/event"
)

const (
	defaultBufferSize   = 1024
	defaultDrainTimeout = 5 * time.Second
)

// AsyncOption configures an Async wrapper.
type AsyncOption func(*Async)

// WithBufferSize sets the channel buffer capacity. Default: 1024.
func WithBufferSize(n int) AsyncOption {
	return func(a *Async) { a.bufSize = n }
}

// WithOnError sets the callback invoked when the inner emitter fails.
// Default: logs a warning via slog.
func WithOnError(f func(error)) AsyncOption {
	return func(a *Async) { a.errFunc = f }
}

// WithDropOnFull makes Emit return immediately (dropping the event) when
// the buffer is full, instead of blocking. Use when losing log lines beats
// stalling the caller.
func WithDropOnFull() AsyncOption {
	return func(a *Async) { a.dropOnFull = true }
}

// Async decouples event production from rendering via a buffered channel.
// Callers emit into the channel; a background goroutine drains it to the
// wrapped emitter. Errors from the inner emitter go to errFunc rather than
// back to the caller.
type Async struct {
	inner      Emitter
	ch         chan *event.Event
	done       chan struct{}
	errFunc    func(error)
	bufSize    int
	dropOnFull bool
	closeOnce  sync.Once
}

// NewAsync wraps an emitter in an async channel-based writer. The
// background drain goroutine starts immediately.
func NewAsync(inner Emitter, opts ...AsyncOption) *Async {
	a := &Async{
		inner:   inner,
		bufSize: defaultBufferSize,
		errFunc: func(err error) { slog.Warn("async emit error", "error", err) },
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ch = make(chan *event.Event, a.bufSize)
	a.done = make(chan struct{})
	go a.drain()
	return a
}

// Emit sends the event into the channel. By default, blocks when the
// channel is full (backpressure). With WithDropOnFull, returns nil
// immediately and the event is lost.
func (a *Async) Emit(e *event.Event) error {
	if e == nil {
		return ErrNilEvent
	}
	if a.dropOnFull {
		select {
		case a.ch <- e:
		default:
			slog.Warn("async buffer full, dropping event", "template", e.Template)
		}
		return nil
	}
	a.ch <- e
	return nil
}

// Close closes the channel, waits for the drain goroutine to finish (with
// a timeout), then closes the inner emitter.
func (a *Async) Close() error {
	var err error
	a.closeOnce.Do(func() {
		close(a.ch)
		select {
		case <-a.done:
		case <-time.After(defaultDrainTimeout):
			slog.Warn("async drain timed out")
		}
		err = a.inner.Close()
	})
	return err
}

// drain reads events from the channel and emits them on the inner emitter.
func (a *Async) drain() {
	defer close(a.done)
	for e := range a.ch {
		if err := a.inner.Emit(e); err != nil {
			a.errFunc(err)
		}
	}
}
