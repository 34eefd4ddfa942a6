package termsink

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sungam3r/termsink/pkg/event"
)

type mockEmitter struct {
	mu     sync.Mutex
	events []*event.Event
	closed bool
	err    error         // if set, Emit returns this
	delay  time.Duration // if >0, Emit sleeps first
}

func (m *mockEmitter) Emit(e *event.Event) error {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()
	return m.err
}

func (m *mockEmitter) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

func (m *mockEmitter) eventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func (m *mockEmitter) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func TestAsyncDrainsOnClose(t *testing.T) {
	inner := &mockEmitter{}
	a := NewAsync(inner)
	for i := 0; i < 10; i++ {
		if err := a.Emit(testEvent()); err != nil {
			t.Fatalf("Emit() error: %v", err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if got := inner.eventCount(); got != 10 {
		t.Errorf("drained %d events, want 10", got)
	}
	if !inner.isClosed() {
		t.Error("inner emitter not closed")
	}
}

func TestAsyncCloseIsIdempotent(t *testing.T) {
	a := NewAsync(&mockEmitter{})
	if err := a.Close(); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
}

func TestAsyncErrorCallback(t *testing.T) {
	inner := &mockEmitter{err: errors.New("sink broken")}
	var count atomic.Int64
	a := NewAsync(inner, WithOnError(func(error) { count.Add(1) }))
	for i := 0; i < 3; i++ {
		if err := a.Emit(testEvent()); err != nil {
			t.Fatalf("Emit() error: %v", err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if got := count.Load(); got != 3 {
		t.Errorf("error callback invoked %d times, want 3", got)
	}
}

func TestAsyncDropOnFull(t *testing.T) {
	inner := &mockEmitter{delay: 50 * time.Millisecond}
	a := NewAsync(inner, WithBufferSize(1), WithDropOnFull())
	for i := 0; i < 20; i++ {
		if err := a.Emit(testEvent()); err != nil {
			t.Fatalf("Emit() error: %v", err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if got := inner.eventCount(); got >= 20 {
		t.Errorf("expected drops with a full buffer, inner received %d", got)
	}
}

func TestAsyncNilEvent(t *testing.T) {
	a := NewAsync(&mockEmitter{})
	defer a.Close()
	if err := a.Emit(nil); !errors.Is(err, ErrNilEvent) {
		t.Errorf("Emit(nil) error = %v, want ErrNilEvent", err)
	}
}
