package termsink

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

func testEvent() *event.Event {
	return &event.Event{
		Timestamp:  time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC),
		Level:      event.Information,
		Template:   "hello {Who}",
		Properties: map[string]event.Value{"Who": event.Str("world")},
	}
}

func TestEmitDefaultTemplate(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithWriter(&buf), WithTheme(themes.None))
	if err := s.Emit(testEvent()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	want := "[10:30:00 INF] hello \"world\"\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestEmitNilEvent(t *testing.T) {
	s := New(WithWriter(new(bytes.Buffer)), WithTheme(themes.None))
	if err := s.Emit(nil); !errors.Is(err, ErrNilEvent) {
		t.Errorf("Emit(nil) error = %v, want ErrNilEvent", err)
	}
}

func TestMinLevelDropsEvents(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithWriter(&buf), WithTheme(themes.None), WithMinLevel(event.Warning))
	if err := s.Emit(testEvent()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("info event written despite Warning minimum: %q", buf.String())
	}
	e := testEvent()
	e.Level = event.Error
	if err := s.Emit(e); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("error event not written")
	}
}

func TestCustomTemplate(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithWriter(&buf), WithTheme(themes.None), WithTemplate("{Level:u3}: {Message}"))
	if err := s.Emit(testEvent()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if got, want := buf.String(), `INF: hello "world"`; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNonFileWriterGetsNoTheme(t *testing.T) {
	// Theme detection must fall back to None for plain buffers.
	var buf bytes.Buffer
	s := New(WithWriter(&buf))
	if err := s.Emit(testEvent()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("detected theme emitted escape codes for a buffer: %q", buf.String())
	}
}

type countTheme struct{}

func (countTheme) Codes(themes.Style) (string, string) { return "\x1b[36m", "\x1b[0m" }

func TestSwitchTheme(t *testing.T) {
	var buf bytes.Buffer
	plain := New(WithWriter(&buf), WithTheme(themes.None))
	colored := plain.SwitchTheme(countTheme{})

	if err := colored.Emit(testEvent()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	themed := buf.String()
	if !strings.Contains(themed, "\x1b[36m") {
		t.Errorf("switched sink produced no style codes: %q", themed)
	}

	buf.Reset()
	if err := plain.Emit(testEvent()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("original sink affected by SwitchTheme: %q", buf.String())
	}

	stripped := strings.ReplaceAll(themed, "\x1b[36m", "")
	stripped = strings.ReplaceAll(stripped, "\x1b[0m", "")
	if stripped != buf.String() {
		t.Errorf("themed content = %q, plain content = %q", stripped, buf.String())
	}
}

// lockedBuffer guards writes so the race detector can vouch for Emit.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestConcurrentEmit(t *testing.T) {
	var buf lockedBuffer
	s := New(WithWriter(&buf), WithTheme(themes.None), WithTemplate("{Message}{NewLine}"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if err := s.Emit(testEvent()); err != nil {
					t.Errorf("Emit() error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	lines := strings.Split(strings.TrimRight(buf.buf.String(), "\n"), "\n")
	if len(lines) != 8*50 {
		t.Fatalf("got %d lines, want %d", len(lines), 8*50)
	}
	for _, line := range lines {
		if line != `hello "world"` {
			t.Fatalf("interleaved line: %q", line)
		}
	}
}
