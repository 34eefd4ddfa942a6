package termsink

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sungam3r/termsink/internal/template"
	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

// ErrNilEvent is returned when Emit is given a nil event.
var ErrNilEvent = errors.New("termsink: nil event")

// Emitter is a destination for log events. Sink, Async, and Tee all
// implement it.
type Emitter interface {
	Emit(e *event.Event) error
	Close() error
}

// bufPool recycles per-event render buffers across Emit calls.
var bufPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// Sink renders events through an output template and writes each rendered
// event to the writer in a single call, so lines from concurrent emitters
// never interleave.
type Sink struct {
	mu       *sync.Mutex
	out      io.Writer
	renderer *template.Renderer
	minLevel event.Level
}

// New creates a sink. Without options it writes to stdout with an
// auto-detected theme and the default output template.
func New(opts ...Option) *Sink {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	theme := o.theme
	if theme == nil {
		theme = themes.Detect(o.out)
	}
	return &Sink{
		mu:       new(sync.Mutex),
		out:      o.out,
		renderer: template.NewRenderer(o.template, theme),
		minLevel: o.minLevel,
	}
}

// Emit renders and writes one event. Events below the sink's minimum level
// are dropped. A failed render or write affects only this event.
func (s *Sink) Emit(e *event.Event) error {
	if e == nil {
		return ErrNilEvent
	}
	if e.Level < s.minLevel {
		return nil
	}
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufPool.Put(buf)

	if err := s.renderer.Render(buf, e); err != nil {
		return fmt.Errorf("termsink: render event: %w", err)
	}
	s.mu.Lock()
	_, err := s.out.Write(buf.Bytes())
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("termsink: write event: %w", err)
	}
	return nil
}

// SwitchTheme returns a new sink writing to the same destination with the
// same template and level, restyled with t. The receiver is unchanged and
// keeps working; both sinks share one write lock, so output from the old
// and new themes never interleaves mid-line.
func (s *Sink) SwitchTheme(t themes.Theme) *Sink {
	return &Sink{
		mu:       s.mu,
		out:      s.out,
		renderer: s.renderer.SwitchTheme(t),
		minLevel: s.minLevel,
	}
}

// Close releases the sink. The writer is not closed: the sink does not own
// stdout, and callers that pass a file manage its lifetime.
func (s *Sink) Close() error {
	return nil
}
