package event

import "time"

// Event is a single structured log event.
// This is the stable public type consumed by sinks — values are constructed
// upstream, passed by reference, and never mutated during rendering.
type Event struct {
	Timestamp  time.Time        // When the event was produced
	Level      Level            // Severity
	Template   string           // Message template, e.g. "listening on {Port}"
	Properties map[string]Value // Named property values referenced by the template
	Err        error            // Associated error, if any
}

// New creates an event with the given level and message template,
// timestamped now.
func New(level Level, template string) *Event {
	return &Event{
		Timestamp:  time.Now(),
		Level:      level,
		Template:   template,
		Properties: make(map[string]Value),
	}
}

// With adds a property value and returns the event for chaining.
func (e *Event) With(name string, v Value) *Event {
	if e.Properties == nil {
		e.Properties = make(map[string]Value)
	}
	e.Properties[name] = v
	return e
}

// WithErr attaches an error and returns the event for chaining.
func (e *Event) WithErr(err error) *Event {
	e.Err = err
	return e
}
