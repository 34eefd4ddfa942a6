// Package termsink writes structured log events to a terminal as themed,
// aligned text, with property values rendered as styled JSON.
//
// Quick start:
//
//	s := termsink.New()
//	defer s.Close()
//
//	e := event.New(event.Information, "listening on {Port}").
//		With("Port", event.Int(8080))
//	s.Emit(e)
//
// By default the sink writes to stdout, picks a color theme when stdout is
// an interactive terminal (and plain text when it is not), and uses the
// output template
//
//	[{Timestamp:15:04:05} {Level:u3}] {Message}{NewLine}{Error}
//
// A Sink is safe for concurrent use. See the README for themes, templates,
// and the async and tee wrappers.
package termsink
