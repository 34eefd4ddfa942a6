package termsink

import (
	"io"
	"os"

	"github.com/sungam3r/termsink/internal/template"
	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

type options struct {
	out      io.Writer
	theme    themes.Theme
	template string
	minLevel event.Level
}

// Option configures a Sink.
type Option func(*options)

// WithWriter sets the destination writer. Default: stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithTheme sets the theme explicitly, bypassing terminal detection.
// Use themes.None for style-free output.
func WithTheme(t themes.Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithTemplate sets the output template. Default:
// "[{Timestamp:15:04:05} {Level:u3}] {Message}{NewLine}{Error}".
func WithTemplate(tpl string) Option {
	return func(o *options) { o.template = tpl }
}

// WithMinLevel drops events below the given level. Default: Verbose
// (nothing dropped).
func WithMinLevel(l event.Level) Option {
	return func(o *options) { o.minLevel = l }
}

func defaultOptions() options {
	return options{
		out:      os.Stdout,
		template: template.Default,
		minLevel: event.Verbose,
	}
}
