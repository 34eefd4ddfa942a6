package template

import (
	"bytes"
	"io"
	"sort"
	"time"

	"github.com/sungam3r/termsink/internal/format"
	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

// Default is the output template used when none is configured.
const Default = "[{Timestamp:15:04:05} {Level:u3}] {Message}{NewLine}{Error}"

// Built-in output template token names. Anything else resolves against the
// event's properties.
const (
	tokTimestamp  = "Timestamp"
	tokLevel      = "Level"
	tokMessage    = "Message"
	tokNewLine    = "NewLine"
	tokError      = "Error"
	tokProperties = "Properties"
)

// Renderer renders events line by line according to an output template.
// A renderer is immutable and safe for concurrent use over independent
// writers.
type Renderer struct {
	theme  themes.Theme
	tokens []token
	values *format.JSON
}

// NewRenderer parses the output template and binds the renderer to a theme.
func NewRenderer(outputTemplate string, theme themes.Theme) *Renderer {
	return &Renderer{
		theme:  theme,
		tokens: parse(outputTemplate),
		values: format.NewJSON(theme),
	}
}

// SwitchTheme returns a new renderer for the same template bound to t.
func (r *Renderer) SwitchTheme(t themes.Theme) *Renderer {
	return &Renderer{theme: t, tokens: r.tokens, values: format.NewJSON(t)}
}

// Render writes one event to out.
func (r *Renderer) Render(out io.Writer, e *event.Event) error {
	if e == nil {
		return format.ErrNilValue
	}
	for _, tok := range r.tokens {
		var invisible int
		if tok.align == 0 {
			if err := r.renderToken(out, e, tok, &invisible); err != nil {
				return err
			}
			continue
		}
		// Aligned tokens render to a scratch buffer first so padding can
		// subtract the invisible style-code characters of just this span.
		var buf bytes.Buffer
		if err := r.renderToken(&buf, e, tok, &invisible); err != nil {
			return err
		}
		if err := pad(out, buf.String(), invisible, tok.align); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderToken(out io.Writer, e *event.Event, tok token, invisible *int) error {
	if tok.isText() {
		return r.styled(out, themes.SecondaryText, tok.text, invisible)
	}
	switch tok.name {
	case tokTimestamp:
		layout := tok.format
		if layout == "" {
			layout = time.RFC3339
		}
		return r.styled(out, themes.SecondaryText, e.Timestamp.Format(layout), invisible)
	case tokLevel:
		return r.styled(out, levelStyle(e.Level), levelMoniker(e.Level, tok.format), invisible)
	case tokMessage:
		return r.renderMessage(out, e, invisible)
	case tokNewLine:
		_, err := io.WriteString(out, "\n")
		return err
	case tokError:
		if e.Err == nil {
			return nil
		}
		return r.styled(out, themes.LevelError, e.Err.Error()+"\n", invisible)
	case tokProperties:
		return r.renderRest(out, e, invisible)
	default:
		v, ok := e.Properties[tok.name]
		if !ok {
			return nil
		}
		n, err := r.values.Format(out, v, tok.format)
		*invisible += n
		return err
	}
}

// renderMessage renders the event's message template: literal text in the
// Text style, property tokens through the value formatter. A token naming
// a property the event does not carry renders as its raw text in the
// Invalid style, making the gap visible instead of silent.
func (r *Renderer) renderMessage(out io.Writer, e *event.Event, invisible *int) error {
	for _, tok := range parse(e.Template) {
		if tok.isText() {
			if err := r.styled(out, themes.Text, tok.text, invisible); err != nil {
				return err
			}
			continue
		}
		v, ok := e.Properties[tok.name]
		if !ok {
			if err := r.styled(out, themes.Invalid, tok.raw, invisible); err != nil {
				return err
			}
			continue
		}
		if tok.align == 0 {
			n, err := r.values.Format(out, v, tok.format)
			*invisible += n
			if err != nil {
				return err
			}
			continue
		}
		var buf bytes.Buffer
		var segment int
		n, err := r.values.Format(&buf, v, tok.format)
		segment += n
		if err != nil {
			return err
		}
		*invisible += segment
		if err := pad(out, buf.String(), segment, tok.align); err != nil {
			return err
		}
	}
	return nil
}

// renderRest renders the properties not consumed by the message or output
// template as one JSON structure, in name order for determinism.
func (r *Renderer) renderRest(out io.Writer, e *event.Event, invisible *int) error {
	used := make(map[string]bool)
	for _, tok := range r.tokens {
		if !tok.isText() {
			used[tok.name] = true
		}
	}
	for _, tok := range parse(e.Template) {
		if !tok.isText() {
			used[tok.name] = true
		}
	}
	var names []string
	for name := range e.Properties {
		if !used[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	st := event.Structure{Properties: make([]event.Property, 0, len(names))}
	for _, name := range names {
		st.Properties = append(st.Properties, event.Property{Name: name, Value: e.Properties[name]})
	}
	n, err := r.values.Visit(out, st)
	*invisible += n
	return err
}

func (r *Renderer) styled(out io.Writer, s themes.Style, text string, invisible *int) error {
	if text == "" {
		return nil
	}
	return format.StyledText(out, r.theme, s, invisible, text)
}
