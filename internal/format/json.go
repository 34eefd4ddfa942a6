package format

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

// JSON renders property values as machine-parseable JSON annotated with
// theme styling. Numeric and date/time output is locale-independent
// unconditionally; an explicit per-value format string bypasses JSON
// rendering entirely and delegates to the display formatter, since such a
// value is meant for human display.
type JSON struct {
	theme   themes.Theme
	display *Display
}

// NewJSON creates a JSON value formatter bound to the given theme.
func NewJSON(theme themes.Theme) *JSON {
	return &JSON{theme: theme, display: NewDisplay(theme)}
}

// SwitchTheme returns a new formatter bound to t, preserving the display
// collaborator's configuration. The receiver is not mutated.
func (f *JSON) SwitchTheme(t themes.Theme) ValueFormatter {
	return &JSON{theme: t, display: f.display.switchTheme(t)}
}

// Format renders v to out. The format string applies only when v is a
// scalar; container rendering always uses JSON rules.
func (f *JSON) Format(out io.Writer, v event.Value, format string) (int, error) {
	if sc, ok := v.(event.Scalar); ok {
		return f.formatLiteral(out, sc, format)
	}
	return f.Visit(out, v)
}

// Visit dispatches v to the rendering routine for its variant, recursing
// depth-first and left-to-right. It returns the accumulated invisible
// style-code character count.
func (f *JSON) Visit(out io.Writer, v event.Value) (int, error) {
	switch v := v.(type) {
	case event.Scalar:
		return f.formatLiteral(out, v, "")
	case event.Sequence:
		return f.visitSequence(out, v)
	case event.Structure:
		return f.visitStructure(out, v)
	case event.Dictionary:
		return f.visitDictionary(out, v)
	case nil:
		return 0, ErrNilValue
	default:
		// Unreachable for the closed variant set.
		return 0, fmt.Errorf("format: unsupported value type %T", v)
	}
}

// formatLiteral renders a scalar. With an explicit format the display
// formatter takes over; otherwise the inner kind picks the JSON form.
func (f *JSON) formatLiteral(out io.Writer, sc event.Scalar, format string) (int, error) {
	if format != "" {
		return f.display.FormatLiteral(out, sc, format)
	}
	var invisible int
	var err error
	switch v := sc.Val.(type) {
	case nil:
		err = styledString(out, f.theme, themes.Null, &invisible, "null")
	case string:
		err = styledQuoted(out, f.theme, themes.String, &invisible, v)
	case bool:
		err = styledString(out, f.theme, themes.Boolean, &invisible, literalText(sc))
	case event.Char:
		err = styledQuoted(out, f.theme, themes.String, &invisible, string(rune(v)))
	case json.Number:
		err = styledString(out, f.theme, themes.Number, &invisible, v.String())
	case float64:
		err = f.formatFloat(out, v, 64, &invisible)
	case float32:
		err = f.formatFloat(out, float64(v), 32, &invisible)
	case time.Time:
		err = styledQuoted(out, f.theme, themes.String, &invisible, v.Format(time.RFC3339Nano))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		err = styledString(out, f.theme, themes.Number, &invisible, literalText(sc))
	default:
		err = styledQuoted(out, f.theme, themes.String, &invisible, literalText(sc))
	}
	return invisible, err
}

// formatFloat writes the shortest round-trippable numeral at the given bit
// width. NaN and infinities have no JSON numeral, so they render as quoted
// strings instead.
func (f *JSON) formatFloat(out io.Writer, v float64, bits int, invisible *int) error {
	if nonFinite(v) {
		return styledQuoted(out, f.theme, themes.String, invisible, floatText(v, bits))
	}
	return styledString(out, f.theme, themes.Number, invisible, floatText(v, bits))
}

// punct writes structural JSON punctuation in the TertiaryText style.
func (f *JSON) punct(out io.Writer, s string, invisible *int) error {
	return styledString(out, f.theme, themes.TertiaryText, invisible, s)
}

func (f *JSON) visitSequence(out io.Writer, seq event.Sequence) (int, error) {
	var invisible int
	if err := f.punct(out, "[", &invisible); err != nil {
		return invisible, err
	}
	for i, el := range seq.Elements {
		if i > 0 {
			if err := f.punct(out, ", ", &invisible); err != nil {
				return invisible, err
			}
		}
		n, err := f.Visit(out, el)
		invisible += n
		if err != nil {
			return invisible, err
		}
	}
	err := f.punct(out, "]", &invisible)
	return invisible, err
}

func (f *JSON) visitStructure(out io.Writer, st event.Structure) (int, error) {
	var invisible int
	if err := f.punct(out, "{", &invisible); err != nil {
		return invisible, err
	}
	for i, p := range st.Properties {
		if i > 0 {
			if err := f.punct(out, ", ", &invisible); err != nil {
				return invisible, err
			}
		}
		if err := f.member(out, p.Name, &invisible); err != nil {
			return invisible, err
		}
		n, err := f.Visit(out, p.Value)
		invisible += n
		if err != nil {
			return invisible, err
		}
	}
	if st.TypeTag != "" {
		if len(st.Properties) > 0 {
			if err := f.punct(out, ", ", &invisible); err != nil {
				return invisible, err
			}
		}
		if err := f.member(out, "$type", &invisible); err != nil {
			return invisible, err
		}
		if err := styledQuoted(out, f.theme, themes.String, &invisible, st.TypeTag); err != nil {
			return invisible, err
		}
	}
	err := f.punct(out, "}", &invisible)
	return invisible, err
}

// member writes a quoted Name-styled member name followed by ": ".
func (f *JSON) member(out io.Writer, name string, invisible *int) error {
	if err := styledQuoted(out, f.theme, themes.Name, invisible, name); err != nil {
		return err
	}
	return f.punct(out, ": ", invisible)
}

func (f *JSON) visitDictionary(out io.Writer, d event.Dictionary) (int, error) {
	var invisible int
	if err := f.punct(out, "{", &invisible); err != nil {
		return invisible, err
	}
	for i, entry := range d.Entries {
		if i > 0 {
			if err := f.punct(out, ", ", &invisible); err != nil {
				return invisible, err
			}
		}
		// Keys render as their text form, quoted in the String style: an
		// arbitrary dictionary key is data, not a declared member name.
		if err := styledQuoted(out, f.theme, themes.String, &invisible, literalText(entry.Key)); err != nil {
			return invisible, err
		}
		if err := f.punct(out, ": ", &invisible); err != nil {
			return invisible, err
		}
		n, err := f.Visit(out, entry.Value)
		invisible += n
		if err != nil {
			return invisible, err
		}
	}
	err := f.punct(out, "}", &invisible)
	return invisible, err
}
