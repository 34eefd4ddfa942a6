package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

// Display renders property values for human reading rather than as
// machine-parseable JSON: strings appear unquoted when asked to, times
// honor Go layout strings, and numbers honor fmt verbs.
type Display struct {
	theme themes.Theme
}

// NewDisplay creates a display formatter bound to the given theme.
func NewDisplay(theme themes.Theme) *Display {
	return &Display{theme: theme}
}

// SwitchTheme returns a new display formatter bound to t.
func (d *Display) SwitchTheme(t themes.Theme) ValueFormatter {
	return d.switchTheme(t)
}

func (d *Display) switchTheme(t themes.Theme) *Display {
	return &Display{theme: t}
}

// Format renders v to out in display form.
func (d *Display) Format(out io.Writer, v event.Value, format string) (int, error) {
	switch v := v.(type) {
	case event.Scalar:
		return d.FormatLiteral(out, v, format)
	case event.Sequence:
		return d.visitSequence(out, v, format)
	case event.Structure:
		return d.visitStructure(out, v)
	case event.Dictionary:
		return d.visitDictionary(out, v)
	case nil:
		return 0, ErrNilValue
	default:
		return 0, fmt.Errorf("format: unsupported value type %T", v)
	}
}

// FormatLiteral renders a scalar in display form. Supported formats:
// "l" renders strings without surrounding quotes; a Go time layout formats
// time values; a %-verb formats any value through the fmt package. Other
// formats fall back to the default text form.
func (d *Display) FormatLiteral(out io.Writer, sc event.Scalar, format string) (int, error) {
	var invisible int
	var err error
	switch v := sc.Val.(type) {
	case nil:
		err = styledString(out, d.theme, themes.Null, &invisible, "null")
	case string:
		if format == "l" {
			err = styledString(out, d.theme, themes.String, &invisible, v)
		} else {
			err = styledQuoted(out, d.theme, themes.String, &invisible, v)
		}
	case bool:
		err = styledString(out, d.theme, themes.Boolean, &invisible, literalText(sc))
	case event.Char:
		err = styledString(out, d.theme, themes.String, &invisible, string(rune(v)))
	case time.Time:
		text := v.Format(time.RFC3339Nano)
		if format != "" {
			text = v.Format(format)
		}
		err = styledString(out, d.theme, themes.String, &invisible, text)
	case json.Number, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		err = styledString(out, d.theme, themes.Number, &invisible, d.verbText(sc, format))
	default:
		err = styledString(out, d.theme, themes.String, &invisible, d.verbText(sc, format))
	}
	return invisible, err
}

// verbText applies a %-verb format when one is given, else the default
// text form.
func (d *Display) verbText(sc event.Scalar, format string) string {
	if strings.HasPrefix(format, "%") {
		return fmt.Sprintf(format, sc.Val)
	}
	return literalText(sc)
}

func (d *Display) punct(out io.Writer, s string, invisible *int) error {
	return styledString(out, d.theme, themes.TertiaryText, invisible, s)
}

// visitSequence renders [a, b, c], passing the element format through so
// {Sizes:%x} formats every element.
func (d *Display) visitSequence(out io.Writer, seq event.Sequence, format string) (int, error) {
	var invisible int
	if err := d.punct(out, "[", &invisible); err != nil {
		return invisible, err
	}
	for i, el := range seq.Elements {
		if i > 0 {
			if err := d.punct(out, ", ", &invisible); err != nil {
				return invisible, err
			}
		}
		n, err := d.Format(out, el, format)
		invisible += n
		if err != nil {
			return invisible, err
		}
	}
	err := d.punct(out, "]", &invisible)
	return invisible, err
}

// visitStructure renders Tag {name: value, ...} with unquoted member names.
func (d *Display) visitStructure(out io.Writer, st event.Structure) (int, error) {
	var invisible int
	if st.TypeTag != "" {
		if err := styledString(out, d.theme, themes.Name, &invisible, st.TypeTag+" "); err != nil {
			return invisible, err
		}
	}
	if err := d.punct(out, "{", &invisible); err != nil {
		return invisible, err
	}
	for i, p := range st.Properties {
		if i > 0 {
			if err := d.punct(out, ", ", &invisible); err != nil {
				return invisible, err
			}
		}
		if err := styledString(out, d.theme, themes.Name, &invisible, p.Name); err != nil {
			return invisible, err
		}
		if err := d.punct(out, ": ", &invisible); err != nil {
			return invisible, err
		}
		n, err := d.Format(out, p.Value, "")
		invisible += n
		if err != nil {
			return invisible, err
		}
	}
	err := d.punct(out, "}", &invisible)
	return invisible, err
}

// visitDictionary renders {"key": value, ...} with display-form values.
func (d *Display) visitDictionary(out io.Writer, dict event.Dictionary) (int, error) {
	var invisible int
	if err := d.punct(out, "{", &invisible); err != nil {
		return invisible, err
	}
	for i, entry := range dict.Entries {
		if i > 0 {
			if err := d.punct(out, ", ", &invisible); err != nil {
				return invisible, err
			}
		}
		if err := styledQuoted(out, d.theme, themes.String, &invisible, literalText(entry.Key)); err != nil {
			return invisible, err
		}
		if err := d.punct(out, ": ", &invisible); err != nil {
			return invisible, err
		}
		n, err := d.Format(out, entry.Value, "")
		invisible += n
		if err != nil {
			return invisible, err
		}
	}
	err := d.punct(out, "}", &invisible)
	return invisible, err
}
