// Package format renders structured property values to an output sink with
// theme styling, tracking how many emitted characters are invisible style
// codes rather than visible content. Outer layout code subtracts that count
// when computing visible column widths.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

// ErrNilValue is returned when a required value reference is absent.
var ErrNilValue = errors.New("format: value is nil")

// ValueFormatter renders one property value to out. The returned count is
// the number of invisible style-code characters written; format, when
// non-empty, requests an explicit presentation format for scalars.
//
// Implementations are immutable: SwitchTheme returns a new formatter bound
// to the given theme, leaving the receiver untouched so in-flight renders
// keep their original styling.
type ValueFormatter interface {
	Format(out io.Writer, v event.Value, format string) (int, error)
	SwitchTheme(t themes.Theme) ValueFormatter
}

// literalText returns the plain, locale-independent text form of a scalar,
// with no quoting or styling. Used for dictionary keys and display output.
func literalText(sc event.Scalar) string {
	switch v := sc.Val.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case event.Char:
		return string(rune(v))
	case json.Number:
		return v.String()
	case float64:
		return floatText(v, 64)
	case float32:
		return floatText(float64(v), 32)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// floatText formats a float as the shortest text that re-parses to the
// identical value at the given bit width. NaN and infinities use their
// invariant names rather than Go's "+Inf" spelling.
func floatText(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// nonFinite reports whether a float has no numeric JSON representation.
func nonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
