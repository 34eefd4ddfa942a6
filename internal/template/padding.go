package template

import (
	"io"
	"strings"
	"unicode/utf8"
)

// pad writes s to out padded to the requested alignment width. Visible
// width is the rune count net of invisible style-code characters, so
// padding lines up regardless of the active theme. Negative widths
// left-justify; content wider than the target is written unpadded.
func pad(out io.Writer, s string, invisible, align int) error {
	if align == 0 {
		_, err := io.WriteString(out, s)
		return err
	}
	width := align
	left := false
	if width < 0 {
		width = -width
		left = true
	}
	visible := utf8.RuneCountInString(s) - invisible
	if visible >= width {
		_, err := io.WriteString(out, s)
		return err
	}
	fill := strings.Repeat(" ", width-visible)
	if left {
		if _, err := io.WriteString(out, s); err != nil {
			return err
		}
		_, err := io.WriteString(out, fill)
		return err
	}
	if _, err := io.WriteString(out, fill); err != nil {
		return err
	}
	_, err := io.WriteString(out, s)
	return err
}
