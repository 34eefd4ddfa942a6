package format

import (
	"io"

	"github.com/sungam3r/termsink/pkg/themes"
)

// styled writes the theme's begin code for s, runs body, and writes the end
// code on every exit path, including when body fails. The combined length of
// both codes is added to *invisible exactly once per acquisition; an empty
// code contributes zero.
func styled(out io.Writer, theme themes.Theme, s themes.Style, invisible *int, body func() error) (err error) {
	begin, end := theme.Codes(s)
	*invisible += len(begin) + len(end)
	if begin != "" {
		if _, werr := io.WriteString(out, begin); werr != nil {
			return werr
		}
	}
	defer func() {
		if end == "" {
			return
		}
		if _, werr := io.WriteString(out, end); werr != nil && err == nil {
			err = werr
		}
	}()
	return body()
}

// StyledText writes s wrapped in the codes for the given style category,
// adding their combined length to *invisible. The end code is written even
// when the content write fails, so styling never leaks unterminated.
func StyledText(out io.Writer, theme themes.Theme, st themes.Style, invisible *int, s string) error {
	return styled(out, theme, st, invisible, func() error {
		_, err := io.WriteString(out, s)
		return err
	})
}

func styledString(out io.Writer, theme themes.Theme, st themes.Style, invisible *int, s string) error {
	return StyledText(out, theme, st, invisible, s)
}

// styledQuoted writes s as a quoted, escaped string in the given style.
func styledQuoted(out io.Writer, theme themes.Theme, st themes.Style, invisible *int, s string) error {
	return styled(out, theme, st, invisible, func() error {
		return writeQuoted(out, s)
	})
}
