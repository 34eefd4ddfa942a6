package format

import (
	"io"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// appendQuoted appends s to buf as a double-quoted JSON string, escaping
// quotes, backslashes, and control characters. Forward slashes are never
// escaped.
func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		default:
			if r < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[r>>4], hexDigits[r&0xf])
			} else {
				buf = utf8.AppendRune(buf, r)
			}
		}
	}
	return append(buf, '"')
}

// writeQuoted writes s to out as a double-quoted, escaped JSON string.
func writeQuoted(out io.Writer, s string) error {
	buf := appendQuoted(make([]byte, 0, len(s)+2), s)
	_, err := out.Write(buf)
	return err
}
