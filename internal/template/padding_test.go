package template

import (
	"strings"
	"testing"
)

func TestPad(t *testing.T) {
	cases := []struct {
		s         string
		invisible int
		align     int
		want      string
	}{
		{"abc", 0, 0, "abc"},
		{"abc", 0, 5, "  abc"},
		{"abc", 0, -5, "abc  "},
		{"abcdef", 0, 3, "abcdef"}, // wider than target: unpadded
		{"\x1b[1mab\x1b[0m", 8, 4, "  \x1b[1mab\x1b[0m"},
		{"héllo", 0, 6, " héllo"}, // runes, not bytes
	}
	for _, c := range cases {
		var sb strings.Builder
		if err := pad(&sb, c.s, c.invisible, c.align); err != nil {
			t.Fatalf("pad(%q) error: %v", c.s, err)
		}
		if sb.String() != c.want {
			t.Errorf("pad(%q, %d, %d) = %q, want %q", c.s, c.invisible, c.align, sb.String(), c.want)
		}
	}
}
