package template

import (
	"strings"

	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

// monikers holds the fixed-width level abbreviations, indexed by width-1.
var monikers = map[event.Level][5]string{
	event.Verbose:     {"V", "Vb", "Vrb", "Verb", "Verbo"},
	event.Debug:       {"D", "De", "Dbg", "Dbug", "Debug"},
	event.Information: {"I", "In", "Inf", "Info", "Infor"},
	event.Warning:     {"W", "Wn", "Wrn", "Warn", "Warni"},
	event.Error:       {"E", "Er", "Err", "Eror", "Error"},
	event.Fatal:       {"F", "Fa", "Ftl", "Fatl", "Fatal"},
}

// levelMoniker formats a level per the format string: an optional casing
// letter (u upper, l lower, t title) followed by an optional width 1-5.
// Without a width the full level name is used; an empty format means the
// untouched full name.
func levelMoniker(l event.Level, format string) string {
	if format == "" {
		return l.String()
	}
	casing := byte(0)
	rest := format
	switch format[0] {
	case 'u', 'l', 't':
		casing = format[0]
		rest = format[1:]
	}
	text := l.String()
	if w, ok := parseAlign(rest); ok && w >= 1 && w <= 5 {
		text = monikers[l][w-1]
	}
	switch casing {
	case 'u':
		return strings.ToUpper(text)
	case 'l':
		return strings.ToLower(text)
	default:
		return text
	}
}

// levelStyle maps a severity to its theme style category.
func levelStyle(l event.Level) themes.Style {
	if l < event.Verbose || l > event.Fatal {
		l = event.Information
	}
	return themes.LevelVerbose + themes.Style(l)
}
