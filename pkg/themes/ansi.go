package themes

import (
	"strings"

	"github.com/muesli/termenv"
)

// ANSI is a theme backed by SGR escape sequences. The zero value styles
// nothing; use New or one of the built-in constructors.
type ANSI struct {
	begin map[Style]string
}

// Codes returns the begin sequence for s and the shared reset sequence.
// Categories without a configured sequence yield empty codes on both sides.
func (t *ANSI) Codes(s Style) (string, string) {
	b := t.begin[s]
	if b == "" {
		return "", ""
	}
	return b, termenv.CSI + termenv.ResetSeq + "m"
}

// StyleDef describes how one style category is rendered. Colors accept
// anything the active profile understands: "#rrggbb" hex or "0".."255"
// ANSI palette indices. Higher-fidelity colors are downsampled to the
// profile's nearest match.
type StyleDef struct {
	Foreground string
	Background string
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
}

func (d StyleDef) sequence(p termenv.Profile) string {
	var attrs []string
	if d.Bold {
		attrs = append(attrs, termenv.BoldSeq)
	}
	if d.Faint {
		attrs = append(attrs, termenv.FaintSeq)
	}
	if d.Italic {
		attrs = append(attrs, termenv.ItalicSeq)
	}
	if d.Underline {
		attrs = append(attrs, termenv.UnderlineSeq)
	}
	if d.Foreground != "" {
		if c := p.Color(d.Foreground); c != nil {
			if seq := c.Sequence(false); seq != "" {
				attrs = append(attrs, seq)
			}
		}
	}
	if d.Background != "" {
		if c := p.Color(d.Background); c != nil {
			if seq := c.Sequence(true); seq != "" {
				attrs = append(attrs, seq)
			}
		}
	}
	if len(attrs) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(attrs, ";") + "m"
}

// New builds an ANSI theme from per-category style definitions, resolving
// colors against the given profile.
func New(p termenv.Profile, defs map[Style]StyleDef) *ANSI {
	begin := make(map[Style]string, len(defs))
	for s, d := range defs {
		if seq := d.sequence(p); seq != "" {
			begin[s] = seq
		}
	}
	return &ANSI{begin: begin}
}

// Literate is the default theme: readable 256-color styling that keeps
// punctuation quiet and literals distinct.
func Literate(p termenv.Profile) *ANSI {
	return New(p, map[Style]StyleDef{
		Text:             {Foreground: "15"},
		SecondaryText:    {Foreground: "7"},
		TertiaryText:     {Foreground: "8"},
		Invalid:          {Foreground: "11"},
		Null:             {Foreground: "27"},
		Name:             {Foreground: "7"},
		String:           {Foreground: "45"},
		Number:           {Foreground: "200"},
		Boolean:          {Foreground: "27"},
		LevelVerbose:     {Foreground: "7"},
		LevelDebug:       {Foreground: "7"},
		LevelInformation: {Foreground: "15", Bold: true},
		LevelWarning:     {Foreground: "229"},
		LevelError:       {Foreground: "197", Background: "238"},
		LevelFatal:       {Foreground: "197", Background: "238", Bold: true},
	})
}

// Code resembles editor syntax highlighting on a dark background.
func Code(p termenv.Profile) *ANSI {
	return New(p, map[Style]StyleDef{
		Text:             {Foreground: "253"},
		SecondaryText:    {Foreground: "246"},
		TertiaryText:     {Foreground: "242"},
		Invalid:          {Foreground: "220", Background: "88"},
		Null:             {Foreground: "38"},
		Name:             {Foreground: "81"},
		String:           {Foreground: "216"},
		Number:           {Foreground: "151"},
		Boolean:          {Foreground: "38"},
		LevelVerbose:     {Foreground: "242"},
		LevelDebug:       {Foreground: "246"},
		LevelInformation: {Foreground: "15"},
		LevelWarning:     {Foreground: "11"},
		LevelError:       {Foreground: "15", Background: "196"},
		LevelFatal:       {Foreground: "15", Background: "196", Bold: true},
	})
}

// Grayscale styles output using brightness only.
func Grayscale(p termenv.Profile) *ANSI {
	return New(p, map[Style]StyleDef{
		Text:             {Foreground: "253"},
		SecondaryText:    {Foreground: "246"},
		TertiaryText:     {Foreground: "242"},
		Invalid:          {Foreground: "255", Background: "238"},
		Null:             {Foreground: "255", Bold: true},
		Name:             {Foreground: "246"},
		String:           {Foreground: "255"},
		Number:           {Foreground: "255", Bold: true},
		Boolean:          {Foreground: "255", Bold: true},
		LevelVerbose:     {Foreground: "242"},
		LevelDebug:       {Foreground: "246"},
		LevelInformation: {Foreground: "253"},
		LevelWarning:     {Foreground: "253", Bold: true},
		LevelError:       {Foreground: "255", Background: "238", Bold: true},
		LevelFatal:       {Foreground: "255", Background: "238", Bold: true, Underline: true},
	})
}

// Sixteen uses only the basic 16-color palette, for terminals without
// 256-color support.
func Sixteen(p termenv.Profile) *ANSI {
	return New(p, map[Style]StyleDef{
		Text:             {},
		SecondaryText:    {},
		TertiaryText:     {Faint: true},
		Invalid:          {Foreground: "3", Bold: true},
		Null:             {Foreground: "4"},
		Name:             {Faint: true},
		String:           {Foreground: "6"},
		Number:           {Foreground: "5"},
		Boolean:          {Foreground: "4"},
		LevelVerbose:     {Faint: true},
		LevelDebug:       {Faint: true},
		LevelInformation: {},
		LevelWarning:     {Foreground: "3"},
		LevelError:       {Foreground: "1", Bold: true},
		LevelFatal:       {Foreground: "1", Bold: true, Underline: true},
	})
}

var builtin = map[string]func(termenv.Profile) *ANSI{
	"literate":  Literate,
	"code":      Code,
	"grayscale": Grayscale,
	"sixteen":   Sixteen,
}

// Named returns a built-in theme by name ("literate", "code", "grayscale",
// "sixteen", "none"), or nil when the name is unknown.
func Named(name string, p termenv.Profile) Theme {
	if name == "none" {
		return None
	}
	if ctor, ok := builtin[name]; ok {
		return ctor(p)
	}
	return nil
}
