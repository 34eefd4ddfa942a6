// Package themes maps semantic style categories to terminal escape codes.
//
// A Theme answers one question: which begin/end codes wrap a span of output
// rendered in a given style category. Either code may be empty — the None
// theme is empty everywhere, which makes it safe for files and pipes.
package themes

// Style is a semantic role a theme maps to concrete escape codes.
type Style int

const (
	Text Style = iota
	SecondaryText
	TertiaryText
	Invalid
	Null
	Name
	String
	Number
	Boolean
	LevelVerbose
	LevelDebug
	LevelInformation
	LevelWarning
	LevelError
	LevelFatal
)

var styleNames = map[Style]string{
	Text:             "Text",
	SecondaryText:    "SecondaryText",
	TertiaryText:     "TertiaryText",
	Invalid:          "Invalid",
	Null:             "Null",
	Name:             "Name",
	String:           "String",
	Number:           "Number",
	Boolean:          "Boolean",
	LevelVerbose:     "LevelVerbose",
	LevelDebug:       "LevelDebug",
	LevelInformation: "LevelInformation",
	LevelWarning:     "LevelWarning",
	LevelError:       "LevelError",
	LevelFatal:       "LevelFatal",
}

func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return "Text"
}

// Theme maps a style category to its begin and end escape codes.
// Implementations must be safe for concurrent use; in practice they are
// immutable after construction.
type Theme interface {
	Codes(s Style) (begin, end string)
}

type noTheme struct{}

func (noTheme) Codes(Style) (string, string) { return "", "" }

// None is the style-free theme: every category maps to empty codes.
var None Theme = noTheme{}
