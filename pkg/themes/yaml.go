package themes

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// yamlStyle mirrors one style entry in a theme file.
type yamlStyle struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
}

var stylesByName = func() map[string]Style {
	m := make(map[string]Style, len(styleNames))
	for s, n := range styleNames {
		m[n] = s
	}
	return m
}()

// Parse builds a theme from YAML mapping style category names to style
// definitions:
//
//	Name:   {foreground: "#87d7ff"}
//	String: {foreground: "216"}
//	Number: {foreground: "151", bold: true}
//
// Unknown category names are rejected so typos fail loudly rather than
// silently losing styling.
func Parse(data []byte, p termenv.Profile) (*ANSI, error) {
	var raw map[string]yamlStyle
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("themes: parse theme: %w", err)
	}
	defs := make(map[Style]StyleDef, len(raw))
	for name, ys := range raw {
		s, ok := stylesByName[name]
		if !ok {
			return nil, fmt.Errorf("themes: unknown style category %q", name)
		}
		defs[s] = StyleDef{
			Foreground: ys.Foreground,
			Background: ys.Background,
			Bold:       ys.Bold,
			Faint:      ys.Faint,
			Italic:     ys.Italic,
			Underline:  ys.Underline,
		}
	}
	return New(p, defs), nil
}

// LoadFile reads a YAML theme definition from disk.
func LoadFile(path string, p termenv.Profile) (*ANSI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("themes: read theme file: %w", err)
	}
	return Parse(data, p)
}
