package template

import (
	"testing"

	"github.com/sungam3r/termsink/pkg/event"
	"github.com/sungam3r/termsink/pkg/themes"
)

func TestLevelMoniker(t *testing.T) {
	cases := []struct {
		level  event.Level
		format string
		want   string
	}{
		{event.Information, "", "Information"},
		{event.Information, "u3", "INF"},
		{event.Information, "l3", "inf"},
		{event.Information, "t3", "Inf"},
		{event.Information, "3", "Inf"},
		{event.Warning, "u3", "WRN"},
		{event.Error, "u", "ERROR"},
		{event.Debug, "l", "debug"},
		{event.Verbose, "1", "V"},
		{event.Fatal, "u5", "FATAL"},
		{event.Fatal, "5", "Fatal"},
		{event.Error, "u9", "ERROR"}, // width out of range: full name
	}
	for _, c := range cases {
		if got := levelMoniker(c.level, c.format); got != c.want {
			t.Errorf("levelMoniker(%v, %q) = %q, want %q", c.level, c.format, got, c.want)
		}
	}
}

func TestLevelStyle(t *testing.T) {
	if got := levelStyle(event.Verbose); got != themes.LevelVerbose {
		t.Errorf("levelStyle(Verbose) = %v, want LevelVerbose", got)
	}
	if got := levelStyle(event.Fatal); got != themes.LevelFatal {
		t.Errorf("levelStyle(Fatal) = %v, want LevelFatal", got)
	}
	if got := levelStyle(event.Level(42)); got != themes.LevelInformation {
		t.Errorf("levelStyle(out of range) = %v, want LevelInformation", got)
	}
}
