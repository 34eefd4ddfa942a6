package template

import (
	"reflect"
	"testing"
)

func TestParseTextOnly(t *testing.T) {
	got := parse("plain text")
	want := []token{{text: "plain text"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parse = %+v, want %+v", got, want)
	}
}

func TestParseEscapedBraces(t *testing.T) {
	got := parse("{{not a token}}")
	want := []token{{text: "{not a token}"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parse = %+v, want %+v", got, want)
	}
}

func TestParsePropertyToken(t *testing.T) {
	got := parse("x={Count}!")
	want := []token{
		{text: "x="},
		{name: "Count", raw: "{Count}"},
		{text: "!"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parse = %+v, want %+v", got, want)
	}
}

func TestParseAlignAndFormat(t *testing.T) {
	got := parse("{Level,-5:u3}")
	want := []token{{name: "Level", align: -5, format: "u3", raw: "{Level,-5:u3}"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parse = %+v, want %+v", got, want)
	}
}

func TestParseFormatKeepsColons(t *testing.T) {
	// Time layouts contain colons; only the first splits name from format.
	got := parse("{Timestamp:15:04:05}")
	want := []token{{name: "Timestamp", format: "15:04:05", raw: "{Timestamp:15:04:05}"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parse = %+v, want %+v", got, want)
	}
}

func TestParseMalformedStaysLiteral(t *testing.T) {
	for _, tpl := range []string{"{not valid}", "{}", "{a,b}", "{x y}"} {
		got := parse(tpl)
		if len(got) != 1 || got[0].text != tpl {
			t.Errorf("parse(%q) = %+v, want literal text", tpl, got)
		}
	}
}

func TestParseUnclosedBrace(t *testing.T) {
	got := parse("oops {Count")
	want := []token{{text: "oops {Count"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parse = %+v, want %+v", got, want)
	}
}
