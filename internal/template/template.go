// Package template parses and renders output templates and message
// templates: literal text interleaved with {Name}, {Name,align} and
// {Name:format} property tokens.
package template

import "strings"

// token is one parsed element of a template.
type token struct {
	text   string // literal text; empty for property tokens
	name   string // property name; empty for text tokens
	align  int    // visible-width alignment; negative = left-justified
	format string // format string after ':'
	raw    string // original source text of a property token
}

func (t token) isText() bool { return t.name == "" }

// parse splits a template into tokens. Doubled braces escape literal braces;
// malformed tokens are kept as literal text rather than rejected, so a
// template can never fail to parse.
func parse(tpl string) []token {
	var tokens []token
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, token{text: text.String()})
			text.Reset()
		}
	}
	for i := 0; i < len(tpl); {
		c := tpl[i]
		if c == '{' && i+1 < len(tpl) && tpl[i+1] == '{' {
			text.WriteByte('{')
			i += 2
			continue
		}
		if c == '}' && i+1 < len(tpl) && tpl[i+1] == '}' {
			text.WriteByte('}')
			i += 2
			continue
		}
		if c != '{' {
			text.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(tpl[i:], '}')
		if end < 0 {
			// Unclosed brace: literal to end of input.
			text.WriteString(tpl[i:])
			break
		}
		raw := tpl[i : i+end+1]
		tok, ok := parseProperty(raw)
		if !ok {
			text.WriteString(raw)
			i += end + 1
			continue
		}
		flush()
		tokens = append(tokens, tok)
		i += end + 1
	}
	flush()
	return tokens
}

// parseProperty interprets "{Name,align:format}"; any of align and format
// may be absent. Returns ok=false when the body is not a valid token.
func parseProperty(raw string) (token, bool) {
	body := raw[1 : len(raw)-1]
	if body == "" {
		return token{}, false
	}
	var format string
	if colon := strings.IndexByte(body, ':'); colon >= 0 {
		format = body[colon+1:]
		body = body[:colon]
	}
	var align int
	if comma := strings.IndexByte(body, ','); comma >= 0 {
		a, ok := parseAlign(body[comma+1:])
		if !ok {
			return token{}, false
		}
		align = a
		body = body[:comma]
	}
	if !validName(body) {
		return token{}, false
	}
	return token{name: body, align: align, format: format, raw: raw}, true
}

func parseAlign(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
