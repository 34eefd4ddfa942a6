// Package decode turns NDJSON log records into events. Parsing is
// token-driven so that object member order survives into the value model;
// a generic map would shuffle it.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sungam3r/termsink/pkg/event"
)

// Record parses one log line into an event. JSON object lines map their
// well-known fields (time/ts/timestamp, level/lvl/severity, msg/message,
// error/err) onto the event; everything else becomes a property. Non-JSON
// lines pass through as plain Information messages. Returns nil for blank
// lines.
func Record(line string) *event.Event {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, "{") {
		return plainEvent(line)
	}
	e, err := parseRecord(line)
	if err != nil {
		// Malformed JSON still deserves to be seen.
		return plainEvent(line)
	}
	return e
}

func plainEvent(line string) *event.Event {
	return &event.Event{
		Timestamp: time.Now(),
		Level:     event.Information,
		Template:  EscapeBraces(line),
	}
}

// EscapeBraces doubles braces so literal text survives message template
// parsing untouched.
func EscapeBraces(s string) string {
	s = strings.ReplaceAll(s, "{", "{{")
	return strings.ReplaceAll(s, "}", "}}")
}

func parseRecord(line string) (*event.Event, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("decode: record is not an object")
	}

	e := &event.Event{
		Timestamp:  time.Now(),
		Level:      event.Information,
		Properties: make(map[string]event.Value),
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode: non-string key %v", keyTok)
		}
		v, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		assignField(e, key, v)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return e, nil
}

// assignField routes well-known record fields onto the event and stashes
// the rest as properties.
func assignField(e *event.Event, key string, v event.Value) {
	sc, isScalar := v.(event.Scalar)
	switch strings.ToLower(key) {
	case "time", "ts", "timestamp":
		if isScalar {
			if ts, ok := parseTimestamp(sc); ok {
				e.Timestamp = ts
				return
			}
		}
	case "level", "lvl", "severity":
		if s, ok := scalarString(sc, isScalar); ok {
			e.Level = event.ParseLevel(s)
			return
		}
	case "msg", "message":
		if s, ok := scalarString(sc, isScalar); ok {
			e.Template = EscapeBraces(s)
			return
		}
	case "error", "err":
		if s, ok := scalarString(sc, isScalar); ok && s != "" {
			e.Err = errors.New(s)
			return
		}
	}
	e.Properties[key] = v
}

func scalarString(sc event.Scalar, isScalar bool) (string, bool) {
	if !isScalar {
		return "", false
	}
	s, ok := sc.Val.(string)
	return s, ok
}

// parseTimestamp accepts RFC 3339 strings and numeric epochs (seconds,
// or milliseconds for values too large to be seconds).
func parseTimestamp(sc event.Scalar) (time.Time, bool) {
	switch v := sc.Val.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts, true
			}
		}
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		if f > 1e12 { // epoch milliseconds
			return time.UnixMilli(int64(f)), true
		}
		sec := int64(f)
		nsec := int64((f - float64(sec)) * 1e9)
		return time.Unix(sec, nsec), true
	}
	return time.Time{}, false
}

// readValue reads the next complete JSON value from the decoder into the
// event value model. Objects become dictionaries so member order is kept.
func readValue(dec *json.Decoder) (event.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFrom(dec, tok)
}

func valueFrom(dec *json.Decoder, tok json.Token) (event.Value, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		default:
			return nil, fmt.Errorf("decode: unexpected delimiter %v", v)
		}
	case string:
		return event.Str(v), nil
	case json.Number:
		return event.Scalar{Val: v}, nil
	case bool:
		return event.Bool(v), nil
	case nil:
		return event.Null(), nil
	default:
		return nil, fmt.Errorf("decode: unexpected token %v", tok)
	}
}

func readObject(dec *json.Decoder) (event.Value, error) {
	var d event.Dictionary
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode: non-string key %v", keyTok)
		}
		v, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		d.Entries = append(d.Entries, event.Entry{Key: event.Str(key), Value: v})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return d, nil
}

func readArray(dec *json.Decoder) (event.Value, error) {
	var seq event.Sequence
	for dec.More() {
		v, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		seq.Elements = append(seq.Elements, v)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return seq, nil
}
