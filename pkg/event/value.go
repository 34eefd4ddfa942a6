package event

import "encoding/json"

// Value is a structured property value attached to a log event: a scalar,
// a sequence, a structure, or a dictionary. The set of implementations is
// closed; renderers dispatch on the concrete type.
type Value interface {
	isValue()
}

// Char is a single character. Go has no distinct character type (rune is an
// alias of int32), so a named type keeps characters distinguishable from
// 32-bit integers inside a Scalar.
type Char rune

// Scalar holds a single literal value. Supported inner kinds: nil, string,
// bool, Char, any signed/unsigned integer width, json.Number, float32,
// float64, time.Time. Anything else renders via its default text form.
type Scalar struct {
	Val any
}

// Sequence is an ordered list of values.
type Sequence struct {
	Elements []Value
}

// Property is a named member of a Structure.
type Property struct {
	Name  string
	Value Value
}

// Structure is an ordered list of named properties with an optional type
// tag. Property order is preserved exactly as given.
type Structure struct {
	Properties []Property
	TypeTag    string
}

// Entry is a single dictionary entry. Keys are always scalar.
type Entry struct {
	Key   Scalar
	Value Value
}

// Dictionary is an ordered list of key/value entries. Entry order is
// preserved exactly as given; entries are never re-sorted.
type Dictionary struct {
	Entries []Entry
}

func (Scalar) isValue()     {}
func (Sequence) isValue()   {}
func (Structure) isValue()  {}
func (Dictionary) isValue() {}

// Str wraps a string in a Scalar.
func Str(s string) Scalar { return Scalar{Val: s} }

// Int wraps an integer in a Scalar.
func Int(n int64) Scalar { return Scalar{Val: n} }

// Float wraps a 64-bit float in a Scalar.
func Float(f float64) Scalar { return Scalar{Val: f} }

// Bool wraps a boolean in a Scalar.
func Bool(b bool) Scalar { return Scalar{Val: b} }

// Null is the scalar null value.
func Null() Scalar { return Scalar{} }

// Number wraps an exact decimal numeral in a Scalar.
func Number(n string) Scalar { return Scalar{Val: json.Number(n)} }

// Seq builds a Sequence from values.
func Seq(elements ...Value) Sequence { return Sequence{Elements: elements} }
