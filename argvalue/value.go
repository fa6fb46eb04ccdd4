// Package argvalue holds the typed value tree produced by parsing a
// lexed argument: strings, numbers, booleans and heterogeneous nested
// arrays, serialized untagged so the checker daemon sees a plain JSON
// value with no discriminator field: the first JSON shape that fits
// is what a reader sees.
package argvalue

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/haxtibal/i4w-callapi/cliarg"
)

// Value is any node of the parsed argument tree.
type Value interface {
	json.Marshaler
	isValue()
}

// String is a scalar text value. It is never empty; the lexer only
// ever produces non-empty String tokens.
type String string

func (String) isValue() {}

// MarshalJSON encodes the value as a plain JSON string.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// Bool is a $True / $False literal, or an implicit true produced by the
// binder for a valueless switch.
type Bool bool

func (Bool) isValue() {}

// MarshalJSON encodes the value as a plain JSON boolean.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Number wraps cliarg.Number, whose three variants (PosInt/NegInt/Float)
// serialize as plain JSON numbers with no tag.
type Number struct {
	cliarg.Number
}

func (Number) isValue() {}

// MarshalJSON encodes PosInt and NegInt as JSON integers and Float as a
// JSON number, matching the original untagged serde enum.
func (n Number) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case cliarg.PosInt:
		return []byte(strconv.FormatUint(n.U, 10)), nil
	case cliarg.NegInt:
		return []byte(strconv.FormatInt(n.I, 10)), nil
	default:
		return []byte(formatFloat(n.F)), nil
	}
}

// formatFloat renders f with the shortest round-tripping decimal
// representation, then ensures it carries a decimal point or exponent
// so a Float-classified lexeme (e.g. "3.0") never degrades into a bare
// JSON integer literal on the wire.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Array is a heterogeneous, possibly nested sequence of values.
type Array []Value

func (Array) isValue() {}

// MarshalJSON encodes the array as a JSON array, recursing into each
// element's own untagged encoding.
func (a Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Value(a))
}
