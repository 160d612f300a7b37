package scalar

import (
	"encoding/json"

	"github.com/TinyChain-Inc/tc-ir/id"
)

// ValueKind discriminates the four leaf value types.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueNumberKind
	ValueStringKind
	ValueLinkKind
)

func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "none"
	case ValueNumberKind:
		return "number"
	case ValueStringKind:
		return "string"
	case ValueLinkKind:
		return "link"
	default:
		return "unknown"
	}
}

// Value is a leaf Scalar: null, a number, a string, or a link. Numbers are
// kept in their original decimal text form (json.Number) so that
// round-tripping never perturbs digits, and booleans are folded into
// numbers (1 or 0), matching the v1 dialect's "a boolean is a number-shaped
// value" convention.
type Value struct {
	kind   ValueKind
	number json.Number
	str    string
	link   id.Link
}

// NoneValue is the null value.
func NoneValue() Value { return Value{kind: ValueNone} }

// BoolValue folds a boolean into its number-shaped wire representation.
func BoolValue(b bool) Value {
	if b {
		return NumberValue(json.Number("1"))
	}
	return NumberValue(json.Number("0"))
}

// NumberValue wraps a decimal numeric literal.
func NumberValue(n json.Number) Value { return Value{kind: ValueNumberKind, number: n} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: ValueStringKind, str: s} }

// LinkValue wraps a Link.
func LinkValue(l id.Link) Value { return Value{kind: ValueLinkKind, link: l} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Number() (json.Number, bool) {
	if v.kind != ValueNumberKind {
		return "", false
	}
	return v.number, true
}

func (v Value) Str() (string, bool) {
	if v.kind != ValueStringKind {
		return "", false
	}
	return v.str, true
}

func (v Value) Link() (id.Link, bool) {
	if v.kind != ValueLinkKind {
		return "", false
	}
	return v.link, true
}

// Equal compares two Values structurally.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValueNone:
		return true
	case ValueNumberKind:
		return v.number == other.number
	case ValueStringKind:
		return v.str == other.str
	case ValueLinkKind:
		return v.link == other.link
	default:
		return false
	}
}
