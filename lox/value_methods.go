package lox

import "fmt"

// String renders the value the way print shows it: numbers with default
// formatting, text verbatim, the reference kinds as opaque placeholders.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return fmt.Sprintf("%g", v.data.(float64))
	case KindText:
		return v.data.(string)
	case KindCallable:
		return "<fn>"
	case KindInstance:
		return "<instance>"
	default:
		return "<unknown>"
	}
}

// Truthy reports the value's meaning in a conditional: only nil and
// boolean false are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool()
	default:
		return true
	}
}

// Equal compares structurally for numbers, text, and booleans; nil equals
// nil. The reference kinds never compare equal, not even to themselves.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindNumber:
		return v.data.(float64) == other.data.(float64)
	case KindText:
		return v.data.(string) == other.data.(string)
	default:
		return false
	}
}
