package lox

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindText
	KindCallable
	KindInstance
	KindClass
)

// Value is the runtime representation of any datum in the language: a
// closed tagged union over numbers, text, booleans, nil, and the three
// reference kinds (callable, instance, class). A Value holds exactly one
// variant at a time.
type Value struct {
	kind ValueKind
	data any
}

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindCallable:
		return "callable"
	case KindInstance:
		return "instance"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}
