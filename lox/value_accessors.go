package lox

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Number() float64 {
	if v.kind == KindNumber {
		return v.data.(float64)
	}
	return 0
}

func (v Value) Text() string {
	if v.kind == KindText {
		return v.data.(string)
	}
	return ""
}

func (v Value) Callable() Callable {
	if v.kind != KindCallable {
		return nil
	}
	return v.data.(Callable)
}

func (v Value) Instance() *Instance {
	if v.kind != KindInstance {
		return nil
	}
	return v.data.(*Instance)
}

func (v Value) Class() *Class {
	if v.kind != KindClass {
		return nil
	}
	return v.data.(*Class)
}

// AsNumber is the checked form of Number: the operand must already hold
// the number variant.
func (v Value) AsNumber() (float64, error) {
	if v.kind != KindNumber {
		return 0, newTypeError("Operand must be a number.")
	}
	return v.data.(float64), nil
}

func (v Value) AsString() (string, error) {
	if v.kind != KindText {
		return "", newTypeError("Operand must be a string.")
	}
	return v.data.(string), nil
}

func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, newTypeError("Operand must be a boolean.")
	}
	return v.data.(bool), nil
}
