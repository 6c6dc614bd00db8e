package lox

// Add accepts two numbers or two texts; nothing else, not even a
// number/text mix.
func Add(left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindNumber && right.Kind() == KindNumber:
		return NewNumber(left.Number() + right.Number()), nil
	case left.Kind() == KindText && right.Kind() == KindText:
		return NewText(left.Text() + right.Text()), nil
	default:
		return NewNil(), newTypeError("Operands must be two numbers or two strings.")
	}
}

func Subtract(left, right Value) (Value, error) {
	if left.Kind() == KindNumber && right.Kind() == KindNumber {
		return NewNumber(left.Number() - right.Number()), nil
	}
	return NewNil(), newTypeError("Operands must be two numbers or two strings.")
}

func Multiply(left, right Value) (Value, error) {
	if left.Kind() == KindNumber && right.Kind() == KindNumber {
		return NewNumber(left.Number() * right.Number()), nil
	}
	return NewNil(), newTypeError("Operands must be two numbers or two strings.")
}

// Divide rejects a zero divisor before the float division runs, so scripts
// see a hard error instead of an IEEE infinity or NaN.
func Divide(left, right Value) (Value, error) {
	if left.Kind() == KindNumber && right.Kind() == KindNumber {
		if right.Number() == 0 {
			return NewNil(), newArithmeticError("Division by zero.")
		}
		return NewNumber(left.Number() / right.Number()), nil
	}
	return NewNil(), newTypeError("Operands must be two numbers or two strings.")
}

func Negate(v Value) (Value, error) {
	n, err := v.AsNumber()
	if err != nil {
		return NewNil(), err
	}
	return NewNumber(-n), nil
}

// Not never fails: it negates truthiness, which is defined for every kind.
func Not(v Value) Value {
	return NewBool(!v.Truthy())
}

func EqualValues(left, right Value) Value {
	return NewBool(left.Equal(right))
}

func NotEqualValues(left, right Value) Value {
	return NewBool(!left.Equal(right))
}

func compareNumbers(left, right Value, cmp func(a, b float64) bool) (Value, error) {
	a, err := left.AsNumber()
	if err != nil {
		return NewNil(), err
	}
	b, err := right.AsNumber()
	if err != nil {
		return NewNil(), err
	}
	return NewBool(cmp(a, b)), nil
}

func Greater(left, right Value) (Value, error) {
	return compareNumbers(left, right, func(a, b float64) bool { return a > b })
}

func GreaterEqual(left, right Value) (Value, error) {
	return compareNumbers(left, right, func(a, b float64) bool { return a >= b })
}

func Less(left, right Value) (Value, error) {
	return compareNumbers(left, right, func(a, b float64) bool { return a < b })
}

func LessEqual(left, right Value) (Value, error) {
	return compareNumbers(left, right, func(a, b float64) bool { return a <= b })
}
