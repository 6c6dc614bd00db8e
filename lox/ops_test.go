package lox

import "testing"

func TestArithmetic(t *testing.T) {
	cases := []struct {
		name string
		op   func(Value, Value) (Value, error)
		a, b float64
		want float64
	}{
		{"add", Add, 2, 3, 5},
		{"subtract", Subtract, 2, 3, -1},
		{"multiply", Multiply, 2, 3, 6},
		{"divide", Divide, 3, 2, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(NewNumber(tc.a), NewNumber(tc.b))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(NewNumber(tc.want)) {
				t.Fatalf("got %v, want %g", got, tc.want)
			}
		})
	}
}

func TestAddConcatenation(t *testing.T) {
	got, err := Add(NewText("foo"), NewText("bar"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(NewText("foobar")) {
		t.Fatalf("Add texts = %v", got)
	}
}

func TestAddMixedOperandsFail(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
	}{
		{"text number", NewText("1"), NewNumber(1)},
		{"number text", NewNumber(1), NewText("1")},
		{"nil number", NewNil(), NewNumber(1)},
		{"bool bool", NewBool(true), NewBool(true)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Add(tc.a, tc.b); !IsKind(err, TypeError) {
				t.Fatalf("want TypeError, got %v", err)
			}
		})
	}
}

func TestNumericOnlyOperators(t *testing.T) {
	ops := map[string]func(Value, Value) (Value, error){
		"subtract": Subtract,
		"multiply": Multiply,
		"divide":   Divide,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if _, err := op(NewText("a"), NewText("b")); !IsKind(err, TypeError) {
				t.Fatalf("want TypeError, got %v", err)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, a := range []float64{0, 1, -3.5} {
		if _, err := Divide(NewNumber(a), NewNumber(0)); !IsKind(err, ArithmeticError) {
			t.Fatalf("Divide(%g, 0): want ArithmeticError, got %v", a, err)
		}
	}
}

func TestNegate(t *testing.T) {
	got, err := Negate(NewNumber(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(NewNumber(-2)) {
		t.Fatalf("Negate = %v", got)
	}
	if _, err := Negate(NewText("2")); !IsKind(err, TypeError) {
		t.Fatalf("Negate on text: want TypeError, got %v", err)
	}
}

func TestNot(t *testing.T) {
	if got := Not(NewNil()); !got.Bool() {
		t.Fatalf("Not(nil) = %v", got)
	}
	if got := Not(NewNumber(0)); got.Bool() {
		t.Fatalf("Not(0) = %v, zero is truthy", got)
	}
}

func TestComparisons(t *testing.T) {
	cases := []struct {
		name string
		op   func(Value, Value) (Value, error)
		a, b float64
		want bool
	}{
		{"greater", Greater, 2, 1, true},
		{"greater equal args", Greater, 2, 2, false},
		{"greaterEqual", GreaterEqual, 2, 2, true},
		{"less", Less, 1, 2, true},
		{"lessEqual", LessEqual, 3, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(NewNumber(tc.a), NewNumber(tc.b))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Bool() != tc.want {
				t.Fatalf("got %v, want %v", got.Bool(), tc.want)
			}
		})
	}

	if _, err := Less(NewText("a"), NewText("b")); !IsKind(err, TypeError) {
		t.Fatalf("Less on text: want TypeError, got %v", err)
	}
	if _, err := Greater(NewNumber(1), NewNil()); !IsKind(err, TypeError) {
		t.Fatalf("Greater with nil: want TypeError, got %v", err)
	}
}
