package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loxlang/golox/lox"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	return NewSession(out), out
}

func mustExecute(t *testing.T, s *Session, line string) string {
	t.Helper()
	output, err := s.Execute(line)
	if err != nil {
		t.Fatalf("%q: %v", line, err)
	}
	return output
}

func TestLetAndArithmetic(t *testing.T) {
	s, _ := newTestSession(t)

	if got := mustExecute(t, s, "let x 2"); got != "2" {
		t.Fatalf("let x = %q", got)
	}
	if got := mustExecute(t, s, "let y add x 3"); got != "5" {
		t.Fatalf("add = %q", got)
	}
	if got := mustExecute(t, s, "div y 2"); got != "2.5" {
		t.Fatalf("div = %q", got)
	}
	if got := mustExecute(t, s, "gt y x"); got != "true" {
		t.Fatalf("gt = %q", got)
	}
	if got := mustExecute(t, s, `eq x "2"`); got != "false" {
		t.Fatalf("eq across kinds = %q", got)
	}
}

func TestDivisionByZeroSurfaces(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.Execute("div 1 0")
	if err == nil || !strings.Contains(err.Error(), "Division by zero.") {
		t.Fatalf("want division error, got %v", err)
	}
	if !lox.IsKind(err, lox.ArithmeticError) {
		t.Fatalf("want ArithmeticError, got %v", err)
	}
}

func TestPrintWritesToOutput(t *testing.T) {
	s, out := newTestSession(t)
	if got := mustExecute(t, s, `print "hello"`); got != "" {
		t.Fatalf("print returned %q", got)
	}
	if out.String() != "hello\n" {
		t.Fatalf("output = %q", out.String())
	}

	out.Reset()
	mustExecute(t, s, "print nil")
	if out.String() != "nil\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestQuotedTextKeepsSpaces(t *testing.T) {
	s, out := newTestSession(t)
	mustExecute(t, s, `let msg "hello world"`)
	mustExecute(t, s, "print msg")
	if out.String() != "hello world\n" {
		t.Fatalf("output = %q", out.String())
	}

	if _, err := s.Execute(`let bad "unterminated`); err == nil {
		t.Fatalf("expected unterminated quote error")
	}
}

func TestConstructAndCallPoint(t *testing.T) {
	s, _ := newTestSession(t)

	mustExecute(t, s, "let p new Point 3 4")
	if got := mustExecute(t, s, "call p length"); got != "5" {
		t.Fatalf("length = %q", got)
	}

	mustExecute(t, s, "call p moveBy 1 2")
	if got := mustExecute(t, s, "get p x"); got != "4" {
		t.Fatalf("x after moveBy = %q", got)
	}

	mustExecute(t, s, "set p x 0")
	mustExecute(t, s, "set p y 2")
	if got := mustExecute(t, s, "call p length"); got != "2" {
		t.Fatalf("length after set = %q", got)
	}
}

func TestGreeterSaysHello(t *testing.T) {
	s, _ := newTestSession(t)
	mustExecute(t, s, `let g new Greeter "Ada"`)
	if got := mustExecute(t, s, "call g sayHello"); got != "Hello, Ada!" {
		t.Fatalf("sayHello = %q", got)
	}
	// A second lookup binds a fresh method with identical behavior.
	if got := mustExecute(t, s, "call g sayHello"); got != "Hello, Ada!" {
		t.Fatalf("repeat sayHello = %q", got)
	}
}

func TestConstructorArityErrors(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.Execute("new Point 1")
	if !lox.IsKind(err, lox.ArityError) {
		t.Fatalf("want ArityError, got %v", err)
	}
}

func TestUndefinedPropertySurfaces(t *testing.T) {
	s, _ := newTestSession(t)
	mustExecute(t, s, "let c new Counter")
	_, err := s.Execute("get c missing")
	if !lox.IsKind(err, lox.PropertyError) {
		t.Fatalf("want PropertyError, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("message %q does not name the property", err.Error())
	}
}

func TestInvokeNative(t *testing.T) {
	s, _ := newTestSession(t)
	got := mustExecute(t, s, "invoke clock")
	if got == "" {
		t.Fatalf("clock returned nothing")
	}
	val, err := s.Lookup("clock")
	if err != nil {
		t.Fatalf("clock missing: %v", err)
	}
	if val.Kind() != lox.KindCallable {
		t.Fatalf("clock kind = %v", val.Kind())
	}
}

func TestInvokeNonCallable(t *testing.T) {
	s, _ := newTestSession(t)
	mustExecute(t, s, "let n 1")
	_, err := s.Execute("invoke n")
	if !lox.IsKind(err, lox.CallError) {
		t.Fatalf("want CallError, got %v", err)
	}
}

func TestBoundMethodAsValue(t *testing.T) {
	s, _ := newTestSession(t)
	mustExecute(t, s, "let c new Counter")
	mustExecute(t, s, "let bump get c increment")
	for _, want := range []string{"1", "2"} {
		if got := mustExecute(t, s, "invoke bump"); got != want {
			t.Fatalf("invoke bump = %q, want %q", got, want)
		}
	}
}

func TestUnknownsAreErrors(t *testing.T) {
	s, _ := newTestSession(t)
	if _, err := s.Execute("add nope 1"); err == nil {
		t.Fatalf("expected undefined variable error")
	}
	if _, err := s.Execute("new Widget"); err == nil {
		t.Fatalf("expected unknown class error")
	}
	if _, err := s.Execute("frobnicate x y"); err == nil {
		t.Fatalf("expected unknown command error")
	}
}

func TestResetRestoresRegistry(t *testing.T) {
	s, _ := newTestSession(t)
	mustExecute(t, s, "let x 1")
	mustExecute(t, s, "reset")
	if _, err := s.Execute("print x"); err == nil {
		t.Fatalf("x should be gone after reset")
	}
	// Built-in classes and natives come back.
	mustExecute(t, s, "let p new Point 0 0")
	mustExecute(t, s, "invoke clock")
}
