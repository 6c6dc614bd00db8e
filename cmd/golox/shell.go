package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/loxlang/golox/lox"
)

// The shell is a line-command surface over the runtime, one runtime entry
// point per command. It is not the scripting language: there is no
// nesting, no precedence, no control flow.

const shellHelp = `Commands:
  let NAME EXPR          bind the result of EXPR to NAME
  print EXPR             write EXPR's value to the output
  set VAR FIELD OPERAND  assign an instance field
  vars                   list bound variables
  classes                list registered classes
  save PATH              snapshot variables to PATH
  load PATH              restore variables from PATH
  reset                  drop all bindings
Expressions:
  add|sub|mul|div A B    arithmetic
  eq|neq|gt|gte|lt|lte A B  comparison
  neg|not A              unary
  new CLASS ARGS...      construct an instance
  get VAR FIELD          read a field or bind a method
  call VAR METHOD ARGS.. invoke a method on an instance
  invoke VAR ARGS...     invoke a callable value
Operands are numbers, "text", true, false, nil, or variable names.`

// Execute runs one command line and returns its display output, empty for
// silent commands.
func (s *Session) Execute(line string) (string, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", nil
	}

	switch tokens[0] {
	case "help":
		return shellHelp, nil
	case "vars":
		return s.listVars(), nil
	case "classes":
		return s.listClasses(), nil
	case "reset":
		s.Reset()
		return "Session reset", nil
	case "save":
		if len(tokens) != 2 {
			return "", fmt.Errorf("save: usage: save PATH")
		}
		if err := s.SaveSnapshot(tokens[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Saved %s", tokens[1]), nil
	case "load":
		if len(tokens) != 2 {
			return "", fmt.Errorf("load: usage: load PATH")
		}
		if err := s.LoadSnapshot(tokens[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Loaded %s", tokens[1]), nil
	case "let":
		if len(tokens) < 3 {
			return "", fmt.Errorf("let: usage: let NAME EXPR")
		}
		if !isValidIdentifier(tokens[1]) {
			return "", fmt.Errorf("let: invalid name %q", tokens[1])
		}
		val, err := s.eval(tokens[2:])
		if err != nil {
			return "", err
		}
		s.Define(tokens[1], val)
		return val.String(), nil
	case "print":
		if len(tokens) < 2 {
			return "", fmt.Errorf("print: usage: print EXPR")
		}
		val, err := s.eval(tokens[1:])
		if err != nil {
			return "", err
		}
		lox.Fprint(s.out, val)
		return "", nil
	case "set":
		if len(tokens) != 4 {
			return "", fmt.Errorf("set: usage: set VAR FIELD OPERAND")
		}
		target, err := s.Lookup(tokens[1])
		if err != nil {
			return "", err
		}
		inst := target.Instance()
		if inst == nil {
			return "", fmt.Errorf("set: %q is not an instance", tokens[1])
		}
		val, err := s.operand(tokens[3])
		if err != nil {
			return "", err
		}
		inst.Set(tokens[2], val)
		return val.String(), nil
	default:
		val, err := s.eval(tokens)
		if err != nil {
			return "", err
		}
		return val.String(), nil
	}
}

func (s *Session) eval(tokens []string) (lox.Value, error) {
	binary := map[string]func(lox.Value, lox.Value) (lox.Value, error){
		"add": lox.Add,
		"sub": lox.Subtract,
		"mul": lox.Multiply,
		"div": lox.Divide,
		"gt":  lox.Greater,
		"gte": lox.GreaterEqual,
		"lt":  lox.Less,
		"lte": lox.LessEqual,
	}

	head := tokens[0]
	switch {
	case binary[head] != nil:
		a, b, err := s.twoOperands(head, tokens[1:])
		if err != nil {
			return lox.NewNil(), err
		}
		return binary[head](a, b)
	case head == "eq" || head == "neq":
		a, b, err := s.twoOperands(head, tokens[1:])
		if err != nil {
			return lox.NewNil(), err
		}
		if head == "eq" {
			return lox.EqualValues(a, b), nil
		}
		return lox.NotEqualValues(a, b), nil
	case head == "neg" || head == "not":
		if len(tokens) != 2 {
			return lox.NewNil(), fmt.Errorf("%s: one operand required", head)
		}
		v, err := s.operand(tokens[1])
		if err != nil {
			return lox.NewNil(), err
		}
		if head == "neg" {
			return lox.Negate(v)
		}
		return lox.Not(v), nil
	case head == "new":
		if len(tokens) < 2 {
			return lox.NewNil(), fmt.Errorf("new: usage: new CLASS ARGS...")
		}
		cls, ok := s.classes[tokens[1]]
		if !ok {
			return lox.NewNil(), fmt.Errorf("new: unknown class %q", tokens[1])
		}
		args, err := s.operands(tokens[2:])
		if err != nil {
			return lox.NewNil(), err
		}
		return cls.Call(args)
	case head == "get":
		if len(tokens) != 3 {
			return lox.NewNil(), fmt.Errorf("get: usage: get VAR FIELD")
		}
		target, err := s.Lookup(tokens[1])
		if err != nil {
			return lox.NewNil(), err
		}
		inst := target.Instance()
		if inst == nil {
			return lox.NewNil(), fmt.Errorf("get: %q is not an instance", tokens[1])
		}
		return inst.Get(tokens[2])
	case head == "call":
		if len(tokens) < 3 {
			return lox.NewNil(), fmt.Errorf("call: usage: call VAR METHOD ARGS...")
		}
		target, err := s.Lookup(tokens[1])
		if err != nil {
			return lox.NewNil(), err
		}
		inst := target.Instance()
		if inst == nil {
			return lox.NewNil(), fmt.Errorf("call: %q is not an instance", tokens[1])
		}
		args, err := s.operands(tokens[3:])
		if err != nil {
			return lox.NewNil(), err
		}
		return lox.CallMethod(inst, tokens[2], args)
	case head == "invoke":
		if len(tokens) < 2 {
			return lox.NewNil(), fmt.Errorf("invoke: usage: invoke VAR ARGS...")
		}
		target, err := s.operand(tokens[1])
		if err != nil {
			return lox.NewNil(), err
		}
		callee, err := lox.AsCallable(target)
		if err != nil {
			return lox.NewNil(), err
		}
		args, err := s.operands(tokens[2:])
		if err != nil {
			return lox.NewNil(), err
		}
		return callee.Call(args)
	default:
		if len(tokens) != 1 {
			return lox.NewNil(), fmt.Errorf("unknown command %q", head)
		}
		return s.operand(head)
	}
}

func (s *Session) twoOperands(op string, tokens []string) (lox.Value, lox.Value, error) {
	if len(tokens) != 2 {
		return lox.NewNil(), lox.NewNil(), fmt.Errorf("%s: two operands required", op)
	}
	a, err := s.operand(tokens[0])
	if err != nil {
		return lox.NewNil(), lox.NewNil(), err
	}
	b, err := s.operand(tokens[1])
	if err != nil {
		return lox.NewNil(), lox.NewNil(), err
	}
	return a, b, nil
}

func (s *Session) operands(tokens []string) ([]lox.Value, error) {
	args := make([]lox.Value, len(tokens))
	for i, tok := range tokens {
		val, err := s.operand(tok)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}
	return args, nil
}

// operand resolves a literal or a variable reference.
func (s *Session) operand(token string) (lox.Value, error) {
	switch token {
	case "nil":
		return lox.NewNil(), nil
	case "true":
		return lox.NewBool(true), nil
	case "false":
		return lox.NewBool(false), nil
	}
	if strings.HasPrefix(token, `"`) {
		return lox.NewText(strings.Trim(token, `"`)), nil
	}
	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return lox.NewNumber(n), nil
	}
	return s.Lookup(token)
}

func (s *Session) listVars() string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		val := s.vars[name]
		display := val.String()
		if cls := val.Class(); cls != nil {
			display = fmt.Sprintf("<class %s>", cls.Name)
		}
		fmt.Fprintf(&b, "%s = %s\n", name, display)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Session) listClasses() string {
	names := make([]string, 0, len(s.classes))
	for name := range s.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "\n")
}

// tokenize splits a command line on spaces, keeping double-quoted text
// intact (quotes retained so operand parsing can tell text from names).
func tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			current.WriteRune(r)
		case r == ' ' || r == '\t':
			if inQuote {
				current.WriteRune(r)
			} else if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_') {
				return false
			}
		} else {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_') {
				return false
			}
		}
	}
	return true
}
