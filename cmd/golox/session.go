package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/loxlang/golox/lox"
)

// Session owns a workbench's state: a variable table, the registry of
// host-defined classes available to `new`, and the writer `print` targets.
type Session struct {
	vars    map[string]lox.Value
	classes map[string]*lox.Class
	out     io.Writer
}

func NewSession(out io.Writer) *Session {
	s := &Session{
		vars:    make(map[string]lox.Value),
		classes: make(map[string]*lox.Class),
		out:     out,
	}
	s.registerNatives()
	s.registerClasses()
	return s
}

func (s *Session) registerNatives() {
	s.vars["clock"] = lox.NewNativeValue("clock", 0, func(args []lox.Value) (lox.Value, error) {
		return lox.NewNumber(float64(time.Now().UnixNano()) / 1e9), nil
	})
}

// RegisterClass makes a class constructible by name and re-attachable
// from snapshots.
func (s *Session) RegisterClass(cls *lox.Class) {
	s.classes[cls.Name] = cls
	s.vars[cls.Name] = lox.NewClass(cls)
}

func (s *Session) registerClasses() {
	s.RegisterClass(pointClass())
	s.RegisterClass(greeterClass())
	s.RegisterClass(counterClass())
}

// pointClass: init(this, x, y), length(this), moveBy(this, dx, dy).
func pointClass() *lox.Class {
	return lox.BuildClass("Point").
		Init(3, func(args []lox.Value) (lox.Value, error) {
			self, err := lox.Self(args)
			if err != nil {
				return lox.NewNil(), err
			}
			if _, err := args[1].AsNumber(); err != nil {
				return lox.NewNil(), err
			}
			if _, err := args[2].AsNumber(); err != nil {
				return lox.NewNil(), err
			}
			self.Set("x", args[1])
			self.Set("y", args[2])
			return lox.NewNil(), nil
		}).
		Method("length", 1, func(args []lox.Value) (lox.Value, error) {
			self, err := lox.Self(args)
			if err != nil {
				return lox.NewNil(), err
			}
			x, y, err := pointCoords(self)
			if err != nil {
				return lox.NewNil(), err
			}
			return lox.NewNumber(math.Hypot(x, y)), nil
		}).
		Method("moveBy", 3, func(args []lox.Value) (lox.Value, error) {
			self, err := lox.Self(args)
			if err != nil {
				return lox.NewNil(), err
			}
			for i, field := range []string{"x", "y"} {
				current, err := self.Get(field)
				if err != nil {
					return lox.NewNil(), err
				}
				next, err := lox.Add(current, args[i+1])
				if err != nil {
					return lox.NewNil(), err
				}
				self.Set(field, next)
			}
			return lox.NewNil(), nil
		}).
		Build()
}

func pointCoords(self *lox.Instance) (float64, float64, error) {
	xv, err := self.Get("x")
	if err != nil {
		return 0, 0, err
	}
	yv, err := self.Get("y")
	if err != nil {
		return 0, 0, err
	}
	x, err := xv.AsNumber()
	if err != nil {
		return 0, 0, err
	}
	y, err := yv.AsNumber()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// greeterClass: init(this, name), sayHello(this).
func greeterClass() *lox.Class {
	return lox.BuildClass("Greeter").
		Init(2, func(args []lox.Value) (lox.Value, error) {
			self, err := lox.Self(args)
			if err != nil {
				return lox.NewNil(), err
			}
			if _, err := args[1].AsString(); err != nil {
				return lox.NewNil(), err
			}
			self.Set("name", args[1])
			return lox.NewNil(), nil
		}).
		Method("sayHello", 1, func(args []lox.Value) (lox.Value, error) {
			self, err := lox.Self(args)
			if err != nil {
				return lox.NewNil(), err
			}
			name, err := self.Get("name")
			if err != nil {
				return lox.NewNil(), err
			}
			greeting, err := lox.Add(lox.NewText("Hello, "), name)
			if err != nil {
				return lox.NewNil(), err
			}
			return lox.Add(greeting, lox.NewText("!"))
		}).
		Build()
}

// counterClass: init(this), increment(this), total(this).
func counterClass() *lox.Class {
	return lox.BuildClass("Counter").
		Init(1, func(args []lox.Value) (lox.Value, error) {
			self, err := lox.Self(args)
			if err != nil {
				return lox.NewNil(), err
			}
			self.Set("count", lox.NewNumber(0))
			return lox.NewNil(), nil
		}).
		Method("increment", 1, func(args []lox.Value) (lox.Value, error) {
			self, err := lox.Self(args)
			if err != nil {
				return lox.NewNil(), err
			}
			current, err := self.Get("count")
			if err != nil {
				return lox.NewNil(), err
			}
			next, err := lox.Add(current, lox.NewNumber(1))
			if err != nil {
				return lox.NewNil(), err
			}
			self.Set("count", next)
			return next, nil
		}).
		Method("total", 1, func(args []lox.Value) (lox.Value, error) {
			self, err := lox.Self(args)
			if err != nil {
				return lox.NewNil(), err
			}
			return self.Get("count")
		}).
		Build()
}

// Define stores a value under a name, shadowing any previous binding.
func (s *Session) Define(name string, value lox.Value) {
	s.vars[name] = value
}

func (s *Session) Lookup(name string) (lox.Value, error) {
	if val, ok := s.vars[name]; ok {
		return val, nil
	}
	return lox.NewNil(), fmt.Errorf("undefined variable %q", name)
}

func (s *Session) Reset() {
	s.vars = make(map[string]lox.Value)
	s.classes = make(map[string]*lox.Class)
	s.registerNatives()
	s.registerClasses()
}
