package lox

import "fmt"

const initMethod = "init"

// Class is immutable after construction: name, superclass, and method
// table are fixed. The superclass reference is carried but not consulted
// during method lookup; see DESIGN.md.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]Callable
}

func NewClassObject(name string, superclass *Class, methods map[string]Callable) *Class {
	if methods == nil {
		methods = make(map[string]Callable)
	}
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// Arity reports the init method's declared arity, receiver slot included.
// Callers pass only the user-visible constructor arguments; the receiver
// is injected by Call.
func (c *Class) Arity() int {
	if init, ok := c.Methods[initMethod]; ok {
		return init.Arity()
	}
	return 0
}

// Call runs the constructor protocol: allocate the instance, bind init to
// it when one exists and invoke the binding with the caller's args, then
// return the instance. Init's result is discarded.
func (c *Class) Call(args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.Methods[initMethod]; ok {
		if _, err := Bind(init, instance).Call(args); err != nil {
			return NewNil(), err
		}
	}
	return NewInstance(instance), nil
}

// Instance holds a read-only reference to its class and a lazily grown
// field table.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// Get resolves a property: fields first, then the class's own method
// table. A method hit materializes a fresh BoundMethod on every lookup;
// there is no cache.
func (inst *Instance) Get(name string) (Value, error) {
	if val, ok := inst.Fields[name]; ok {
		return val, nil
	}
	if method, ok := inst.Class.Methods[name]; ok {
		return NewCallable(Bind(method, inst)), nil
	}
	return NewNil(), newPropertyError(fmt.Sprintf("Undefined property '%s'.", name))
}

// Set inserts or overwrites unconditionally. Fields are untyped and
// shadow methods of the same name.
func (inst *Instance) Set(name string, value Value) {
	inst.Fields[name] = value
}
