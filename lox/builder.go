package lox

import "fmt"

// Construction entry points returning ready-to-use Values.

func NewFunctionValue(arity int, body Body) Value {
	return NewCallable(NewFunction(arity, body))
}

func NewNativeValue(name string, arity int, fn Body) Value {
	return NewCallable(NewNative(name, arity, fn))
}

// ClassBuilder assembles a class method by method. Method arities count
// the receiver slot, so a one-argument initializer declares arity 2.
type ClassBuilder struct {
	name       string
	superclass *Class
	methods    map[string]Callable
}

func BuildClass(name string) *ClassBuilder {
	return &ClassBuilder{name: name, methods: make(map[string]Callable)}
}

func (b *ClassBuilder) Extends(superclass *Class) *ClassBuilder {
	b.superclass = superclass
	return b
}

func (b *ClassBuilder) Method(name string, arity int, body Body) *ClassBuilder {
	b.methods[name] = NewFunction(arity, body)
	return b
}

func (b *ClassBuilder) Init(arity int, body Body) *ClassBuilder {
	return b.Method(initMethod, arity, body)
}

func (b *ClassBuilder) Build() *Class {
	return NewClassObject(b.name, b.superclass, b.methods)
}

func (b *ClassBuilder) Value() Value {
	return NewClass(b.Build())
}

// Self extracts the receiver from a method's argument list. Method bodies
// built through this package treat argument 0 as the receiver.
func Self(args []Value) (*Instance, error) {
	if len(args) == 0 || args[0].Kind() != KindInstance {
		return nil, newTypeError("Method receiver must be an instance.")
	}
	return args[0].Instance(), nil
}

// CheckArity is for native bodies that want the same enforcement user
// functions get for free.
func CheckArity(args []Value, n int) error {
	if len(args) != n {
		return newArityError(fmt.Sprintf("Expected %d arguments.", n))
	}
	return nil
}

// CallMethod looks a method up on the instance, checks the result is
// invokable, and calls it with the given caller-visible arguments.
func CallMethod(inst *Instance, name string, args []Value) (Value, error) {
	member, err := inst.Get(name)
	if err != nil {
		return NewNil(), err
	}
	callee, err := AsCallable(member)
	if err != nil {
		return NewNil(), err
	}
	return callee.Call(args)
}
