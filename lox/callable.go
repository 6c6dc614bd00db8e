package lox

// Callable is anything invokable with an argument list: native routines,
// user-defined functions, bound methods, and classes.
type Callable interface {
	Arity() int
	Call(args []Value) (Value, error)
}

// Body is the invocable behind a user function or native routine. It
// receives the exact argument list; for methods, argument 0 is the
// receiver by convention.
type Body func(args []Value) (Value, error)

// NativeFunction wraps a host routine. Arity is advisory: Call hands the
// args straight to the routine without counting them.
type NativeFunction struct {
	Name  string
	arity int
	fn    Body
}

func NewNative(name string, arity int, fn Body) *NativeFunction {
	return &NativeFunction{Name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(args []Value) (Value, error) {
	return n.fn(args)
}

// Function is a user-defined function: fixed arity, opaque body. Unlike a
// native, it enforces its arity on every call.
type Function struct {
	arity int
	body  Body
}

func NewFunction(arity int, body Body) *Function {
	return &Function{arity: arity, body: body}
}

func (f *Function) Arity() int { return f.arity }

func (f *Function) Call(args []Value) (Value, error) {
	if len(args) != f.arity {
		return NewNil(), newArityError("Wrong arity.")
	}
	return f.body(args)
}

// BoundMethod closes a method over a receiver. Calling it prepends the
// receiver to the argument list and delegates; the method's declared arity
// already counts the receiver slot, so Arity passes through unchanged.
type BoundMethod struct {
	Method   Callable
	Receiver *Instance
}

func Bind(method Callable, receiver *Instance) *BoundMethod {
	return &BoundMethod{Method: method, Receiver: receiver}
}

func (b *BoundMethod) Arity() int { return b.Method.Arity() }

func (b *BoundMethod) Call(args []Value) (Value, error) {
	bound := make([]Value, 0, len(args)+1)
	bound = append(bound, NewInstance(b.Receiver))
	bound = append(bound, args...)
	return b.Method.Call(bound)
}

// AsCallable resolves a call target: callable-kinded values and classes
// are invokable, everything else is a call error. This is the predicate an
// evaluator applies before dispatching a call expression.
func AsCallable(v Value) (Callable, error) {
	switch v.Kind() {
	case KindCallable:
		return v.Callable(), nil
	case KindClass:
		return v.Class(), nil
	default:
		return nil, newCallError("Can only call functions and classes.")
	}
}
