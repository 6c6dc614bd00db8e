package lox

func NewNil() Value             { return Value{kind: KindNil} }
func NewBool(b bool) Value      { return Value{kind: KindBool, data: b} }
func NewNumber(n float64) Value { return Value{kind: KindNumber, data: n} }
func NewText(s string) Value    { return Value{kind: KindText, data: s} }

func NewCallable(c Callable) Value     { return Value{kind: KindCallable, data: c} }
func NewInstance(inst *Instance) Value { return Value{kind: KindInstance, data: inst} }
func NewClass(cl *Class) Value         { return Value{kind: KindClass, data: cl} }
