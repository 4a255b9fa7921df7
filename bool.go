package church

// Value is anything an encoding may carry or select.
type Value = interface{}

// Bool is a selector: TRUE picks its first argument, FALSE its second.
type Bool func(onTrue, onFalse Value) Value

var (
	// True selects the first of two values.
	True Bool = func(t, _ Value) Value { return t }

	// False selects the second of two values.
	False Bool = func(_, f Value) Value { return f }
)

// If applies the selector s to both branches.
func If(s Bool, then, otherwise Value) Value { return s(then, otherwise) }

// Cond selects one of two thunks with s and calls only that one.
func Cond(s Bool, then, otherwise func() Value) Value {
	return s(then, otherwise).(func() Value)()
}

// always returns a thunk of an already computed value.
func always(v Value) func() Value { return func() Value { return v } }

// Not swaps the branches of s.
func Not(s Bool) Bool { return s(False, True).(Bool) }

// Or is TRUE if a is, otherwise whatever b is.
func Or(a, b Bool) Bool { return a(True, b).(Bool) }

// And is b if a is TRUE, otherwise FALSE.
func And(a, b Bool) Bool { return a(b, False).(Bool) }

// Xor flips b when a is TRUE, and passes it through otherwise.
func Xor(a, b Bool) Bool { return a(Not(b), b).(Bool) }

// FromBool lifts a host boolean into the encoding.
func FromBool(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Truth lowers s into a host boolean by letting it choose.
func (s Bool) Truth() bool { return s(true, false).(bool) }

func (s Bool) String() string { return s("TRUE", "FALSE").(string) }
