package church

// Binary is an operation over two naturals.
type Binary func(a, b Nat) Value

// Recurse unfolds one step of f over a pair of naturals: when either is zero
// the result is FALSE, otherwise it is f applied to both predecessors.
//
// Only operations that descend on both operands in lock step terminate under
// Recurse, and only once one of them reaches zero. There is no depth bound.
func Recurse(f Binary) func(p Pair) Value {
	return func(p Pair) Value {
		a, b := First(p).(Nat), Second(p).(Nat)
		return Cond(Or(IsZero(a), IsZero(b)),
			always(False),
			func() Value { return f(Pred(a), Pred(b)) })
	}
}

// zeroCases evaluates ifA when a is zero, ifB when only b is zero, and step
// when neither is.
func zeroCases(a, b Nat, ifA, ifB, step func() Value) Value {
	return Cond(IsZero(a), ifA, func() Value {
		return Cond(IsZero(b), ifB, step)
	})
}
