package church

// Equal is TRUE when a and b are the same natural.
func Equal(a, b Nat) Bool {
	return zeroCases(a, b,
		always(IsZero(b)),
		always(False),
		func() Value { return Recurse(equal)(NewPair(a, b)) },
	).(Bool)
}

// Add returns a + b.
//
// Each step takes one from a and gives one to b; since Recurse takes one from
// both, b is handed over two greater.
func Add(a, b Nat) Nat {
	return zeroCases(a, b,
		always(b),
		always(a),
		func() Value { return Recurse(add)(NewPair(a, Succ(Succ(b)))) },
	).(Nat)
}

// Sub returns a - b, clamped at Zero when b is greater.
func Sub(a, b Nat) Nat {
	return zeroCases(a, b,
		always(Zero),
		always(a),
		func() Value { return Recurse(sub)(NewPair(a, b)) },
	).(Nat)
}

// Mul returns a * b, as a + a * (b - 1).
func Mul(a, b Nat) Nat {
	return zeroCases(a, b,
		always(Zero),
		always(Zero),
		func() Value {
			return Cond(IsZero(Pred(a)), always(b), func() Value {
				return Cond(IsZero(Pred(b)), always(a), func() Value {
					return Add(a, Recurse(mul)(NewPair(Succ(a), b)).(Nat))
				})
			})
		},
	).(Nat)
}

func equal(a, b Nat) Value { return Equal(a, b) }
func add(a, b Nat) Value   { return Add(a, b) }
func sub(a, b Nat) Value   { return Sub(a, b) }
func mul(a, b Nat) Value   { return Mul(a, b) }
