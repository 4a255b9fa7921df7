package church

// Pair holds two values and reveals them only to a selector.
type Pair func(selector Bool) Value

// NewPair closes over a and b.
func NewPair(a, b Value) Pair {
	return func(s Bool) Value { return s(a, b) }
}

// First selects the first value of p.
func First(p Pair) Value { return p(True) }

// Second selects the second value of p.
func Second(p Pair) Value { return p(False) }
