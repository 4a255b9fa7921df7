package church

import "fmt"

// Number encodes a non-negative host integer by applying Succ n times to
// Zero. It panics if n is negative.
func Number(n int) Nat {
	if n < 0 {
		panic(fmt.Sprintf("church: no natural number for %d", n))
	}
	if n == 0 {
		return Zero
	}
	return Succ(Number(n - 1))
}

// Int decodes n by counting predecessors down to Zero.
func Int(n Nat) int {
	return Cond(IsZero(n), always(0), func() Value {
		return 1 + Int(Pred(n))
	}).(int)
}
