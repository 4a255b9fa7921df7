package church

// Nat is a natural number: a pair of an is-zero flag and a predecessor.
//
// Every Nat must be Zero or built by Succ; the predecessor slot of any
// successor is itself a valid Nat.
type Nat Pair

// Zero is the only natural whose first element is TRUE. Its second element is
// a placeholder Bool, not a Nat.
var Zero = Nat(NewPair(True, True))

// IsZero is TRUE exactly for Zero.
func IsZero(n Nat) Bool { return First(Pair(n)).(Bool) }

// Succ returns the natural one greater than n.
func Succ(n Nat) Nat { return Nat(NewPair(False, n)) }

// Pred returns the natural one less than n.
//
// Pred of Zero is undefined: it panics with a type assertion fault, since
// Zero's second element is not a number.
func Pred(n Nat) Nat { return Second(Pair(n)).(Nat) }
