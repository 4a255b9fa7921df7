package harness

import (
	"fmt"

	. "github.com/jcorbin/gochurch"
)

// Default is every built-in check, with axioms swept over 0..max.
func Default(max int) []Check {
	var checks []Check
	checks = append(checks, Basics()...)
	checks = append(checks, Scenarios()...)
	checks = append(checks, Axioms(max)...)
	return checks
}

// Basics checks the boolean, pair and number primitives.
func Basics() []Check {
	return []Check{
		Truth("test truth", func() Bool { return True }),
		Falsity("test false", func() Bool { return False }),
		Truth("if true takes the first branch", func() Bool { return If(True, True, False).(Bool) }),
		Falsity("if false takes the second branch", func() Bool { return If(False, True, False).(Bool) }),
		Falsity("not true", func() Bool { return Not(True) }),
		Truth("not not true", func() Bool { return Not(Not(True)) }),
		Truth("true or false", func() Bool { return Or(True, False) }),
		Falsity("false or false", func() Bool { return Or(False, False) }),
		Falsity("true and false", func() Bool { return And(True, False) }),
		Truth("true xor false", func() Bool { return Xor(True, False) }),
		Falsity("true xor true", func() Bool { return Xor(True, True) }),
		Truth("first of a pair", func() Bool { return First(NewPair(True, False)).(Bool) }),
		Falsity("second of a pair", func() Bool { return Second(NewPair(True, False)).(Bool) }),
		Truth("zero is zero", func() Bool { return IsZero(Zero) }),
		Falsity("one is not zero", func() Bool { return IsZero(Succ(Zero)) }),
		Truth("predecessor of one is zero", func() Bool { return IsZero(Pred(Number(1))) }),
		Truth("zero equals zero", func() Bool { return Equal(Zero, Zero) }),
	}
}

// Scenarios checks arithmetic on small concrete numerals.
func Scenarios() []Check {
	n := Number
	return []Check{
		Truth("3 + 2 = 5", func() Bool { return Equal(Add(n(3), n(2)), n(5)) }),
		Truth("4 - 2 = 2", func() Bool { return Equal(Sub(n(4), n(2)), n(2)) }),
		Truth("0 - 1 = 0", func() Bool { return Equal(Sub(n(0), n(1)), n(0)) }),
		Truth("1 - 3 = 0", func() Bool { return Equal(Sub(n(1), n(3)), n(0)) }),
		Truth("2 * 3 = 6", func() Bool { return Equal(Mul(n(2), n(3)), n(6)) }),
		Truth("5 * 0 = 0", func() Bool { return Equal(Mul(n(5), n(0)), n(0)) }),
		Truth("1 * 4 = 4", func() Bool { return Equal(Mul(n(1), n(4)), n(4)) }),
		Falsity("2 = 1", func() Bool { return Equal(n(2), n(1)) }),
	}
}

// Axioms checks, for every n in 0..max, the equality and successor axioms
// along with laws that exercise both operand parities of Add and Sub.
func Axioms(max int) []Check {
	var checks []Check
	for i := 0; i <= max; i++ {
		i := i
		checks = append(checks,
			Truth(fmt.Sprintf("%d = %d", i, i), func() Bool {
				n := Number(i)
				return Equal(n, n)
			}),
			Falsity(fmt.Sprintf("S(%d) = 0", i), func() Bool {
				return Equal(Succ(Number(i)), Zero)
			}),
			Truth(fmt.Sprintf("m = %d iff %d = m", i, i), func() Bool {
				n := Number(i)
				return forAll(max, func(m Nat) Bool { return iff(Equal(m, n), Equal(n, m)) })
			}),
			Truth(fmt.Sprintf("x = %d = z implies x = z", i), func() Bool {
				y := Number(i)
				return forAll(max, func(x Nat) Bool {
					return forAll(max, func(z Nat) Bool {
						return implies(And(Equal(x, y), Equal(y, z)), Equal(x, z))
					})
				})
			}),
			Truth(fmt.Sprintf("S(m) = S(%d) iff m = %d", i, i), func() Bool {
				n := Number(i)
				return forAll(max, func(m Nat) Bool { return iff(Equal(Succ(m), Succ(n)), Equal(m, n)) })
			}),
			Truth(fmt.Sprintf("m + %d = %d + m", i, i), func() Bool {
				n := Number(i)
				return forAll(max, func(m Nat) Bool { return Equal(Add(m, n), Add(n, m)) })
			}),
			Truth(fmt.Sprintf("m + %d - %d = m", i, i), func() Bool {
				n := Number(i)
				return forAll(max, func(m Nat) Bool { return Equal(Sub(Add(m, n), n), m) })
			}),
			Truth(fmt.Sprintf("m * %d = %d * m", i, i), func() Bool {
				n := Number(i)
				return forAll(max, func(m Nat) Bool { return Equal(Mul(m, n), Mul(n, m)) })
			}),
		)
	}
	return checks
}

func forAll(max int, p func(n Nat) Bool) Bool {
	all := True
	for i := 0; i <= max; i++ {
		all = And(all, p(Number(i)))
	}
	return all
}

func implies(p, q Bool) Bool { return Or(Not(p), q) }

func iff(p, q Bool) Bool { return Not(Xor(p, q)) }
