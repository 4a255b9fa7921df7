package church

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Value
	}{
		{"ints", 1, 2},
		{"strings", "left", "right"},
		{"nil", nil, "x"},
		{"bools", True, 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPair(tc.a, tc.b)
			if tc.a == nil {
				assert.Nil(t, First(p))
			} else if s, ok := tc.a.(Bool); ok {
				assert.Equal(t, s.Truth(), First(p).(Bool).Truth())
			} else {
				assert.Equal(t, tc.a, First(p))
			}
			assert.Equal(t, tc.b, Second(p))
		})
	}

	nested := NewPair(NewPair("a", "b"), "c")
	assert.Equal(t, "b", Second(First(nested).(Pair)))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(Zero).Truth(), "zero is zero")
	n := Zero
	for i := 0; i < 6; i++ {
		assert.False(t, IsZero(Succ(n)).Truth(), "S(%d) is not zero", i)
		n = Succ(n)
	}
}

func TestPred(t *testing.T) {
	n := Zero
	for i := 0; i < 6; i++ {
		m := Succ(n)
		assert.True(t, Equal(Pred(m), n).Truth(), "P(S(%d)) = %d", i, i)
		assert.Equal(t, i, Int(Pred(m)))
		n = m
	}

	assert.Panics(t, func() { Pred(Zero) }, "predecessor of zero is not a number")
}

func TestRecurse(t *testing.T) {
	type call struct{ a, b int }
	var calls []call
	step := Recurse(func(a, b Nat) Value {
		calls = append(calls, call{Int(a), Int(b)})
		return True
	})

	for _, tc := range []struct{ a, b int }{{0, 0}, {0, 3}, {3, 0}} {
		res := step(NewPair(Number(tc.a), Number(tc.b)))
		require.IsType(t, Bool(nil), res)
		assert.False(t, res.(Bool).Truth(), "zero operand in (%d, %d) short-circuits to FALSE", tc.a, tc.b)
	}
	assert.Empty(t, calls, "no step on a zero operand")

	res := step(NewPair(Number(4), Number(2)))
	assert.True(t, res.(Bool).Truth())
	assert.Equal(t, []call{{3, 1}}, calls, "one step on both predecessors")
}

func TestNumber(t *testing.T) {
	for i := 0; i <= 20; i++ {
		assert.Equal(t, i, Int(Number(i)))
	}
	assert.True(t, IsZero(Number(0)).Truth())
	assert.PanicsWithValue(t, "church: no natural number for -1", func() { Number(-1) })
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Peano(Zero))
	assert.Equal(t, "S(S(S(0)))", Peano(Number(3)))
	assert.Equal(t, "3", fmt.Sprintf("%v", Number(3)))
	assert.Equal(t, "5", fmt.Sprintf("%d", Number(5)))
	assert.Equal(t, "S(S(0))", fmt.Sprintf("%+v", Number(2)))
	assert.Equal(t, "%!x(church.Nat=1)", fmt.Sprintf("%x", Number(1)))
}
