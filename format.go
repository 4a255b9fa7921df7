package church

import (
	"fmt"
	"strconv"
	"strings"
)

// Format prints n in decimal, or as a Peano term like S(S(0)) under %+v.
func (n Nat) Format(f fmt.State, c rune) {
	switch {
	case c == 'v' && f.Flag('+'):
		fmt.Fprint(f, Peano(n))
	case c == 'v' || c == 'd' || c == 's':
		fmt.Fprint(f, strconv.Itoa(Int(n)))
	default:
		fmt.Fprintf(f, "%%!%c(church.Nat=%d)", c, Int(n))
	}
}

// Peano renders n as nested applications of S to 0.
func Peano(n Nat) string {
	k := Int(n)
	var sb strings.Builder
	sb.Grow(3*k + 1)
	for i := 0; i < k; i++ {
		sb.WriteString("S(")
	}
	sb.WriteByte('0')
	sb.WriteString(strings.Repeat(")", k))
	return sb.String()
}
