// Package runeio writes report text rune by rune, keeping C1 control codes
// portable.
package runeio

import "io"

// WriteRune writes r to w: ASCII as a single byte, NEL as "\r\n", other C1
// controls in their 7-bit escape form (e.g. "\x9b" as "\x1b["), and anything
// else, like the check mark "√", as UTF-8.
func WriteRune(w io.Writer, r rune) (n int, err error) {
	switch {
	case r < 0x80:
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	case r == 0x85:
		return w.Write([]byte{'\r', '\n'})
	case r <= 0x9f:
		return w.Write([]byte{0x1b, byte(r ^ 0xc0)})
	}
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	if sw, ok := w.(io.StringWriter); ok {
		return sw.WriteString(string(r))
	}
	return w.Write([]byte(string(r)))
}

// WriteString writes each rune of s with WriteRune.
func WriteString(w io.Writer, s string) (n int, err error) {
	for _, r := range s {
		m, err := WriteRune(w, r)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
