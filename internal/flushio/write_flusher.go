// Package flushio provides writers that buffer report output until flushed.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w itself if it already flushes, a no-op flusher
// around io.Discard or any in-memory buffer, and a bufio.Writer otherwise.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	if w == io.Discard {
		return nopFlusher{w}
	}

	// bytes.Buffer, strings.Builder and the like
	type buffer interface {
		io.Writer
		Grow(n int)
		Len() int
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }
