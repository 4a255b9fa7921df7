// Command church runs the built-in checks of the Church encoding, or
// evaluates a single operation on two numerals.
package main

import (
	"context"
	"os"

	"github.com/jcorbin/gochurch/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)

	root := newRoot(&log)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	log.ErrorIf(root.ExecuteContext(context.Background()))
	os.Exit(log.ExitCode())
}
