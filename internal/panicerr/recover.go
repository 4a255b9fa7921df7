// Package panicerr turns faults raised while evaluating some function into
// ordinary error returns, keeping the stack of any recovered panic.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, returning its error, or an error
// describing any panic or runtime.Goexit that ended it instead.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}

func recoverPanic(name string, errch chan<- error) {
	if e := recover(); e != nil {
		select {
		case errch <- faultError{name, e, debug.Stack()}:
		default:
		}
	}
}

func recoverExit(name string, errch chan<- error) {
	select {
	case errch <- exitError(name):
	default:
		// the normal and panic paths have already sent
	}
}

type faultError struct {
	name  string
	e     interface{}
	stack []byte
}

func (fe faultError) Error() string { return fmt.Sprint(fe) }

func (fe faultError) Format(f fmt.State, c rune) {
	if fe.name == "" {
		fmt.Fprintf(f, "faulted: %v", fe.e)
	} else {
		fmt.Fprintf(f, "%v faulted: %v", fe.name, fe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nfault stack: %s", fe.stack)
	}
}

func (fe faultError) Unwrap() error {
	err, _ := fe.e.(error)
	return err
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsPanic returns true if err is a recovered panic.
func IsPanic(err error) bool {
	var fe faultError
	return errors.As(err, &fe)
}

// IsExit returns true if err is a recovered runtime.Goexit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}

// Stack returns the stack trace of a recovered panic, or "" for any other
// error.
func Stack(err error) string {
	var fe faultError
	if errors.As(err, &fe) {
		return string(fe.stack)
	}
	return ""
}
