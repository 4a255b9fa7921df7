package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gochurch"
	"github.com/jcorbin/gochurch/internal/panicerr"
)

func Test_Recover(t *testing.T) {
	for _, tc := range []struct {
		name  string
		err   string
		wraps string
		fun   func() error
		panic bool
		exit  bool
	}{
		{
			name: "ok",
			fun:  func() error { return nil },
		},
		{
			name: "returned error",
			err:  "bang",
			fun:  func() error { return errors.New("bang") },
		},
		{
			name:  "",
			err:   "faulted: shrug",
			wraps: "shrug",
			panic: true,
			fun:   func() error { panic(errors.New("shrug")) },
		},
		{
			name:  "string panic",
			err:   "string panic faulted: hello",
			panic: true,
			fun:   func() error { panic("hello") },
		},
		{
			name:  "negative numeral",
			err:   "negative numeral faulted: church: no natural number for -2",
			panic: true,
			fun:   func() error { church.Number(-2); return nil },
		},
		{
			name:  "predecessor of zero",
			panic: true,
			fun:   func() error { church.Pred(church.Zero); return nil },
		},
		{
			name: "exit",
			err:  "exit called runtime.Goexit",
			exit: true,
			fun:  func() error { runtime.Goexit(); return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if !tc.panic && !tc.exit && tc.err == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
			}
			if tc.wraps != "" {
				assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
			}
			assert.Equal(t, tc.panic, panicerr.IsPanic(err), "IsPanic")
			assert.Equal(t, tc.exit, panicerr.IsExit(err), "IsExit")
			if tc.panic {
				assert.NotEqual(t, "", panicerr.Stack(err), "expected a stack trace")
			} else {
				assert.Equal(t, "", panicerr.Stack(err), "expected no stack trace")
			}
		})
	}
}

func Test_Recover_typeFault(t *testing.T) {
	err := panicerr.Recover("pred", func() error {
		church.Pred(church.Zero)
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interface conversion")

	var rte runtime.Error
	assert.True(t, errors.As(err, &rte), "expected a runtime error to unwrap")

	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", err), panicerr.Stack(err)),
		"expected verbose format to end with a stack trace")
}
