package logio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gochurch/internal/logio"
)

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) { return 0, errors.New("broken") }

func Test_Logger(t *testing.T) {
	var out strings.Builder
	var log logio.Logger
	log.SetOutput(&out)

	trace := log.Leveledf("TRACE")
	trace("check %q", "zero is zero")
	log.Printf("", "plain line\n")
	assert.Equal(t, 0, log.ExitCode(), "no errors yet")

	log.ErrorIf(nil)
	log.ErrorIf(errors.New("1 check failed"))
	assert.Equal(t, 1, log.ExitCode())

	assert.Equal(t, strings.Join([]string{
		`TRACE: check "zero is zero"`,
		`plain line`,
		`ERROR: 1 check failed`,
	}, "\n")+"\n", out.String())

	log.SetOutput(brokenWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode(), "write errors escalate the exit code")
}

func Test_Logger_noOutput(t *testing.T) {
	var log logio.Logger
	log.Errorf("nowhere to go")
	assert.Equal(t, 1, log.ExitCode())
}
