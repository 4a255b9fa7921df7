package harness

import (
	"io"

	"github.com/jcorbin/gochurch/internal/flushio"
)

// Option configures a Runner.
type Option interface{ apply(r *Runner) }

var defaults = []Option{
	WithOutput(io.Discard),
	WithFormat("text"),
	WithJobs(1),
}

func (r *Runner) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(r)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(r)
		}
	}
}

// WithOutput sets where the report is written.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee writes the report to w as well as any prior output.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithFormat selects one of Formats for the report.
func WithFormat(format string) Option { return formatOption(format) }

// WithJobs bounds how many checks are evaluated at once; values below 1
// mean one.
func WithJobs(n int) Option { return jobsOption(n) }

// WithLogf sets a printf-style trace of each check as it is evaluated.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type formatOption string
type jobsOption int
type logfnOption func(mess string, args ...interface{})

func (o outputOption) apply(r *Runner) {
	if r.out != nil {
		r.out.Flush()
	}
	r.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(r *Runner) {
	r.out = flushio.Tee(r.out, flushio.NewWriteFlusher(o.Writer))
}

func (f formatOption) apply(r *Runner) { r.format = string(f) }

func (n jobsOption) apply(r *Runner) {
	r.jobs = int(n)
	if r.jobs < 1 {
		r.jobs = 1
	}
}

func (logfn logfnOption) apply(r *Runner) { r.logfn = logfn }
