// Package harness evaluates named assertions about encoded values and prints
// a pass or fail marker for each, in the order they were declared.
package harness

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/gochurch"
	"github.com/jcorbin/gochurch/internal/flushio"
	"github.com/jcorbin/gochurch/internal/panicerr"
	"github.com/jcorbin/gochurch/internal/runeio"
)

// Markers printed before each check title.
const (
	Pass = "√"
	Fail = "X"
)

// Check is a named assertion: Eval must produce Expect.
type Check struct {
	Title  string
	Expect church.Bool
	Eval   func() church.Bool
}

// Truth expects eval to produce TRUE.
func Truth(title string, eval func() church.Bool) Check {
	return Check{Title: title, Expect: church.True, Eval: eval}
}

// Falsity expects eval to produce FALSE.
func Falsity(title string, eval func() church.Bool) Check {
	return Check{Title: title, Expect: church.False, Eval: eval}
}

// Marker lets got choose between the markers: any difference from expect,
// as told by XOR, selects Fail.
func Marker(got, expect church.Bool) string {
	return church.If(church.Xor(got, expect), Fail, Pass).(string)
}

// Result is the outcome of one Check.
type Result struct {
	Title  string `json:"title" yaml:"title"`
	Marker string `json:"marker" yaml:"marker"`
	Pass   bool   `json:"pass" yaml:"pass"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report collects every Result of a run in declared order.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Passed  int      `json:"passed" yaml:"passed"`
	Failed  int      `json:"failed" yaml:"failed"`
}

// Output formats understood by WithFormat.
var Formats = []string{"text", "json", "yaml"}

// Runner evaluates checks and writes their report.
type Runner struct {
	logging
	out    flushio.WriteFlusher
	format string
	jobs   int
}

// New creates a Runner; by default it writes text to nowhere, one check at a
// time.
func New(opts ...Option) *Runner {
	var r Runner
	r.apply(opts...)
	return &r
}

// Run evaluates every check and writes the report. A check that faults fails
// with the fault recorded in its Result; only cancellation of ctx, an unknown
// format or an output error stop the run.
//
// Checks are only interrupted between evaluations: one that is already
// running finishes before ctx is noticed.
func (r *Runner) Run(ctx context.Context, checks []Check) (rep Report, err error) {
	if !validFormat(r.format) {
		return rep, fmt.Errorf("unknown output format %q, want one of %v", r.format, strings.Join(Formats, ", "))
	}

	rep.Results = make([]Result, len(checks))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.jobs)
	for i := range checks {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep.Results[i] = r.check(checks[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return rep, err
	}

	for _, res := range rep.Results {
		if res.Pass {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	if err := r.write(rep); err != nil {
		return rep, fmt.Errorf("writing %v report: %w", r.format, err)
	}
	return rep, nil
}

func (r *Runner) check(c Check) (res Result) {
	res.Title = c.Title
	r.logf(">", "%v", c.Title)

	var got church.Bool
	if err := panicerr.Recover(c.Title, func() error {
		got = c.Eval()
		return nil
	}); err != nil {
		res.Marker = Fail
		res.Error = err.Error()
		r.logf("!", "%+v", err)
		return res
	}

	res.Marker = Marker(got, c.Expect)
	res.Pass = res.Marker == Pass
	r.logf(res.Marker, "%v => %v", c.Title, got)
	return res
}

func (r *Runner) write(rep Report) (err error) {
	defer func() {
		if ferr := r.out.Flush(); err == nil {
			err = ferr
		}
	}()

	switch r.format {
	case "json":
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)

	case "yaml":
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()

	default:
		for _, res := range rep.Results {
			if _, err := runeio.WriteString(r.out, res.Marker+" "+res.Title+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
