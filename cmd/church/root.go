package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jcorbin/gochurch"
	"github.com/jcorbin/gochurch/internal/harness"
	"github.com/jcorbin/gochurch/internal/logio"
)

func newRoot(log *logio.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "church",
		Short: "Booleans and natural numbers made of closures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.AddCommand(newCheck(log), newEval())
	return root
}

type check struct {
	log *logio.Logger

	max     int
	output  string
	jobs    int
	timeout time.Duration
	trace   bool
	tee     string
}

func newCheck(log *logio.Logger) *cobra.Command {
	c := &check{log: log}
	cmd := &cobra.Command{
		Use:   "check [flags]",
		Short: "Run the built-in checks, printing a marker and title for each",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.flags(cmd.Flags())
	return cmd
}

func (c *check) flags(fs *pflag.FlagSet) {
	fs.IntVar(&c.max, "max", 6, "largest numeral the axiom checks sweep over")
	fs.StringVarP(&c.output, "output", "o", "text", "report format: "+strings.Join(harness.Formats, ", "))
	fs.IntVar(&c.jobs, "jobs", 1, "number of checks to evaluate at once")
	fs.DurationVar(&c.timeout, "timeout", 0, "specify a time limit")
	fs.BoolVar(&c.trace, "trace", false, "enable trace logging")
	fs.StringVar(&c.tee, "tee", "", "also write the report to this file")
}

func (c *check) run(cmd *cobra.Command, args []string) (err error) {
	if c.max < 0 {
		return fmt.Errorf("--max must not be negative, got %d", c.max)
	}

	ctx := cmd.Context()
	if c.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	opts := []harness.Option{
		harness.WithOutput(cmd.OutOrStdout()),
		harness.WithFormat(c.output),
		harness.WithJobs(c.jobs),
	}
	if c.trace {
		opts = append(opts, harness.WithLogf(c.log.Leveledf("TRACE")))
	}
	if c.tee != "" {
		f, ferr := os.Create(c.tee)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		opts = append(opts, harness.WithTee(f))
	}

	rep, err := harness.New(opts...).Run(ctx, harness.Default(c.max))
	if err != nil {
		return err
	}
	if rep.Failed > 0 {
		c.log.Errorf("%d of %d checks failed", rep.Failed, len(rep.Results))
	}
	return nil
}

type eval struct {
	peano bool
}

func newEval() *cobra.Command {
	e := &eval{}
	cmd := &cobra.Command{
		Use:   "eval OP A B",
		Short: "Evaluate add, sub, mul or eq on two numerals",
		Args:  cobra.ExactArgs(3),
		RunE:  e.run,
	}
	cmd.Flags().BoolVar(&e.peano, "peano", false, "print numbers as Peano terms, like S(S(0))")
	return cmd
}

func (e *eval) run(cmd *cobra.Command, args []string) error {
	a, err := numeral(args[1])
	if err != nil {
		return err
	}
	b, err := numeral(args[2])
	if err != nil {
		return err
	}

	var res interface{}
	switch op := args[0]; op {
	case "add":
		res = church.Add(a, b)
	case "sub":
		res = church.Sub(a, b)
	case "mul":
		res = church.Mul(a, b)
	case "eq":
		res = church.Equal(a, b)
	default:
		return fmt.Errorf("unknown operation %q, want one of add, sub, mul, eq", op)
	}

	if n, ok := res.(church.Nat); ok && e.peano {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", n)
	} else {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v\n", res)
	}
	return err
}

func numeral(arg string) (church.Nat, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid numeral %q: %w", arg, err)
	}
	if i < 0 {
		return nil, fmt.Errorf("invalid numeral %q: not a natural number", arg)
	}
	return church.Number(i), nil
}
