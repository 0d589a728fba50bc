package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

// Run executes the script at args[0] (or stdin if args is empty) to
// completion, following the spec's exit-code taxonomy: 65 for a scan or
// parse error, 71 for a resolve error, 70 for a runtime error, 0 otherwise.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	src, name, err := readSource(stdio, args)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", name, err)
		return runError{code: 1}
	}

	var errs errors.List
	prog := parser.Parse(src, &errs)
	if errs.Len() > 0 {
		printErrors(stdio, &errs)
		return runError{code: errors.ExitCode(true, false, false)}
	}

	locals := resolver.Resolve(prog, &errs)
	if errs.Len() > 0 {
		printErrors(stdio, &errs)
		return runError{code: errors.ExitCode(false, true, false)}
	}

	ev := interp.New(locals, stdio.Stdout)
	if _, err := ev.Interpret(prog); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return runError{code: errors.ExitCode(false, false, true)}
	}
	return nil
}

func printErrors(stdio mainer.Stdio, errs *errors.List) {
	errs.Sort()
	for _, e := range errs.All() {
		fmt.Fprintln(stdio.Stderr, e)
	}
}

// runError adapts a process exit code to the error interface so Cmd.Main's
// exitCoder check can recover it without the subcommand touching os.Exit.
type runError struct{ code int }

func (e runError) Error() string { return "lox: run failed" }
func (e runError) ExitCode() int { return e.code }
