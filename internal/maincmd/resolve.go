package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

// Resolve runs the scanner, parser and resolver phases and reports any
// static errors found; it prints nothing on success, mirroring how a
// successful `go vet` stays silent.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
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

	resolver.Resolve(prog, &errs)
	if errs.Len() > 0 {
		printErrors(stdio, &errs)
		return runError{code: errors.ExitCode(false, true, false)}
	}
	return nil
}
