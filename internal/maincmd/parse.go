package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/mainer"
)

// Parse runs the scanner and parser phases and prints the resulting syntax
// tree as a parenthesized s-expression, one top-level statement per line.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	src, name, err := readSource(stdio, args)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", name, err)
		return runError{code: 1}
	}

	var errs errors.List
	prog := parser.Parse(src, &errs)
	fmt.Fprint(stdio.Stdout, ast.Print(prog.Stmts))
	if errs.Len() > 0 {
		printErrors(stdio, &errs)
		return runError{code: errors.ExitCode(true, false, false)}
	}
	return nil
}
