package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// Tokenize runs only the scanner phase and prints the resulting tokens, one
// per line, in the form "<line>-<col>: <lexeme>" (the kind name, such as
// "end of file", for a token with no lexeme).
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	src, name, err := readSource(stdio, args)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", name, err)
		return runError{code: 1}
	}

	var errs errors.List
	toks := scanner.Scan(src, &errs)
	for _, t := range toks {
		fmt.Fprintf(stdio.Stdout, "%s: %s\n", t.Pos, t)
	}
	if errs.Len() > 0 {
		printErrors(stdio, &errs)
		return runError{code: errors.ExitCode(true, false, false)}
	}
	return nil
}
