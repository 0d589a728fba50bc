package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

const prompt = "> "

// Repl runs an interactive read-eval-print loop against stdio, one line at
// a time. There is no pack library for terminal line-editing or
// colorization (this module's whole dependency pack was searched), and the
// spec treats both as external collaborators anyway, so this reads with
// plain bufio.Scanner: no history, no multi-line continuation.
//
// Three bare commands are recognized instead of being parsed as Lox source:
// "exit" ends the loop, "clear" sends a clear-screen escape sequence, and
// "reset" discards all accumulated global state and starts a fresh
// evaluator, as if the REPL had just been launched.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, args []string) error {
	scan := bufio.NewScanner(stdio.Stdin)
	ev := interp.New(nil, stdio.Stdout)

	fmt.Fprint(stdio.Stdout, prompt)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		switch line {
		case "":
			fmt.Fprint(stdio.Stdout, prompt)
			continue
		case "exit":
			return nil
		case "clear":
			fmt.Fprint(stdio.Stdout, "\033[H\033[2J")
			fmt.Fprint(stdio.Stdout, prompt)
			continue
		case "reset":
			ev = interp.New(nil, stdio.Stdout)
			fmt.Fprint(stdio.Stdout, prompt)
			continue
		}

		ev = c.evalLine(stdio, ev, line)
		fmt.Fprint(stdio.Stdout, prompt)
	}
	return scan.Err()
}

// evalLine parses, resolves and interprets a single line of input,
// returning the evaluator to keep using for the next line (always ev
// itself; the return value exists so the caller's loop reads as a single
// assignment regardless of whether evaluation succeeded).
func (c *Cmd) evalLine(stdio mainer.Stdio, ev *interp.Evaluator, line string) *interp.Evaluator {
	var errs errors.List
	prog := parser.Parse(line, &errs)
	if errs.Len() > 0 {
		printErrors(stdio, &errs)
		return ev
	}

	locals := resolver.Resolve(prog, &errs)
	if errs.Len() > 0 {
		printErrors(stdio, &errs)
		return ev
	}
	ev.SetLocals(locals)

	v, err := ev.Interpret(prog)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return ev
	}
	if v != nil {
		fmt.Fprintln(stdio.Stdout, interp.Stringify(v))
	}
	return ev
}
