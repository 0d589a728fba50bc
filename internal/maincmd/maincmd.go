// Package maincmd wires process-level concerns (argument parsing, exit
// codes, stdio) to the lang/* pipeline. It mirrors the teacher's
// reflection-based subcommand dispatch: any exported Cmd method shaped like
// a subcommand becomes callable by its lowercased name, so adding a new
// subcommand is just adding a method.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

The <command> can be one of:
       run                       Run the Lox script at <path>.
       repl                      Start an interactive read-eval-print
                                 loop (<path> is ignored).
       tokenize                  Run only the scanner phase and print
                                 the resulting tokens.
       parse                     Run the scanner and parser phases and
                                 print the resulting syntax tree.
       resolve                   Run the scanner, parser and resolver
                                 phases and report any static errors.

With no <path>, run/tokenize/parse/resolve read the script from stdin.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

More information on the lox repository:
       https://github.com/mna/lox
`, binName)
)

// Cmd holds the parsed flags and dispatches to the subcommand named by the
// first positional argument.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}
	if len(c.args[1:]) > 1 {
		return fmt.Errorf("%s: at most one script path may be provided", cmdName)
	}
	return nil
}

// Main is the process entrypoint's collaborator: it parses args into c,
// dispatches to the selected subcommand, and maps the result to an exit
// code. It never calls os.Exit itself, which keeps it testable against an
// in-memory mainer.Stdio.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		if ec, ok := err.(exitCoder); ok {
			return mainer.ExitCode(ec.ExitCode())
		}
		return mainer.Failure
	}
	return mainer.Success
}

// exitCoder lets a subcommand report a specific process exit code (the
// scan/parse/resolve/runtime taxonomy from lang/errors), instead of the
// generic mainer.Failure every other error maps to.
type exitCoder interface {
	ExitCode() int
}

// buildCmds mirrors the teacher's reflection-based dispatch table: any
// method shaped func(*Cmd, context.Context, mainer.Stdio, []string) error
// becomes a subcommand, looked up by its lowercased name.
func buildCmds(v any) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}

// readSource reads the script named by args[0], or stdin if args is empty.
func readSource(stdio mainer.Stdio, args []string) (src, name string, err error) {
	if len(args) == 0 {
		b, err := io.ReadAll(stdio.Stdin)
		return string(b), "<stdin>", err
	}
	b, err := os.ReadFile(args[0])
	return string(b), args[0], err
}
