// Package errors defines the kind-tagged diagnostic records shared by every
// phase of the pipeline (scanner, parser, resolver, evaluator), and the
// mapping from the phases that reported errors to the driver's exit code.
//
// Rendering a diagnostic to a human-readable string is the only
// responsibility this package takes on directly (Error.Error and List.Sort);
// deciding *how* to present a run's errors to a terminal is left to the
// caller (spec: "Diagnostic formatting... is external").
package errors

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mna/lox/lang/token"
)

// Kind identifies which phase of the pipeline raised an Error, which in turn
// determines the process exit code the driver should use.
type Kind int

const (
	// ScanError is raised by the scanner: UnexpectedCharacter, UnterminatedString.
	ScanError Kind = iota
	// ParseError is raised by the parser: expected-token, invalid assignment
	// target, too many parameters/arguments.
	ParseError
	// ResolveError is raised by the resolver: read-in-own-initializer,
	// duplicate-in-scope, return-at-top-level, return-from-initializer,
	// this-outside-class, super-outside-subclass.
	ResolveError
	// RuntimeError is raised by the evaluator: undefined variable/property,
	// type mismatch, not callable, arity mismatch, superclass not a class.
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case ScanError:
		return "Scan error"
	case ParseError:
		return "Parse error"
	case ResolveError:
		return "Resolve error"
	case RuntimeError:
		return "Runtime error"
	default:
		return "Error"
	}
}

// ExitCode is the process exit code associated with a diagnostic Kind, per
// spec: 65 scan/parse, 70 runtime, 71 resolve.
func (k Kind) ExitCode() int {
	switch k {
	case ScanError, ParseError:
		return 65
	case RuntimeError:
		return 70
	case ResolveError:
		return 71
	default:
		return 1
	}
}

// Error is a single diagnostic: the phase that raised it, the token it
// pertains to (the zero Token if not tied to a specific one), and a
// human-readable message.
type Error struct {
	Kind    Kind
	Token   token.Token
	HasTok  bool
	Message string
}

// Error implements the error interface. Zero-line errors (no associated
// token, or a token with an unknown position) render as "<Category>: <msg>";
// otherwise as "<Category> at line <L>-<C>: <msg>", where <Category> is the
// originating phase's Kind.String (e.g. "Runtime error"), per spec §6-7.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.HasTok && !e.Token.Pos.Zero() {
		l, c := e.Token.Pos.LineCol()
		sb.WriteString(" at line ")
		sb.WriteString(strconv.Itoa(l))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

// List accumulates diagnostics across a single pipeline phase (or a whole
// run, for the driver's purposes). It is safe to use as the zero value.
type List struct {
	errs []*Error
}

// Add appends a new diagnostic not tied to any token (scanner errors with no
// position context, or errors reported purely by line/column).
func (l *List) Add(kind Kind, pos token.Pos, msg string) {
	l.errs = append(l.errs, &Error{
		Kind:    kind,
		Token:   token.Token{Pos: pos},
		HasTok:  !pos.Zero(),
		Message: msg,
	})
}

// AddToken appends a new diagnostic tied to a specific token.
func (l *List) AddToken(kind Kind, tok token.Token, msg string) {
	l.errs = append(l.errs, &Error{Kind: kind, Token: tok, HasTok: true, Message: msg})
}

// Len reports the number of accumulated diagnostics.
func (l *List) Len() int { return len(l.errs) }

// All returns the accumulated diagnostics in the order they were recorded.
func (l *List) All() []*Error { return l.errs }

// HasKind reports whether any accumulated diagnostic has the given Kind.
func (l *List) HasKind(kind Kind) bool {
	for _, e := range l.errs {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by line, then column, then insertion order, to
// produce deterministic output across runs.
func (l *List) Sort() {
	sort.SliceStable(l.errs, func(i, j int) bool {
		li, ci := l.errs[i].Token.Pos.LineCol()
		lj, cj := l.errs[j].Token.Pos.LineCol()
		if li != lj {
			return li < lj
		}
		return ci < cj
	})
}

// Err returns l as an error (nil if l has no accumulated diagnostics). The
// returned error's Error() method joins every diagnostic's message with a
// newline; callers that need per-diagnostic access should use All instead.
func (l *List) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return (*errList)(l)
}

// errList adapts *List to the error interface without exposing List's
// mutator methods (Add, AddToken, Sort) on the returned error value.
type errList List

func (l *errList) Error() string {
	msgs := make([]string, len(l.errs))
	for i, e := range l.errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap lets callers use errors.Is/As (from the standard library) to find a
// specific *Error wrapped inside the list, and satisfies the convention that
// multi-errors expose Unwrap() []error.
func (l *errList) Unwrap() []error {
	errs := make([]error, len(l.errs))
	for i, e := range l.errs {
		errs[i] = e
	}
	return errs
}

// ExitCode picks the exit code for the run given the three phase flags, per
// spec §6: the most specific (latest-phase) error wins when more than one
// phase recorded diagnostics, since runtime errors can only occur once
// scanning, parsing and resolution all succeeded.
func ExitCode(hadScanOrParseError, hadResolveError, hadRuntimeError bool) int {
	switch {
	case hadRuntimeError:
		return RuntimeError.ExitCode()
	case hadResolveError:
		return ResolveError.ExitCode()
	case hadScanOrParseError:
		return ScanError.ExitCode()
	default:
		return 0
	}
}
