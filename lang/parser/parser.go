// Package parser implements a recursive-descent parser that transforms a
// Lox token stream into an abstract syntax tree.
package parser

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"golang.org/x/exp/slices"
)

// syncKinds are the token kinds that plausibly start a new declaration or
// statement, used by synchronize to find a safe place to resume parsing
// after a syntax error.
var syncKinds = []token.Kind{
	token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
	token.WHILE, token.PRINT, token.RETURN,
}

// maxArgs is the maximum number of arguments a call expression, or
// parameters a function declaration, may have.
const maxArgs = 255

// Parse scans src and parses it into a Program, recording any scan or parse
// diagnostics into errs. Parsing recovers from a syntax error by
// synchronizing at the next statement boundary (see synchronize), so a
// single run surfaces as many errors as possible rather than stopping at the
// first one.
func Parse(src string, errs *errors.List) *ast.Program {
	toks := scanner.Scan(src, errs)
	p := &parser{toks: toks, errs: errs}
	return p.parseProgram()
}

// errPanicMode is the sentinel panicked with by expect (and by primary when
// no expression starts at the current token), recovered at the statement
// level by declaration, which then calls synchronize.
var errPanicMode = struct{}{}

type parser struct {
	toks []token.Token
	pos  int
	errs *errors.List
}

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			prog.Stmts = append(prog.Stmts, s)
		}
	}
	return prog
}

func (p *parser) cur() token.Token  { return p.toks[p.pos] }
func (p *parser) atEnd() bool       { return p.cur().Kind == token.EOF }
func (p *parser) check(k token.Kind) bool {
	return !p.atEnd() && p.cur().Kind == k
}

func (p *parser) advance() token.Token {
	t := p.cur()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has kind k, otherwise records a
// diagnostic and panics with errPanicMode, unwound by the nearest
// synchronize call (declaration, in practice).
func (p *parser) expect(k token.Kind, what string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorf(p.cur(), "expected %s, found %s", what, describe(p.cur()))
	panic(errPanicMode)
}

func (p *parser) errorf(tok token.Token, format string, args ...any) {
	p.errs.AddToken(errors.ParseError, tok, fmt.Sprintf(format, args...))
}

func describe(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of input"
	}
	if t.Kind == token.STRING {
		return "string literal"
	}
	if t.Kind == token.NUMBER {
		return "'" + t.Lexeme + "'"
	}
	return "'" + t.Lexeme + "'"
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so that a single syntax error doesn't cascade into a wall of
// spurious follow-on errors. It stops after a semicolon, or before a token
// that starts a new declaration or statement.
func (p *parser) synchronize() {
	for !p.atEnd() {
		if p.cur().Kind == token.SEMI {
			p.advance()
			return
		}
		if slices.Contains(syncKinds, p.cur().Kind) {
			return
		}
		p.advance()
	}
}
