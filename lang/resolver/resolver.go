// Package resolver walks a parsed program once, before evaluation, to bind
// every variable reference to the number of scopes between its use and its
// declaration (its "distance"), and to reject a handful of constructs that
// are syntactically valid but never legal: reading a local in its own
// initializer, returning a value from a class initializer, using this/super
// outside a class, and so on.
//
// The distance side-table is keyed by the pointer identity of the
// ast.VariableExpr/ast.AssignExpr/ast.ThisExpr/ast.SuperExpr node itself (see
// package ast's doc comment) rather than by name, which is what lets the
// evaluator later resolve "x" in one closure to a different scope depth than
// "x" in a sibling closure even though both reference the same source text.
package resolver

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/token"
)

// Locals maps a variable-use node to its scope distance: how many
// environments, counting the innermost as zero, separate the use from the
// environment that declares it. A name absent from Locals is either global
// or unresolved (a runtime lookup walks to the outermost environment).
type Locals map[ast.Expr]int

// Resolve walks prog and returns the scope-distance side-table, recording
// any static errors it finds into errs. The evaluator must not be run over a
// program that produced resolve errors; its behavior is undefined.
func Resolve(prog *ast.Program, errs *errors.List) Locals {
	r := &resolver{
		locals: make(Locals),
		errs:   errs,
		scopes: nil,
		fn:     fnNone,
		class:  classNone,
	}
	for _, s := range prog.Stmts {
		r.stmt(s)
	}
	return r.locals
}

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name declared in the current block to whether its
// initializer has finished running. A name present but false is "declared
// but not yet defined": referencing it resolves to the read-in-own-
// initializer error below.
type scope map[string]bool

type resolver struct {
	locals Locals
	errs   *errors.List
	scopes []scope
	fn     functionType
	class  classType
}

func (r *resolver) pushScope()  { r.scopes = append(r.scopes, make(scope)) }
func (r *resolver) popScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }
func (r *resolver) inScope() bool { return len(r.scopes) > 0 }
func (r *resolver) top() scope  { return r.scopes[len(r.scopes)-1] }

func (r *resolver) errorf(tok token.Token, msg string) {
	r.errs.AddToken(errors.ResolveError, tok, msg)
}

// declare introduces name into the current scope as not-yet-initialized. A
// duplicate declaration in the same block is an error; Lox permits shadowing
// across blocks but not within one, since it's almost always a typo there.
func (r *resolver) declare(name token.Token) {
	if !r.inScope() {
		return
	}
	sc := r.top()
	if _, ok := sc[name.Lexeme]; ok {
		r.errorf(name, "already a variable named '"+name.Lexeme+"' in this scope")
	}
	sc[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if !r.inScope() {
		return
	}
	r.top()[name.Lexeme] = true
}

// resolveLocal searches the scope stack innermost-out for name, recording
// its distance in locals if found. An unresolved name is left absent, which
// the evaluator treats as a global lookup.
func (r *resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
