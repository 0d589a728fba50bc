package interp

import (
	"fmt"
	"io"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/token"
)

// Evaluator walks a resolved program and executes it. One Evaluator holds
// the global environment and the REPL's carried-over state across separate
// Interpret calls; a fresh Evaluator corresponds to a fresh global scope.
type Evaluator struct {
	globals *Environment
	env     *Environment
	locals  resolver.Locals
	out     io.Writer
}

// New creates an Evaluator with its own global environment (pre-populated
// with the native built-ins) and current scope pointing at that global
// environment. Output from `print` and the `println` built-in go to out.
func New(locals resolver.Locals, out io.Writer) *Evaluator {
	g := NewEnvironment()
	defineGlobals(g)
	return &Evaluator{globals: g, env: g, locals: locals, out: out}
}

// SetLocals merges locals into the scope-distance side-table consulted by
// variable lookups and assignments. The REPL calls this once per line: each
// line is parsed and resolved independently (its own scope stack, starting
// empty), so its side-table only ever contains entries for that line's own
// AST nodes. Entries from earlier lines are kept, since a function or method
// declared on an earlier line still evaluates that line's nodes when called.
func (ev *Evaluator) SetLocals(locals resolver.Locals) {
	if ev.locals == nil {
		ev.locals = make(resolver.Locals, len(locals))
	}
	for expr, dist := range locals {
		ev.locals[expr] = dist
	}
}

// Interpret executes every statement in prog in order. If the last
// statement is a bare expression statement, its value is returned alongside
// a nil error, which the REPL subcommand uses to echo the value of the line
// just entered; batch execution (the `run` subcommand) ignores it.
//
// The first runtime fault stops execution and is returned as a non-nil
// error; Lox, unlike the scan/parse/resolve phases, does not keep going
// after a runtime error, since later statements could observe or depend on
// state a continued run would never have produced.
func (ev *Evaluator) Interpret(prog *ast.Program) (Value, error) {
	var last Value
	var lastWasExpr bool
	for _, s := range prog.Stmts {
		if es, ok := s.(*ast.ExpressionStmt); ok {
			v, err := ev.evaluate(es.Expr)
			if err != nil {
				return nil, err
			}
			last, lastWasExpr = v, true
			continue
		}
		lastWasExpr = false
		if err := ev.execute(s); err != nil {
			return nil, err
		}
	}
	if lastWasExpr {
		return last, nil
	}
	return nil, nil
}

// runtimeErrorf builds a *errors.Error of Kind RuntimeError tied to tok.
func runtimeErrorf(tok token.Token, format string, args ...any) error {
	return &errors.Error{Kind: errors.RuntimeError, Token: tok, HasTok: true, Message: fmt.Sprintf(format, args...)}
}

func (ev *Evaluator) execute(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		_, err := ev.evaluate(s.Expr)
		return err
	case *ast.PrintStmt:
		v, err := ev.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(ev.out, Stringify(v))
		return nil
	case *ast.VarStmt:
		var v Value
		if s.Initializer != nil {
			var err error
			v, err = ev.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		ev.env.Define(s.Name.Lexeme, v)
		return nil
	case *ast.BlockStmt:
		return ev.executeBlock(s.Stmts, NewChildEnvironment(ev.env))
	case *ast.IfStmt:
		cond, err := ev.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return ev.execute(s.Then)
		}
		if s.Else != nil {
			return ev.execute(s.Else)
		}
		return nil
	case *ast.WhileStmt:
		for {
			cond, err := ev.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := ev.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.FunctionStmt:
		fn := &Function{decl: s, closure: ev.env}
		ev.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.ReturnStmt:
		var v Value
		if s.Value != nil {
			var err error
			v, err = ev.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: v}
	case *ast.ClassStmt:
		return ev.classStmt(s)
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", s))
	}
}

func (ev *Evaluator) classStmt(s *ast.ClassStmt) error {
	var super *Class
	if s.Superclass != nil {
		v, err := ev.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		c, ok := v.(*Class)
		if !ok {
			return runtimeErrorf(s.Superclass.Name, "superclass must be a class")
		}
		super = c
	}

	ev.env.Define(s.Name.Lexeme, nil)

	methodEnv := ev.env
	if s.Superclass != nil {
		methodEnv = NewChildEnvironment(ev.env)
		methodEnv.Define("super", super)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			decl:          m,
			closure:       methodEnv,
			isInitializer: m.Name.Lexeme == "init",
		}
	}

	class := NewClass(s.Name.Lexeme, super, methods)
	ev.env.Assign(s.Name.Lexeme, class)
	return nil
}

// executeBlock runs stmts with env as the current scope, restoring the
// previous scope on every exit path (normal, error, or a propagating
// returnSignal) so a panic-free error return from deep inside a nested
// block can't leave the evaluator's scope pointer stuck.
func (ev *Evaluator) executeBlock(stmts []ast.Stmt, env *Environment) error {
	prev := ev.env
	ev.env = env
	defer func() { ev.env = prev }()

	for _, s := range stmts {
		if err := ev.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) evaluate(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return e.Literal, nil
	case *ast.GroupingExpr:
		return ev.evaluate(e.Inner)
	case *ast.VariableExpr:
		return ev.lookupVariable(e.Name, e)
	case *ast.AssignExpr:
		v, err := ev.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := ev.locals[e]; ok {
			ev.env.AssignAt(dist, e.Name.Lexeme, v)
		} else if !ev.globals.Assign(e.Name.Lexeme, v) {
			return nil, runtimeErrorf(e.Name, "undefined variable '%s'", e.Name.Lexeme)
		}
		return v, nil
	case *ast.UnaryExpr:
		return ev.unary(e)
	case *ast.BinaryExpr:
		return ev.binary(e)
	case *ast.LogicalExpr:
		return ev.logical(e)
	case *ast.CallExpr:
		return ev.call(e)
	case *ast.GetExpr:
		return ev.get(e)
	case *ast.SetExpr:
		return ev.set(e)
	case *ast.ThisExpr:
		return ev.lookupVariable(e.Keyword, e)
	case *ast.SuperExpr:
		return ev.super_(e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", e))
	}
}

func (ev *Evaluator) lookupVariable(name token.Token, node ast.Expr) (Value, error) {
	if dist, ok := ev.locals[node]; ok {
		return ev.env.GetAt(dist, name.Lexeme), nil
	}
	if v, ok := ev.globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, runtimeErrorf(name, "undefined variable '%s'", name.Lexeme)
}

func (ev *Evaluator) unary(e *ast.UnaryExpr) (Value, error) {
	right, err := ev.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErrorf(e.Op, "operand must be a number")
		}
		return -n, nil
	case token.BANG:
		return !Truthy(right), nil
	default:
		panic("interp: unhandled unary operator " + e.Op.Lexeme)
	}
}

func (ev *Evaluator) logical(e *ast.LogicalExpr) (Value, error) {
	left, err := ev.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if Truthy(left) {
			return left, nil
		}
	} else if !Truthy(left) {
		return left, nil
	}
	return ev.evaluate(e.Right)
}

func (ev *Evaluator) binary(e *ast.BinaryExpr) (Value, error) {
	left, err := ev.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErrorf(e.Op, "operands must be two numbers or two strings")
	case token.MINUS, token.STAR, token.SLASH, token.GT, token.GT_EQ, token.LT, token.LT_EQ:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, runtimeErrorf(e.Op, "operands must be numbers")
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.GT:
			return ln > rn, nil
		case token.GT_EQ:
			return ln >= rn, nil
		case token.LT:
			return ln < rn, nil
		default: // token.LT_EQ
			return ln <= rn, nil
		}
	case token.EQ_EQ:
		return Equal(left, right), nil
	case token.BANG_EQ:
		return !Equal(left, right), nil
	default:
		panic("interp: unhandled binary operator " + e.Op.Lexeme)
	}
}

func (ev *Evaluator) call(e *ast.CallExpr) (Value, error) {
	callee, err := ev.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren, "can only call functions and classes")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(e.Paren, "expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return fn.Call(ev, args)
}

func (ev *Evaluator) get(e *ast.GetExpr) (Value, error) {
	obj, err := ev.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name, "only instances have properties")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Name, "undefined property '%s'", e.Name.Lexeme)
	}
	return v, nil
}

func (ev *Evaluator) set(e *ast.SetExpr) (Value, error) {
	obj, err := ev.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name, "only instances have fields")
	}
	v, err := ev.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}

func (ev *Evaluator) super_(e *ast.SuperExpr) (Value, error) {
	dist := ev.locals[e]
	superVal := ev.env.GetAt(dist, "super")
	super := superVal.(*Class)
	this := ev.env.GetAt(dist-1, "this").(*Instance)

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Method, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(this), nil
}
