package resolver

import "github.com/mna/lox/lang/ast"

// stmt dispatches on the concrete statement type, mirroring the structure
// of ast.Walk but driving scope bookkeeping instead of a generic visitor,
// since that bookkeeping (push/pop scope, declare/define, track enclosing
// function/class kind) doesn't fit the Enter/Exit shape of ast.Visitor.
func (r *resolver) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		r.expr(s.Expr)
	case *ast.PrintStmt:
		r.expr(s.Expr)
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.expr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.BlockStmt:
		r.pushScope()
		for _, st := range s.Stmts {
			r.stmt(st)
		}
		r.popScope()
	case *ast.IfStmt:
		r.expr(s.Cond)
		r.stmt(s.Then)
		if s.Else != nil {
			r.stmt(s.Else)
		}
	case *ast.WhileStmt:
		r.expr(s.Cond)
		r.stmt(s.Body)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)
	case *ast.ReturnStmt:
		if r.fn == fnNone {
			r.errorf(s.Keyword, "can't return from top-level code")
		}
		if s.Value != nil {
			if r.fn == fnInitializer {
				r.errorf(s.Keyword, "can't return a value from an initializer")
			}
			r.expr(s.Value)
		}
	case *ast.ClassStmt:
		r.classDecl(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *resolver) classDecl(s *ast.ClassStmt) {
	enclosingClass := r.class
	r.class = classClass
	defer func() { r.class = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorf(s.Superclass.Name, "a class can't inherit from itself")
		}
		r.class = classSubclass
		r.expr(s.Superclass)

		r.pushScope()
		r.top()["super"] = true
		defer r.popScope()
	}

	r.pushScope()
	r.top()["this"] = true
	defer r.popScope()

	for _, m := range s.Methods {
		kind := fnMethod
		if m.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(m, kind)
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFn := r.fn
	r.fn = kind
	defer func() { r.fn = enclosingFn }()

	r.pushScope()
	defer r.popScope()

	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	for _, s := range fn.Body {
		r.stmt(s)
	}
}

func (r *resolver) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		// no sub-expressions, nothing to resolve.
	case *ast.VariableExpr:
		if r.inScope() {
			if defined, ok := r.top()[e.Name.Lexeme]; ok && !defined {
				r.errorf(e.Name, "can't read local variable '"+e.Name.Lexeme+"' in its own initializer")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.AssignExpr:
		r.expr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.UnaryExpr:
		r.expr(e.Right)
	case *ast.BinaryExpr:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.LogicalExpr:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.GroupingExpr:
		r.expr(e.Inner)
	case *ast.CallExpr:
		r.expr(e.Callee)
		for _, a := range e.Args {
			r.expr(a)
		}
	case *ast.GetExpr:
		r.expr(e.Object)
	case *ast.SetExpr:
		r.expr(e.Value)
		r.expr(e.Object)
	case *ast.ThisExpr:
		if r.class == classNone {
			r.errorf(e.Keyword, "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.SuperExpr:
		switch r.class {
		case classNone:
			r.errorf(e.Keyword, "can't use 'super' outside of a class")
		case classClass:
			r.errorf(e.Keyword, "can't use 'super' in a class with no superclass")
		}
		r.resolveLocal(e, e.Keyword)
	default:
		panic("resolver: unhandled expression type")
	}
}
