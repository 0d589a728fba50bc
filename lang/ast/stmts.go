package ast

import "github.com/mna/lox/lang/token"

type (
	// ExpressionStmt is an expression evaluated for its side effects (and, in
	// REPL mode, for its value - see lang/interp).
	ExpressionStmt struct {
		Expr Expr
	}

	// PrintStmt is `print Expr;`.
	PrintStmt struct {
		Keyword token.Token
		Expr    Expr
	}

	// VarStmt is `var Name = Initializer;`. Initializer is nil if the
	// declaration has no initializer, in which case the variable is bound to
	// nil.
	VarStmt struct {
		Name        token.Token
		Initializer Expr
	}

	// BlockStmt is `{ Stmts... }`, introducing a new lexical scope.
	BlockStmt struct {
		Lbrace, Rbrace token.Pos
		Stmts          []Stmt
	}

	// IfStmt is `if (Cond) Then [else Else]`. Else is nil if absent.
	IfStmt struct {
		Keyword token.Token
		Cond    Expr
		Then    Stmt
		Else    Stmt
	}

	// WhileStmt is `while (Cond) Body`.
	WhileStmt struct {
		Keyword token.Token
		Cond    Expr
		Body    Stmt
	}

	// FunctionStmt is `fun Name(Params...) { Body... }`. It is also used,
	// without the leading `fun` keyword semantics, to represent class methods
	// (see ClassStmt).
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt is `return [Value];`. Value is nil for a bare `return;`.
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr
	}

	// ClassStmt is `class Name [< Superclass] { Methods... }`. Superclass is
	// nil if the class has no superclass.
	ClassStmt struct {
		Name       token.Token
		Superclass *VariableExpr
		Methods    []*FunctionStmt
	}
)

func (n *ExpressionStmt) Span() (start, end token.Pos) { return n.Expr.Span() }
func (n *ExpressionStmt) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *ExpressionStmt) stmtNode()                     {}

func (n *PrintStmt) Span() (start, end token.Pos) {
	start = n.Keyword.Pos
	_, end = n.Expr.Span()
	return start, end
}
func (n *PrintStmt) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *PrintStmt) stmtNode()      {}

func (n *VarStmt) Span() (start, end token.Pos) {
	start = n.Name.Pos
	end = start
	if n.Initializer != nil {
		_, end = n.Initializer.Span()
	}
	return start, end
}
func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}
func (n *VarStmt) stmtNode() {}

func (n *BlockStmt) Span() (start, end token.Pos) { return n.Lbrace, n.Rbrace }
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *BlockStmt) stmtNode() {}

func (n *IfStmt) Span() (start, end token.Pos) {
	start = n.Keyword.Pos
	if n.Else != nil {
		_, end = n.Else.Span()
	} else {
		_, end = n.Then.Span()
	}
	return start, end
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *IfStmt) stmtNode() {}

func (n *WhileStmt) Span() (start, end token.Pos) {
	start = n.Keyword.Pos
	_, end = n.Body.Span()
	return start, end
}
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *WhileStmt) stmtNode() {}

func (n *FunctionStmt) Span() (start, end token.Pos) {
	start = n.Name.Pos
	end = start
	if len(n.Body) > 0 {
		_, end = n.Body[len(n.Body)-1].Span()
	}
	return start, end
}
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *FunctionStmt) stmtNode() {}

func (n *ReturnStmt) Span() (start, end token.Pos) {
	start = n.Keyword.Pos
	end = start
	if n.Value != nil {
		_, end = n.Value.Span()
	}
	return start, end
}
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ReturnStmt) stmtNode() {}

func (n *ClassStmt) Span() (start, end token.Pos) {
	start = n.Name.Pos
	end = start
	if len(n.Methods) > 0 {
		_, end = n.Methods[len(n.Methods)-1].Span()
	}
	return start, end
}
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *ClassStmt) stmtNode() {}
