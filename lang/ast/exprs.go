package ast

import "github.com/mna/lox/lang/token"

type (
	// LiteralExpr is a literal number, string, boolean or nil value. Kind is
	// one of token.NUMBER, token.STRING, token.TRUE, token.FALSE or token.NIL;
	// Literal holds the payload (float64, string, bool, or nil).
	LiteralExpr struct {
		Kind    token.Kind
		Literal any
		Pos     token.Pos
		EndPos  token.Pos
	}

	// VariableExpr reads the value bound to Name. It carries its own pointer
	// identity for the resolver's side-table.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr assigns the result of Value to the variable Name. It carries
	// its own pointer identity for the resolver's side-table.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// UnaryExpr is a prefix unary operation, `!right` or `-right`.
	UnaryExpr struct {
		Op    token.Token
		Right Expr
	}

	// BinaryExpr is an infix arithmetic, comparison or equality operation.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// LogicalExpr is `left and right` or `left or right`, with short-circuit
	// evaluation of the right operand.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// GroupingExpr is a parenthesized expression, kept as its own node so the
	// printer and resolver can distinguish `(a)` from `a`.
	GroupingExpr struct {
		Lparen, Rparen token.Pos
		Inner          Expr
	}

	// CallExpr is a function or class call, `callee(args...)`.
	CallExpr struct {
		Callee Expr
		Paren  token.Token // the closing ')', used for error reporting
		Args   []Expr
	}

	// GetExpr reads a property or method, `object.Name`.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr assigns a property, `object.Name = Value`.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr is the `this` keyword inside a method body. It carries its own
	// pointer identity for the resolver's side-table.
	ThisExpr struct {
		Keyword token.Token
	}

	// SuperExpr is `super.Method` inside a subclass method body. It carries
	// its own pointer identity for the resolver's side-table.
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (n *LiteralExpr) Span() (start, end token.Pos) { return n.Pos, n.EndPos }
func (n *LiteralExpr) Walk(Visitor)                 {}
func (n *LiteralExpr) exprNode()                    {}

func (n *VariableExpr) Span() (start, end token.Pos) {
	return n.Name.Pos, n.Name.Pos
}
func (n *VariableExpr) Walk(Visitor) {}
func (n *VariableExpr) exprNode()    {}

func (n *AssignExpr) Span() (start, end token.Pos) {
	start = n.Name.Pos
	_, end = n.Value.Span()
	return start, end
}
func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }
func (n *AssignExpr) exprNode()      {}

func (n *UnaryExpr) Span() (start, end token.Pos) {
	start = n.Op.Pos
	_, end = n.Right.Span()
	return start, end
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }
func (n *UnaryExpr) exprNode()      {}

func (n *BinaryExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *BinaryExpr) exprNode() {}

func (n *LogicalExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *LogicalExpr) exprNode() {}

func (n *GroupingExpr) Span() (start, end token.Pos) { return n.Lparen, n.Rparen }
func (n *GroupingExpr) Walk(v Visitor)               { Walk(v, n.Inner) }
func (n *GroupingExpr) exprNode()                    {}

func (n *CallExpr) Span() (start, end token.Pos) {
	start, _ = n.Callee.Span()
	return start, n.Paren.Pos
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpr) exprNode() {}

func (n *GetExpr) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	return start, n.Name.Pos
}
func (n *GetExpr) Walk(v Visitor) { Walk(v, n.Object) }
func (n *GetExpr) exprNode()      {}

func (n *SetExpr) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	_, end = n.Value.Span()
	return start, end
}
func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *SetExpr) exprNode() {}

func (n *ThisExpr) Span() (start, end token.Pos) { return n.Keyword.Pos, n.Keyword.Pos }
func (n *ThisExpr) Walk(Visitor)                 {}
func (n *ThisExpr) exprNode()                    {}

func (n *SuperExpr) Span() (start, end token.Pos) { return n.Keyword.Pos, n.Method.Pos }
func (n *SuperExpr) Walk(Visitor)                 {}
func (n *SuperExpr) exprNode()                    {}
