// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the resolver and evaluator.
//
// Every expression node is allocated as a pointer, and pointer identity is
// the node identity the resolver's side-table keys on (see lang/resolver):
// two distinct *ast.VariableExpr values referring to the same name in the
// same scope are still distinct map keys, which is exactly the property the
// side-table requires.
package ast

import "github.com/mna/lox/lang/token"

// Node is implemented by every expression and statement node.
type Node interface {
	// Span reports the start and end source position of the node.
	Span() (start, end token.Pos)

	// Walk visits the node's direct children with v, used by Walk.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed chunk: a flat list of top-level
// statements, in source order.
type Program struct {
	Stmts []Stmt
}
