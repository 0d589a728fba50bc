package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// expression → assignment ;
func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → ( call "." )? IDENT "=" assignment | logicOr ;
//
// The grammar can't tell an l-value from an ordinary expression during
// recursive descent, so it parses the left-hand side as a normal
// expression and, on seeing "=", converts it after the fact: a bare
// VariableExpr becomes an AssignExpr, a GetExpr becomes a SetExpr, anything
// else is an invalid assignment target.
func (p *parser) assignment() ast.Expr {
	left := p.logicOr()

	if p.check(token.EQ) {
		eq := p.advance()
		value := p.assignment()

		switch l := left.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: l.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: l.Object, Name: l.Name, Value: value}
		default:
			p.errorf(eq, "invalid assignment target")
			return left
		}
	}
	return left
}

func (p *parser) logicOr() ast.Expr {
	left := p.logicAnd()
	for p.check(token.OR) {
		op := p.advance()
		right := p.logicAnd()
		left = &ast.LogicalExpr{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *parser) logicAnd() ast.Expr {
	left := p.equality()
	for p.check(token.AND) {
		op := p.advance()
		right := p.equality()
		left = &ast.LogicalExpr{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *parser) equality() ast.Expr {
	left := p.comparison()
	for p.check(token.BANG_EQ) || p.check(token.EQ_EQ) {
		op := p.advance()
		right := p.comparison()
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *parser) comparison() ast.Expr {
	left := p.term()
	for p.check(token.GT) || p.check(token.GT_EQ) || p.check(token.LT) || p.check(token.LT_EQ) {
		op := p.advance()
		right := p.term()
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *parser) term() ast.Expr {
	left := p.factor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		op := p.advance()
		right := p.factor()
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *parser) factor() ast.Expr {
	left := p.unary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		op := p.advance()
		right := p.unary()
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *parser) unary() ast.Expr {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.advance()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" | "." IDENT )* ;
func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.check(token.LPAREN):
			p.advance()
			expr = p.finishCall(expr)
		case p.check(token.DOT):
			p.advance()
			name := p.expect(token.IDENT, "property name after '.'")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorf(p.cur(), "can't have more than %d arguments", maxArgs)
			}
			args = append(args, p.expression())
			if !p.check(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	paren := p.expect(token.RPAREN, "')' after arguments")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary → "true" | "false" | "nil" | "this" | NUMBER | STRING | IDENT
//
//	| "(" expression ")" | "super" "." IDENT ;
func (p *parser) primary() ast.Expr {
	switch {
	case p.check(token.FALSE):
		t := p.advance()
		return &ast.LiteralExpr{Kind: token.FALSE, Literal: false, Pos: t.Pos, EndPos: t.Pos}
	case p.check(token.TRUE):
		t := p.advance()
		return &ast.LiteralExpr{Kind: token.TRUE, Literal: true, Pos: t.Pos, EndPos: t.Pos}
	case p.check(token.NIL):
		t := p.advance()
		return &ast.LiteralExpr{Kind: token.NIL, Literal: nil, Pos: t.Pos, EndPos: t.Pos}
	case p.check(token.NUMBER), p.check(token.STRING):
		t := p.advance()
		return &ast.LiteralExpr{Kind: t.Kind, Literal: t.Literal, Pos: t.Pos, EndPos: t.Pos}
	case p.check(token.THIS):
		t := p.advance()
		return &ast.ThisExpr{Keyword: t}
	case p.check(token.SUPER):
		kw := p.advance()
		p.expect(token.DOT, "'.' after 'super'")
		method := p.expect(token.IDENT, "superclass method name")
		return &ast.SuperExpr{Keyword: kw, Method: method}
	case p.check(token.IDENT):
		return &ast.VariableExpr{Name: p.advance()}
	case p.check(token.LPAREN):
		lparen := p.advance()
		inner := p.expression()
		rparen := p.expect(token.RPAREN, "')' after expression")
		return &ast.GroupingExpr{Lparen: lparen.Pos, Rparen: rparen.Pos, Inner: inner}
	default:
		p.errorf(p.cur(), "expected expression, found %s", describe(p.cur()))
		panic(errPanicMode)
	}
}
