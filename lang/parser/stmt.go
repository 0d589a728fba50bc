package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// declaration → classDecl | funDecl | varDecl | statement ;
//
// A syntax error anywhere below this point unwinds (via errPanicMode) back
// up to here, where synchronize discards tokens until the next plausible
// declaration/statement boundary and parsing resumes with a nil statement
// for the broken one.
func (p *parser) declaration() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()

	switch {
	case p.check(token.CLASS):
		return p.classDecl()
	case p.check(token.FUN):
		p.advance()
		return p.function("function")
	case p.check(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

// classDecl → "class" IDENT ( "<" IDENT )? "{" function* "}" ;
func (p *parser) classDecl() ast.Stmt {
	p.advance() // 'class'
	name := p.expect(token.IDENT, "class name")

	var super *ast.VariableExpr
	if p.check(token.LT) {
		p.advance()
		superName := p.expect(token.IDENT, "superclass name")
		super = &ast.VariableExpr{Name: superName}
	}

	p.expect(token.LBRACE, "'{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.expect(token.RBRACE, "'}' after class body")

	return &ast.ClassStmt{Name: name, Superclass: super, Methods: methods}
}

// function → IDENT "(" parameters? ")" block ;
func (p *parser) function(kind string) *ast.FunctionStmt {
	name := p.expect(token.IDENT, kind+" name")
	p.expect(token.LPAREN, "'(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorf(p.cur(), "can't have more than %d parameters", maxArgs)
			}
			params = append(params, p.expect(token.IDENT, "parameter name"))
			if !p.check(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RPAREN, "')' after parameters")
	p.expect(token.LBRACE, "'{' before "+kind+" body")
	body := p.block()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl → "var" IDENT ( "=" expression )? ";" ;
func (p *parser) varDecl() ast.Stmt {
	p.advance() // 'var'
	name := p.expect(token.IDENT, "variable name")

	var init ast.Expr
	if p.check(token.EQ) {
		p.advance()
		init = p.expression()
	}
	p.expect(token.SEMI, "';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: init}
}

// statement → exprStmt | forStmt | ifStmt | printStmt | returnStmt
//
//	| whileStmt | block ;
func (p *parser) statement() ast.Stmt {
	switch {
	case p.check(token.FOR):
		return p.forStmt()
	case p.check(token.IF):
		return p.ifStmt()
	case p.check(token.PRINT):
		return p.printStmt()
	case p.check(token.RETURN):
		return p.returnStmt()
	case p.check(token.WHILE):
		return p.whileStmt()
	case p.check(token.LBRACE):
		lbrace := p.advance()
		stmts := p.block()
		rbrace := p.toks[p.pos-1].Pos
		return &ast.BlockStmt{Lbrace: lbrace.Pos, Rbrace: rbrace, Stmts: stmts}
	default:
		return p.exprStmt()
	}
}

func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "'}' after block")
	return stmts
}

func (p *parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMI, "';' after expression")
	return &ast.ExpressionStmt{Expr: expr}
}

func (p *parser) printStmt() ast.Stmt {
	kw := p.advance()
	val := p.expression()
	p.expect(token.SEMI, "';' after value")
	return &ast.PrintStmt{Keyword: kw, Expr: val}
}

func (p *parser) returnStmt() ast.Stmt {
	kw := p.advance()
	var val ast.Expr
	if !p.check(token.SEMI) {
		val = p.expression()
	}
	p.expect(token.SEMI, "';' after return value")
	return &ast.ReturnStmt{Keyword: kw, Value: val}
}

func (p *parser) whileStmt() ast.Stmt {
	kw := p.advance()
	p.expect(token.LPAREN, "'(' after 'while'")
	cond := p.expression()
	p.expect(token.RPAREN, "')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Keyword: kw, Cond: cond, Body: body}
}

func (p *parser) ifStmt() ast.Stmt {
	kw := p.advance()
	p.expect(token.LPAREN, "'(' after 'if'")
	cond := p.expression()
	p.expect(token.RPAREN, "')' after condition")
	then := p.statement()
	var els ast.Stmt
	if p.check(token.ELSE) {
		p.advance()
		els = p.statement()
	}
	return &ast.IfStmt{Keyword: kw, Cond: cond, Then: then, Else: els}
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//
//	expression? ";" expression? ")" statement ;
//
// The for loop is pure sugar: it desugars into a block containing the
// initializer followed by a while loop, the increment appended to the end
// of the body, matching the reference implementation's "there is no
// ForStmt" design note.
func (p *parser) forStmt() ast.Stmt {
	kw := p.advance()
	p.expect(token.LPAREN, "'(' after 'for'")

	var init ast.Stmt
	switch {
	case p.check(token.SEMI):
		p.advance()
	case p.check(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.expect(token.SEMI, "';' after loop condition")

	var post ast.Expr
	if !p.check(token.RPAREN) {
		post = p.expression()
	}
	p.expect(token.RPAREN, "')' after for clauses")

	body := p.statement()

	if post != nil {
		body = &ast.BlockStmt{
			Lbrace: kw.Pos, Rbrace: kw.Pos,
			Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: post}},
		}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Kind: token.TRUE, Literal: true, Pos: kw.Pos, EndPos: kw.Pos}
	}
	body = &ast.WhileStmt{Keyword: kw, Cond: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{Lbrace: kw.Pos, Rbrace: kw.Pos, Stmts: []ast.Stmt{init, body}}
	}
	return body
}
