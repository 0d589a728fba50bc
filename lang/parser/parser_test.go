package parser_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/errors"
	"github.com/mna/lox/lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*ast.Program, *errors.List) {
	t.Helper()
	var errs errors.List
	prog := parser.Parse(src, &errs)
	return prog, &errs
}

func TestParseExpressionPrecedence(t *testing.T) {
	prog, errs := parse(t, "1 + 2 * 3;")
	require.Zero(t, errs.Len())
	require.Len(t, prog.Stmts, 1)

	es := prog.Stmts[0].(*ast.ExpressionStmt)
	bin := es.Expr.(*ast.BinaryExpr)
	assert.Equal(t, "+", bin.Op.Lexeme)
	_, ok := bin.Left.(*ast.LiteralExpr)
	assert.True(t, ok)
	rhs := bin.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", rhs.Op.Lexeme)
}

func TestParseGrouping(t *testing.T) {
	prog, errs := parse(t, "(1 + 2) * 3;")
	require.Zero(t, errs.Len())
	es := prog.Stmts[0].(*ast.ExpressionStmt)
	bin := es.Expr.(*ast.BinaryExpr)
	assert.Equal(t, "*", bin.Op.Lexeme)
	_, ok := bin.Left.(*ast.GroupingExpr)
	assert.True(t, ok)
}

func TestParseVarDecl(t *testing.T) {
	prog, errs := parse(t, "var x = 1;")
	require.Zero(t, errs.Len())
	v := prog.Stmts[0].(*ast.VarStmt)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.NotNil(t, v.Initializer)
}

func TestParseVarDeclNoInitializer(t *testing.T) {
	prog, errs := parse(t, "var x;")
	require.Zero(t, errs.Len())
	v := prog.Stmts[0].(*ast.VarStmt)
	assert.Nil(t, v.Initializer)
}

func TestParseAssignment(t *testing.T) {
	prog, errs := parse(t, "a = b = 3;")
	require.Zero(t, errs.Len())
	es := prog.Stmts[0].(*ast.ExpressionStmt)
	outer := es.Expr.(*ast.AssignExpr)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner := outer.Value.(*ast.AssignExpr)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, errs := parse(t, "1 + 2 = 3;")
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, errors.ParseError, errs.All()[0].Kind)
}

func TestParseIfElse(t *testing.T) {
	prog, errs := parse(t, "if (true) print 1; else print 2;")
	require.Zero(t, errs.Len())
	ifs := prog.Stmts[0].(*ast.IfStmt)
	assert.NotNil(t, ifs.Then)
	assert.NotNil(t, ifs.Else)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	prog, errs := parse(t, "for (var i = 0; i < 10; i = i + 1) print i;")
	require.Zero(t, errs.Len())

	outer := prog.Stmts[0].(*ast.BlockStmt)
	require.Len(t, outer.Stmts, 2)
	_, ok := outer.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	while := outer.Stmts[1].(*ast.WhileStmt)

	bodyBlock := while.Body.(*ast.BlockStmt)
	require.Len(t, bodyBlock.Stmts, 2)
	_, ok = bodyBlock.Stmts[0].(*ast.PrintStmt)
	assert.True(t, ok)
	_, ok = bodyBlock.Stmts[1].(*ast.ExpressionStmt)
	assert.True(t, ok)
}

func TestParseForWithNoClauses(t *testing.T) {
	prog, errs := parse(t, "for (;;) print 1;")
	require.Zero(t, errs.Len())
	while := prog.Stmts[0].(*ast.WhileStmt)
	lit := while.Cond.(*ast.LiteralExpr)
	assert.Equal(t, true, lit.Literal)
}

func TestParseFunctionDecl(t *testing.T) {
	prog, errs := parse(t, "fun add(a, b) { return a + b; }")
	require.Zero(t, errs.Len())
	fn := prog.Stmts[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	prog, errs := parse(t, "class Cake < Pastry { taste() { return this.flavor; } }")
	require.Zero(t, errs.Len())
	cls := prog.Stmts[0].(*ast.ClassStmt)
	assert.Equal(t, "Cake", cls.Name.Lexeme)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "Pastry", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "taste", cls.Methods[0].Name.Lexeme)
}

func TestParseCallAndGetChain(t *testing.T) {
	prog, errs := parse(t, "a.b().c;")
	require.Zero(t, errs.Len())
	es := prog.Stmts[0].(*ast.ExpressionStmt)
	get := es.Expr.(*ast.GetExpr)
	assert.Equal(t, "c", get.Name.Lexeme)
	call := get.Object.(*ast.CallExpr)
	getB := call.Callee.(*ast.GetExpr)
	assert.Equal(t, "b", getB.Name.Lexeme)
}

func TestParseTooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"

	_, errs := parse(t, src)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, errors.ParseError, errs.All()[0].Kind)
}

func TestParseErrorRecoverySynchronizes(t *testing.T) {
	// the first statement is broken (missing initializer), but the parser should
	// recover at the next statement boundary and still report the second
	// statement's own error, proving synchronize advanced past the first.
	_, errs := parse(t, "var x = ; var y = ;")
	assert.GreaterOrEqual(t, errs.Len(), 2)
}

func TestParseSuperCall(t *testing.T) {
	prog, errs := parse(t, "class A < B { f() { return super.f(); } }")
	require.Zero(t, errs.Len())
	cls := prog.Stmts[0].(*ast.ClassStmt)
	ret := cls.Methods[0].Body[0].(*ast.ReturnStmt)
	call := ret.Value.(*ast.CallExpr)
	_, ok := call.Callee.(*ast.SuperExpr)
	assert.True(t, ok)
}
