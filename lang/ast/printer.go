package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders stmts as a parenthesized s-expression, one top-level
// statement per line. It is intended for debugging and for the `lox parse`
// diagnostic subcommand, not for round-tripping source.
func Print(stmts []Stmt) string {
	var sb strings.Builder
	pp := &printer{sb: &sb}
	for _, s := range stmts {
		Walk(pp, s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// printer implements Visitor, emitting a parenthesized prefix form. Every
// node's text, once complete, is followed by exactly one trailing space;
// closing parens are written on VisitExit and trailing whitespace is never
// trimmed, which keeps the implementation free of lookahead.
type printer struct {
	sb *strings.Builder
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit {
		p.sb.WriteString(") ")
		return p
	}

	switch n := n.(type) {
	case *LiteralExpr:
		p.sb.WriteString(literalString(n))
		p.sb.WriteByte(' ')
		return nil
	case *VariableExpr:
		p.sb.WriteString(n.Name.Lexeme)
		p.sb.WriteByte(' ')
		return nil
	case *ThisExpr:
		p.sb.WriteString("this ")
		return nil
	case *SuperExpr:
		fmt.Fprintf(p.sb, "(super.%s) ", n.Method.Lexeme)
		return nil
	case *AssignExpr:
		fmt.Fprintf(p.sb, "(set! %s ", n.Name.Lexeme)
	case *UnaryExpr:
		fmt.Fprintf(p.sb, "(%s ", n.Op.Lexeme)
	case *BinaryExpr:
		fmt.Fprintf(p.sb, "(%s ", n.Op.Lexeme)
	case *LogicalExpr:
		fmt.Fprintf(p.sb, "(%s ", n.Op.Lexeme)
	case *GroupingExpr:
		p.sb.WriteString("(group ")
	case *CallExpr:
		p.sb.WriteString("(call ")
	case *GetExpr:
		fmt.Fprintf(p.sb, "(get %s ", n.Name.Lexeme)
	case *SetExpr:
		fmt.Fprintf(p.sb, "(set %s ", n.Name.Lexeme)
	case *ExpressionStmt:
		p.sb.WriteString("(expr ")
	case *PrintStmt:
		p.sb.WriteString("(print ")
	case *VarStmt:
		fmt.Fprintf(p.sb, "(var %s ", n.Name.Lexeme)
	case *BlockStmt:
		p.sb.WriteString("(block ")
	case *IfStmt:
		p.sb.WriteString("(if ")
	case *WhileStmt:
		p.sb.WriteString("(while ")
	case *FunctionStmt:
		fmt.Fprintf(p.sb, "(fun %s ", n.Name.Lexeme)
	case *ReturnStmt:
		p.sb.WriteString("(return ")
	case *ClassStmt:
		fmt.Fprintf(p.sb, "(class %s ", n.Name.Lexeme)
	default:
		fmt.Fprintf(p.sb, "(?%T ", n)
	}
	return p
}

func literalString(n *LiteralExpr) string {
	switch v := n.Literal.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
