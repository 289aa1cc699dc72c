package parser

import (
	"github.com/connerohnesorge/minicc/internal/ast"
)

// statement parses a single statement:
//
//	statement = "return" expr ";"
//	          | "if" "(" expr ")" statement ("else" statement)?
//	          | "while" "(" expr ")" statement
//	          | "for" "(" expr ";" expr ";" expr ")" statement
//	          | "{" statement* "}"
//	          | expr ";"
//
// The dangling-else ambiguity resolves the way a recursive-descent parser
// always resolves it: else binds to the nearest enclosing if that does not
// already have one, since this function consumes an optional else
// immediately after parsing the then-branch, before returning to any
// caller.
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.atReserved("return"):
		p.advance()
		node := p.expr()
		p.expect(";")

		return &ast.ReturnStmt{Node: node}

	case p.atReserved("if"):
		p.advance()
		p.expect("(")
		cond := p.expr()
		p.expect(")")
		then := p.statement()

		stmt := &ast.IfStmt{Cond: cond, Then: then}
		if p.consume("else") {
			stmt.Else = p.statement()
		}

		return stmt

	case p.atReserved("while"):
		p.advance()
		p.expect("(")
		cond := p.expr()
		p.expect(")")
		body := p.statement()

		return &ast.WhileStmt{Cond: cond, Body: body}

	case p.atReserved("for"):
		p.advance()
		p.expect("(")

		// All three clauses are required expressions; there is no syntax
		// for omitting one. "for (;;)" faults in primary() on the ";" it
		// finds where a number or identifier was expected, matching the
		// grammar this is modeled on rather than silently accepting the
		// common C idiom for an infinite loop.
		stmt := &ast.ForStmt{Init: p.expr()}
		p.expect(";")
		stmt.Cond = p.expr()
		p.expect(";")
		stmt.Afterthought = p.expr()
		p.expect(")")

		stmt.Body = p.statement()

		return stmt

	case p.atReserved("{"):
		p.advance()

		block := &ast.CompoundStmt{}
		for !p.consume("}") {
			block.Stmts = append(block.Stmts, p.statement())
		}

		return block

	default:
		node := p.expr()
		p.expect(";")

		return &ast.ExprStmt{Node: node}
	}
}
