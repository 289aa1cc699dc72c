package parser

import (
	"github.com/connerohnesorge/minicc/internal/ast"
	"github.com/connerohnesorge/minicc/pkg/lexer"
)

// expr is the entry point into the expression grammar and the lowest
// precedence level:
//
//	expr = assign
func (p *Parser) expr() ast.Node {
	return p.assign()
}

// assign is right-associative via a single optional suffix rather than the
// C source's loop-with-reentry: at most one "=" may follow an equality
// expression, and its right-hand side is itself a full assign, so
// "a = b = c" parses as a = (b = c) without any extra bookkeeping.
//
//	assign = equality ("=" assign)?
func (p *Parser) assign() ast.Node {
	node := p.equality()

	if p.consume("=") {
		return ast.NewBinary(ast.OpAssign, node, p.assign())
	}

	return node
}

// equality = relational (("==" | "!=") relational)*
func (p *Parser) equality() ast.Node {
	node := p.relational()

	for {
		switch {
		case p.consume("=="):
			node = ast.NewBinary(ast.OpEq, node, p.relational())
		case p.consume("!="):
			node = ast.NewBinary(ast.OpNe, node, p.relational())
		default:
			return node
		}
	}
}

// relational = add (("<" | "<=" | ">" | ">=") add)*
//
// ">" and ">=" are not distinct node kinds: "a > b" lowers to LT(b, a) and
// "a >= b" lowers to LE(b, a), so the AST and every later stage only ever
// needs to handle "<" and "<=".
func (p *Parser) relational() ast.Node {
	node := p.add()

	for {
		switch {
		case p.consume("<"):
			node = ast.NewBinary(ast.OpLt, node, p.add())
		case p.consume("<="):
			node = ast.NewBinary(ast.OpLe, node, p.add())
		case p.consume(">"):
			node = ast.NewBinary(ast.OpLt, p.add(), node)
		case p.consume(">="):
			node = ast.NewBinary(ast.OpLe, p.add(), node)
		default:
			return node
		}
	}
}

// add = mul (("+" | "-") mul)*
func (p *Parser) add() ast.Node {
	node := p.mul()

	for {
		switch {
		case p.consume("+"):
			node = ast.NewBinary(ast.OpAdd, node, p.mul())
		case p.consume("-"):
			node = ast.NewBinary(ast.OpSub, node, p.mul())
		default:
			return node
		}
	}
}

// mul = unary (("*" | "/") unary)*
func (p *Parser) mul() ast.Node {
	node := p.unary()

	for {
		switch {
		case p.consume("*"):
			node = ast.NewBinary(ast.OpMul, node, p.unary())
		case p.consume("/"):
			node = ast.NewBinary(ast.OpDiv, node, p.unary())
		default:
			return node
		}
	}
}

// unary = ("+" | "-")? primary
//
// Unary "+" is transparent: "+x" parses to exactly the node x would, with
// no wrapper. Unary "-" lowers to a binary subtraction from zero, so
// SUB(NUM 0, x) is the only subtraction shape the rest of the compiler
// ever has to recognize.
func (p *Parser) unary() ast.Node {
	switch {
	case p.consume("+"):
		return p.primary()
	case p.consume("-"):
		return ast.NewBinary(ast.OpSub, &ast.NumNode{Val: 0}, p.primary())
	default:
		return p.primary()
	}
}

// primary = "(" expr ")" | ident ("(" args? ")")? | num
//
// An identifier followed immediately by "(" is a function call; any other
// identifier is a local-variable reference, resolved against the parser's
// symbol table on first sight.
func (p *Parser) primary() ast.Node {
	if p.consume("(") {
		node := p.expr()
		p.expect(")")

		return node
	}

	if p.curIs(lexer.TOKEN_IDENTIFIER) {
		name := p.cur.Lexeme
		p.advance()

		if p.consume("(") {
			return p.funcCall(name)
		}

		lv := p.vars.Lookup(name)

		return &ast.LVarNode{Name: lv.Name, Offset: lv.Offset}
	}

	return &ast.NumNode{Val: p.expectNumber()}
}

// funcCall parses the argument list of a call whose name and opening
// parenthesis have already been consumed.
//
//	args = expr ("," expr)*
func (p *Parser) funcCall(name string) ast.Node {
	call := &ast.FunctionCall{Name: name}

	for !p.consume(")") {
		if len(call.Args) > 0 {
			p.expect(",")
		}
		call.Args = append(call.Args, p.expr())
	}

	return &ast.FuncNode{Call: call}
}
