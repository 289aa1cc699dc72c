package parser

import (
	"github.com/connerohnesorge/minicc/internal/ast"
	"github.com/connerohnesorge/minicc/internal/symtab"
	"github.com/connerohnesorge/minicc/pkg/lexer"
)

// Parser walks a singly-linked token stream and builds an AST, resolving
// local-variable references into a Table as it goes. Unlike the lexer, it
// never looks more than one token ahead: every production decides what to
// do from the current token alone, then consumes it.
type Parser struct {
	cur  *lexer.Token
	vars *symtab.Table
}

// New creates a Parser positioned at the head of tokens, with a fresh,
// empty local-variable table. tokens must be non-nil and end in a
// TOKEN_EOF node, the contract lexer.Lex produces.
func New(tokens *lexer.Token) *Parser {
	return &Parser{cur: tokens, vars: symtab.New()}
}

// Locals returns the variable table accumulated while parsing. Its
// FrameSize is only meaningful after Parse returns.
func (p *Parser) Locals() *symtab.Table {
	return p.vars
}

// Parse consumes the entire token stream and returns the program as an
// ordered list of top-level statements. Inside the grammar a malformed
// program raises a panic with a *SyntaxError, recovered here and turned
// into the returned err (with a nil statement list), so every other method
// in this package can call fail without threading error returns through
// every production.
func (p *Parser) Parse() (stmts []ast.Stmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*SyntaxError); ok {
				stmts = nil
				err = se
				return
			}
			panic(r)
		}
	}()

	for !p.curIs(lexer.TOKEN_EOF) {
		stmts = append(stmts, p.statement())
	}

	return stmts, nil
}

// curIs reports whether the current token has the given kind.
func (p *Parser) curIs(kind lexer.Kind) bool {
	return p.cur.Kind == kind
}

// atReserved reports whether the current token is the reserved lexeme op,
// whether keyword or punctuation. It never consumes.
func (p *Parser) atReserved(op string) bool {
	return p.cur.Kind == lexer.TOKEN_RESERVED && p.cur.Lexeme == op
}

// advance moves the cursor to the following token, the Go equivalent of
// the C source's "tok = tok->next" assignment.
func (p *Parser) advance() {
	p.cur = p.cur.Next
}

// consume advances past the current token and reports true if it was the
// reserved lexeme op; otherwise it leaves the cursor untouched and reports
// false. This mirrors the C source's consume() exactly: a non-match is not
// an error, just a negative lookahead.
func (p *Parser) consume(op string) bool {
	if !p.atReserved(op) {
		return false
	}

	p.advance()

	return true
}

// expect advances past the current token, failing the parse if it is not
// the reserved lexeme op. This mirrors the C source's expect(): unlike
// consume, a non-match here is always fatal.
func (p *Parser) expect(op string) {
	if !p.atReserved(op) {
		fail(p.cur.Pos, "expected %q, got %q", op, p.cur.Lexeme)
	}

	p.advance()
}

// expectNumber advances past the current token and returns its value,
// failing the parse if it is not a NUMBER token.
func (p *Parser) expectNumber() int64 {
	if !p.curIs(lexer.TOKEN_NUMBER) {
		fail(p.cur.Pos, "expected a number, got %q", p.cur.Lexeme)
	}

	val := p.cur.Value
	p.advance()

	return val
}
