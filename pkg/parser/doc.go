// Package parser implements a recursive descent parser for the minicc
// C-like subset language.
//
// The parser is the downstream consumer of pkg/lexer's token stream: it
// walks the stream exactly once, left to right, with a single token of
// lookahead, and never backtracks.
//
// Grammar (lowest to highest precedence):
//
//	program    = statement*
//	statement  = "return" expr ";"
//	           | "if" "(" expr ")" statement ("else" statement)?
//	           | "while" "(" expr ")" statement
//	           | "for" "(" expr ";" expr ";" expr ")" statement
//	           | "{" statement* "}"
//	           | expr ";"
//	expr       = assign
//	assign     = equality ("=" assign)?
//	equality   = relational (("==" | "!=") relational)*
//	relational = add (("<" | "<=" | ">" | ">=") add)*
//	add        = mul (("+" | "-") mul)*
//	mul        = unary (("*" | "/") unary)*
//	unary      = ("+" | "-")? primary
//	primary    = "(" expr ")" | ident ("(" args? ")")? | num
//
// Normalization:
//
// The parser lowers away surface forms that don't need their own AST node:
//   - unary "-x" becomes SUB(0, x); unary "+x" is transparent
//   - "a > b" becomes LT(b, a); "a >= b" becomes LE(b, a)
//
// Local variables are resolved against a symtab.Table as they are
// encountered; the parser has no notion of declarations, so the first
// appearance of an identifier anywhere in the program is its declaration.
//
// Error Handling:
//
// There is no error recovery. The first malformed construct calls fail,
// which panics with a *SyntaxError carrying the offending token's byte
// offset; Parse recovers this panic and returns it as an ordinary error.
// Callers never see a partial AST alongside an error.
package parser
