package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokens(src string) []Token {
	var out []Token
	for t := Lex(src); t != nil; t = t.Next {
		out = append(out, Token{Kind: t.Kind, Lexeme: t.Lexeme, Pos: t.Pos, Value: t.Value})
	}

	return out
}

func TestLex_EmptyInputIsJustEOF(t *testing.T) {
	toks := tokens("")
	assert.Len(t, toks, 1)
	assert.Equal(t, TOKEN_EOF, toks[0].Kind)
}

func TestLex_Number(t *testing.T) {
	toks := tokens("42")
	assert.Equal(t, TOKEN_NUMBER, toks[0].Kind)
	assert.Equal(t, int64(42), toks[0].Value)
	assert.Equal(t, "42", toks[0].Lexeme)
}

func TestLex_IdentifierVsKeyword(t *testing.T) {
	toks := tokens("return ret")
	assert.Equal(t, TOKEN_RESERVED, toks[0].Kind)
	assert.Equal(t, "return", toks[0].Lexeme)
	assert.Equal(t, TOKEN_IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "ret", toks[1].Lexeme)
}

func TestLex_TwoByteOperatorsPreferredOverPrefix(t *testing.T) {
	toks := tokens("== != <= >=")
	want := []string{"==", "!=", "<=", ">="}
	for i, w := range want {
		assert.Equal(t, TOKEN_RESERVED, toks[i].Kind)
		assert.Equal(t, w, toks[i].Lexeme)
	}
}

func TestLex_SingleEqualsIsNotSwallowedByEqEq(t *testing.T) {
	toks := tokens("a = 1")
	assert.Equal(t, "=", toks[1].Lexeme)
}

func TestLex_Delimiters(t *testing.T) {
	toks := tokens("(){};,")
	want := []string{"(", ")", "{", "}", ";", ","}
	for i, w := range want {
		assert.Equal(t, w, toks[i].Lexeme)
	}
}

func TestLex_PositionsAreByteOffsets(t *testing.T) {
	toks := tokens("a  = 1")
	assert.Equal(t, 0, toks[0].Pos)
	assert.Equal(t, 3, toks[1].Pos)
	assert.Equal(t, 5, toks[2].Pos)
}

func TestLex_WhitespaceIsSkipped(t *testing.T) {
	toks := tokens("  1\t+\n2  ")
	assert.Len(t, toks, 4) // 1, +, 2, EOF
}

func TestLex_StreamEndsInEOF(t *testing.T) {
	toks := tokens("1 + 2;")
	assert.Equal(t, TOKEN_EOF, toks[len(toks)-1].Kind)
}

func TestLex_IdentifierAllowsUnderscoreAndDigitsAfterFirst(t *testing.T) {
	toks := tokens("_foo1 2bar")
	assert.Equal(t, TOKEN_IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "_foo1", toks[0].Lexeme)
	// "2bar" lexes as NUMBER "2" followed by identifier "bar".
	assert.Equal(t, TOKEN_NUMBER, toks[1].Kind)
	assert.Equal(t, "2", toks[1].Lexeme)
	assert.Equal(t, TOKEN_IDENTIFIER, toks[2].Kind)
	assert.Equal(t, "bar", toks[2].Lexeme)
}
