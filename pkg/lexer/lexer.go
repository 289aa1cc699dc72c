package lexer

import (
	"math"
	"strconv"
)

// parseDecimal converts a digit-only lexeme to its integer value.
func parseDecimal(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}

// Lexer is a single-pass scanner that converts minicc source text into a
// linked stream of Tokens. It maintains byte-offset position information for
// error reporting downstream.
type Lexer struct {
	input        string // The complete input string being tokenized
	position     int    // Current position in input (points to current char)
	readPosition int    // Current reading position in input (after current char)
	ch           byte   // Current char under examination (0 for EOF)
}

// New creates a new lexer instance for the given input string and primes it
// by reading the first character.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()

	return l
}

// readChar reads the next character and advances the lexer position. Sets ch
// to 0 (ASCII NUL) once the input is exhausted.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++
}

// peekChar returns the next character without advancing the lexer position.
// Essential for lookahead when tokenizing multi-character operators like
// "==", "<=", "!=". Returns 0 (EOF) if at end of input.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

// skipWhitespace consumes and skips over all whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads a complete identifier from the input, following the
// maximal munch principle. The returned string is later checked against the
// reserved-word table by Scan to decide whether it is a keyword or a plain
// identifier.
func (l *Lexer) readIdentifier() string {
	position := l.position

	for isAlnum(l.ch) {
		l.readChar()
	}

	return l.input[position:l.position]
}

// readNumber reads a complete decimal integer literal from the input.
func (l *Lexer) readNumber() string {
	position := l.position

	for isDigit(l.ch) {
		l.readChar()
	}

	return l.input[position:l.position]
}

// twoByteOperators maps the first byte of each two-byte operator lexeme to
// its second byte; the scanner tries these, with one byte of lookahead,
// before falling back to the single-character prefix.
var twoByteOperators = map[byte]byte{
	'=': '=', // ==
	'!': '=', // !=
	'<': '=', // <=
	'>': '=', // >=
}

// oneByteReserved is every single-character reserved lexeme the scanner
// recognizes directly, independent of lookahead.
var oneByteReserved = map[byte]bool{
	'(': true, ')': true, '{': true, '}': true,
	';': true, ',': true,
	'=': true, '<': true, '>': true,
	'+': true, '-': true, '*': true, '/': true,
}

// NextToken scans and returns the next token from the input stream,
// advancing the lexer past it.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position

	switch {
	case l.ch == 0:
		return Token{Kind: TOKEN_EOF, Pos: pos}

	case isDigit(l.ch):
		lexeme := l.readNumber()
		value, err := parseDecimal(lexeme)
		if err != nil {
			// Overflow of a too-long literal is still a well-formed
			// NUMBER token as far as the lexer is concerned; the value
			// simply saturates. Downstream diagnostics belong to later
			// compiler stages, not this lexer.
			value = math.MaxInt64
		}

		return Token{Kind: TOKEN_NUMBER, Lexeme: lexeme, Pos: pos, Value: value}

	case isLetter(l.ch):
		lexeme := l.readIdentifier()
		if reservedWords[lexeme] {
			return Token{Kind: TOKEN_RESERVED, Lexeme: lexeme, Pos: pos}
		}

		return Token{Kind: TOKEN_IDENTIFIER, Lexeme: lexeme, Pos: pos}

	case twoByteOperators[l.ch] != 0 && l.peekChar() == twoByteOperators[l.ch]:
		lexeme := string(l.ch) + string(l.peekChar())
		l.readChar()
		l.readChar()

		return Token{Kind: TOKEN_RESERVED, Lexeme: lexeme, Pos: pos}

	case oneByteReserved[l.ch]:
		lexeme := string(l.ch)
		l.readChar()

		return Token{Kind: TOKEN_RESERVED, Lexeme: lexeme, Pos: pos}

	default:
		lexeme := string(l.ch)
		l.readChar()

		return Token{Kind: TOKEN_RESERVED, Lexeme: lexeme, Pos: pos}
	}
}

// Lex tokenizes the entire input and returns the head of the resulting
// singly-linked token stream, terminated by a TOKEN_EOF node. This matches
// the upstream contract the parsing core expects: a non-empty linked list
// whose last node has Kind == TOKEN_EOF.
func Lex(input string) *Token {
	l := New(input)

	head := &Token{}
	cur := head

	for {
		tok := l.NextToken()
		node := tok
		cur.Next = &node
		cur = cur.Next

		if tok.Kind == TOKEN_EOF {
			break
		}
	}

	return head.Next
}
