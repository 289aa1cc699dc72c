// Package lexer provides lexical analysis for the minicc C-like subset
// language.
//
// The lexer is the upstream collaborator the parsing core depends on: it
// converts raw source text into a singly-linked stream of Tokens terminated
// by a TOKEN_EOF sentinel. The parser only ever reads forward through this
// stream via its cursor, so the lexer produces it once, in full, before
// parsing begins.
//
// Token Recognition:
//   - Keywords: return, if, else, while, for (tagged TOKEN_RESERVED)
//   - Identifiers: letters, digits, underscore, not starting with a digit
//   - Literals: decimal integers
//   - Operators: =, ==, !=, <, <=, >, >=, +, -, *, /
//   - Delimiters: (, ), {, }, ;, ,
//
// Position Tracking:
//   - Each token carries the byte offset into the source it starts at,
//     used verbatim by the parser's "report-and-abort" error reporter.
//
// The lexer follows the maximal munch principle for multi-character
// operators (==, !=, <=, >=) and for identifiers and numbers.
package lexer
