// Package ast defines the abstract syntax tree produced by the minicc
// parser: expression nodes, statement nodes, and the function-call payload
// they share.
//
// Both Node (expressions) and Stmt (statements) are sum types realized as Go
// interfaces with an unexported marker method, the idiomatic replacement for
// the tag-plus-union-plus-"take"-accessor pattern of the C source this
// language is modeled on. A type switch on the concrete type is exhaustive
// pattern matching; there is no accessor that can silently return the wrong
// variant.
package ast
