// Package printer renders a parsed minicc program back out as indented
// text: one line per statement, with nested blocks indented under their
// parent.
//
// It is a tree-walking dispatcher in the same shape as a tree-walking
// evaluator would be — a single entry point that type-switches on the
// concrete AST node and recurses — except it produces text instead of a
// runtime value, since this compiler stage stops at the parsed AST and
// never evaluates anything.
package printer
