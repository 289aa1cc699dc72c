// Package symtab implements the flat, function-local variable table built
// as a side effect of parsing: one map from identifier name to its assigned
// stack-frame offset, created fresh for each top-level parse and discarded
// when it returns.
//
// There is no block-level scoping — a variable first referenced inside a
// nested compound statement keeps its offset for the rest of the program,
// matching the table's C-source ancestor exactly. The table is grounded on
// the teacher's Env binding map (internal/value/environment.go),
// generalized from a parent-chained lexical environment to a single flat
// scope since this language has only one.
package symtab
