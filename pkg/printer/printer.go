package printer

import (
	"fmt"
	"strings"

	"github.com/connerohnesorge/minicc/internal/ast"
)

// Printer implements a tree-walking dump of a parsed program. It carries
// no state between calls; the indent unit is fixed at construction so a
// caller can customize output width without touching the dispatcher.
type Printer struct {
	indent string
}

// New creates a Printer that indents nested blocks by indent (two spaces
// if indent is empty).
func New(indent string) *Printer {
	if indent == "" {
		indent = "  "
	}

	return &Printer{indent: indent}
}

// Print renders an entire program, one top-level statement per line group.
func (p *Printer) Print(stmts []ast.Stmt) string {
	var b strings.Builder

	for _, s := range stmts {
		p.printStmt(&b, s, 0)
	}

	return b.String()
}

func (p *Printer) line(b *strings.Builder, depth int, format string, args ...interface{}) {
	b.WriteString(strings.Repeat(p.indent, depth))
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}

// printStmt is the central dispatcher: it type-switches on the concrete
// statement node and delegates to the matching renderer, recursing into
// any nested statements along the way.
func (p *Printer) printStmt(b *strings.Builder, stmt ast.Stmt, depth int) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		p.line(b, depth, "%s", s.Node)

	case *ast.ReturnStmt:
		p.line(b, depth, "return %s", s.Node)

	case *ast.IfStmt:
		p.line(b, depth, "if %s", s.Cond)
		p.printStmt(b, s.Then, depth+1)
		if s.Else != nil {
			p.line(b, depth, "else")
			p.printStmt(b, s.Else, depth+1)
		}

	case *ast.WhileStmt:
		p.line(b, depth, "while %s", s.Cond)
		p.printStmt(b, s.Body, depth+1)

	case *ast.ForStmt:
		p.line(b, depth, "for %s; %s; %s", s.Init, s.Cond, s.Afterthought)
		p.printStmt(b, s.Body, depth+1)

	case *ast.CompoundStmt:
		p.line(b, depth, "{")
		for _, inner := range s.Stmts {
			p.printStmt(b, inner, depth+1)
		}
		p.line(b, depth, "}")

	default:
		p.line(b, depth, "<unknown statement %T>", s)
	}
}
