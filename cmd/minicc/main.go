// Package main implements the minicc command-line front end.
//
// minicc is a parser-only driver for the C-like subset language: it
// tokenizes, parses, and reports on a program's structure and local
// variable layout. It does not generate code and does not evaluate
// anything.
//
// The CLI supports three modes of operation:
//   - Interactive REPL mode (-i flag): parse one statement at a time
//   - Expression/program mode (-e flag): parse a string given on the
//     command line
//   - File mode (positional argument): parse a source file
//
// Examples:
//
//	minicc -e 'a = 1; return a;'
//	minicc -i
//	minicc prog.c
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/connerohnesorge/minicc/cmd/minicc/internal/repl"
	"github.com/connerohnesorge/minicc/pkg/frame"
	"github.com/connerohnesorge/minicc/pkg/lexer"
	"github.com/connerohnesorge/minicc/pkg/parser"
	"github.com/connerohnesorge/minicc/pkg/printer"
)

// main is the entry point for the minicc CLI.
//
// It parses command-line flags and dispatches to the appropriate mode:
//   - Help mode: shows usage information
//   - Expression mode: parses a program given on the command line
//   - Interactive mode: starts a REPL session
//   - File mode: parses a source file
//   - Default: shows help if no arguments provided
func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive REPL mode")
		expression  = flag.String("e", "", "Parse a program given inline")
		verbose     = flag.Bool("v", false, "Emit verbose diagnostics via slog")
		help        = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	switch {
	case *help:
		showHelp()
	case *expression != "":
		parseAndReport(*expression, "<expression>")
	case *interactive:
		repl.Start(os.Stdin, os.Stdout)
	case flag.NArg() > 0:
		parseFile(flag.Arg(0))
	default:
		showHelp()
	}
}

// showHelp displays usage information for the minicc CLI.
func showHelp() {
	fmt.Println("minicc - a parsing core for a C-like subset language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  minicc [options] [file]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -i          Interactive REPL mode")
	fmt.Println("  -e PROGRAM  Parse a program given inline")
	fmt.Println("  -v          Verbose diagnostics")
	fmt.Println("  -h          Show this help")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println(`  minicc -e 'a = 1; return a;'`)
	fmt.Println("  minicc -i")
	fmt.Println("  minicc prog.c")
}

// parseAndReport runs the full tokenize-then-parse pipeline on src and
// prints the resulting AST dump and stack frame report. sourceName is
// used only for diagnostics, not path resolution, since the parser core
// has no file I/O of its own.
func parseAndReport(src, sourceName string) {
	p := parser.New(lexer.Lex(src))

	stmts, err := p.Parse()
	if err != nil {
		reportSyntaxError(sourceName, err)
		os.Exit(1)
	}

	fmt.Print(printer.New("  ").Print(stmts))

	f := frame.NewBuilder(sourceName).FromTable(p.Locals()).Build()
	fmt.Printf("frame: size=%d signature=%s\n", f.Size, f.Signature)
}

// parseFile reads and parses a source file from the filesystem.
func parseFile(filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minicc: error reading file: %v\n", err)
		os.Exit(1)
	}

	parseAndReport(string(content), filename)
}

// reportSyntaxError prints a *parser.SyntaxError with its byte offset
// recovered via errors.As, falling back to a plain message for any other
// error type.
func reportSyntaxError(sourceName string, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintf(os.Stderr, "%s: %v (byte offset %d)\n", sourceName, syntaxErr, syntaxErr.Pos)
		slog.Debug("syntax error", "source", sourceName, "offset", syntaxErr.Pos, "msg", syntaxErr.Msg)

		return
	}

	fmt.Fprintf(os.Stderr, "%s: %v\n", sourceName, err)
}
