// Package repl implements the interactive read-parse-print loop for
// minicc.
//
// It mirrors the shape of a language REPL (read a line, run the pipeline,
// print the result) but the "eval" step is parsing, not evaluation: each
// line is tokenized and parsed on its own and the resulting statements are
// pretty-printed. Every line gets a fresh parser and so a fresh
// local-variable table: offsets restart at 8 on each line, and nothing a
// previous line introduced is carried over.
package repl

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/connerohnesorge/minicc/pkg/lexer"
	"github.com/connerohnesorge/minicc/pkg/parser"
	"github.com/connerohnesorge/minicc/pkg/printer"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = "minicc - parsing core REPL"
	line   = "----------------------------------------"
	prompt = "minicc> "
)

// Start begins the REPL main loop, writing the banner, results and
// messages to out. Lines are read by a readline instance on the process's
// standard input, which also shows the prompt on standard output; in is
// not read. The loop continues until the user types :quit/:q or sends EOF.
func Start(in io.Reader, out io.Writer) {
	printBanner(out)

	rl, err := readline.New(prompt)
	if err != nil {
		redColor.Fprintf(out, "could not start readline: %v\n", err)

		return
	}
	defer rl.Close()

	p := printer.New("  ")

	for {
		text, err := rl.Readline()
		if err != nil {
			cyanColor.Fprintln(out, "goodbye")

			return
		}

		switch text {
		case "":
			continue
		case ":quit", ":q":
			cyanColor.Fprintln(out, "goodbye")

			return
		case ":help", ":h":
			printHelp(out)

			continue
		}

		stmts, err := parser.New(lexer.Lex(text)).Parse()
		if err != nil {
			redColor.Fprintf(out, "parse error: %v\n", err)

			continue
		}

		yellowColor.Fprint(out, p.Print(stmts))
	}
}

func printBanner(out io.Writer) {
	blueColor.Fprintf(out, "%s\n", line)
	cyanColor.Fprintf(out, "%s\n", banner)
	blueColor.Fprintf(out, "%s\n", line)
	cyanColor.Fprintln(out, "Type a statement and press enter. Type :quit to exit.")
	blueColor.Fprintf(out, "%s\n", line)
}

func printHelp(out io.Writer) {
	cyanColor.Fprintln(out, "Available commands:")
	cyanColor.Fprintln(out, "  :help, :h    Show this help")
	cyanColor.Fprintln(out, "  :quit, :q    Exit the REPL")
}
