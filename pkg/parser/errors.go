package parser

import "fmt"

// SyntaxError is the single error type this package ever returns. Parsing
// is fail-fast: the first malformed construct aborts the whole call, so
// there is never a collection of these to accumulate.
type SyntaxError struct {
	Pos int    // byte offset of the offending token
	Msg string // human-readable description
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("minicc: parse error at offset %d: %s", e.Pos, e.Msg)
}

// fail raises a SyntaxError as a panic, to be caught by the recover in
// Parse. Every grammar method that detects malformed input calls this
// instead of returning an error, matching the C source's exit-on-error
// behavior without reaching for os.Exit from inside a library package.
func fail(pos int, format string, args ...interface{}) {
	panic(&SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}
