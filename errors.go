// errors.go — caret-snippet rendering for user-facing errors.
//
// WrapErrorWithSource recognizes the typed errors produced by the three
// pipeline stages (*LexError, *InvalidIdentError, *SyntaxError,
// *UnboundVarError, *UnknownOpError), all of which carry 1-based Line
// and 0-based Col, and returns an error whose message is a multi-line
// snippet with a caret under the offending column:
//
//	SYNTAX ERROR at 2:14: expected ')' after if condition, found ';'
//
//	   1 | cval = 7
//	   2 | if (cval > 5 ;
//	     |              ^
//
// Any other error is returned unchanged. The interpreter itself never
// calls this; it is for drivers that want readable reports.
package cstart

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments pipeline errors with a caret-annotated
// snippet of src. Non-pipeline errors pass through untouched.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", caretSnippet(src, "LEXICAL ERROR", e.Line, e.Col+1, e.Msg))
	case *InvalidIdentError:
		msg := fmt.Sprintf("invalid identifier %q: variable names must start with %q", e.Name, string(Sentinel))
		return fmt.Errorf("%s", caretSnippet(src, "LEXICAL ERROR", e.Line, e.Col+1, msg))
	case *SyntaxError:
		return fmt.Errorf("%s", caretSnippet(src, "SYNTAX ERROR", e.Line, e.Col+1, e.Msg))
	case *UnboundVarError:
		return fmt.Errorf("%s", caretSnippet(src, "RUNTIME ERROR", e.Line, e.Col+1, "unbound variable: "+e.Name))
	case *UnknownOpError:
		return fmt.Errorf("%s", caretSnippet(src, "RUNTIME ERROR", e.Line, e.Col+1, fmt.Sprintf("unknown operator %q", e.Op)))
	default:
		return err
	}
}

// caretSnippet builds the header plus up to one line of context before
// and after the error line, with a caret under the 1-based column.
// Coordinates are clamped to the source bounds so rendering never
// panics on short or empty input.
func caretSnippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
