// Package diagnostics defines the four structured error kinds the core
// raises and the span-aware rendering an external formatter consumes: an
// error-code constant plus a per-code hex tag and template-friendly
// Error() string.
package diagnostics

import (
	"fmt"
	"strings"
)

// Code is one of the four error kinds the core ever raises.
type Code string

const (
	Type         Code = "Type"
	Reference    Code = "Reference"
	Declaration  Code = "Declaration"
	Implementing Code = "Implementing"
)

// HexCode is the stable diagnostic code an external formatter prints next
// to the exception name.
var HexCode = map[Code]string{
	Type:         "0x1250",
	Reference:    "0x1350",
	Declaration:  "0x1450",
	Implementing: "0x1950",
}

// Span is a half-open byte range plus the (line, column) of Start.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// Between composes two spans into one covering both, taking position from
// the receiver: {start: self.start, end: other.end, line: self.line,
// column: self.column}.
func (s Span) Between(other Span) Span {
	return Span{Start: s.Start, End: other.End, Line: s.Line, Column: s.Column}
}

// Error is the structured, terminal failure value the evaluator produces.
// It is also usable as a Go error for the parser/lexer, which are not
// expression-valued.
type Error struct {
	Span    Span
	Code    Code
	Message string
	// File and Source, when set, let Render reproduce the external
	// formatter's contract without a second lookup pass.
	File   string
	Source string
}

func New(span Span, code Code, format string, args ...interface{}) *Error {
	return &Error{Span: span, Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%sException at %d:%d: %s", e.Code, e.Span.Line, e.Span.Column, e.Message)
}

// Render produces an external diagnostic format:
//
//	==> <Code>Exception at <file>:<line>:<column>
//	    |
//	<line> | <source line>
//	... |   ^^^ <message>
//
// This is a reference implementation of a formatter a host can build
// around the Error value without reinventing the layout.
func (e *Error) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "==> %sException at %s:%d:%d\n", e.Code, e.File, e.Span.Line, e.Span.Column)
	b.WriteString("    |\n")
	line := sourceLine(e.Source, e.Span.Line)
	fmt.Fprintf(&b, "%d | %s\n", e.Span.Line, line)
	fmt.Fprintf(&b, "... |   ^^^ %s", e.Message)
	return b.String()
}

func sourceLine(source string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if n-1 >= len(lines) {
		return ""
	}
	return lines[n-1]
}
