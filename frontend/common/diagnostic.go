// Package common provides source positions and the compile error shared by
// every stage of the front end.
package common

import (
	"fmt"
	"strings"

	protocol "github.com/gluax-lang/lsp"
)

type (
	dSeverity  = protocol.DiagnosticSeverity
	diagnostic = protocol.Diagnostic
)

// ErrorKind tells which stage rejected the input.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	Lexical
	Syntactic
	Semantic
)

func (k ErrorKind) String() string {
	switch k {
	case Lexical:
		return "lexical error"
	case Syntactic:
		return "parse error"
	case Semantic:
		return "compile error"
	default:
		return "error"
	}
}

// CompileError is the only error the front end produces.
type CompileError struct {
	Kind ErrorKind
	Span Span
	Msg  string
}

func NewError(kind ErrorKind, msg string, span Span) *CompileError {
	return &CompileError{Kind: kind, Span: span, Msg: msg}
}

func Errorf(kind ErrorKind, span Span, format string, args ...any) *CompileError {
	return NewError(kind, fmt.Sprintf(format, args...), span)
}

// PanicErr aborts the current stage; the stage's entry point recovers it.
func PanicErr(kind ErrorKind, msg string, span Span) {
	panic(NewError(kind, msg, span))
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Span.URI(), e.Span.LineStart, e.Span.ColumnStart, e.Msg)
}

// Diagnostic converts the error to its LSP form.
func (e *CompileError) Diagnostic() *diagnostic {
	return NewDiagnostic(protocol.DiagnosticSeverityError, e.Msg, e.Span)
}

// Pretty renders the error with the offending line and a caret under the
// column, plus one line of context on either side.
func (e *CompileError) Pretty() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n", strings.ToUpper(e.Kind.String()), e.Span.URI(),
		e.Span.LineStart, e.Span.ColumnStart, e.Msg)
	if e.Span.Source == nil {
		return b.String()
	}

	lines := strings.Split(e.Span.Source.Text, "\n")
	line := int(e.Span.LineStart)
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	col := int(e.Span.ColumnStart)
	if col < 1 {
		col = 1
	}

	b.WriteByte('\n')
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

func NewDiagnostic(severity dSeverity, message string, span Span) *diagnostic {
	return &protocol.Diagnostic{
		Severity: &severity,
		Message:  message,
		Range:    span.ToRange(),
	}
}
