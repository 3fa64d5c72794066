package common

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
)

// Span represents a range in a source file.
// Lines and columns are 1-based, Offset is the byte offset of the start.
type Span struct {
	Source                 *Source // nil == unknown
	Offset                 int
	LineStart, LineEnd     uint32
	ColumnStart, ColumnEnd uint32
}

func adjustN(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	return n - 1
}

func (s Span) ToRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      adjustN(s.LineStart),
			Character: adjustN(s.ColumnStart),
		},
		End: protocol.Position{
			Line:      adjustN(s.LineEnd),
			Character: s.ColumnEnd,
		},
	}
}

func (s Span) URI() string {
	if s.Source == nil {
		return "<unknown>"
	}
	return s.Source.URI
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d (%s)", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd, s.URI())
}

// SpanDefault is the 1:1 span of an unknown source.
func SpanDefault() Span {
	return Span{
		LineStart:   1,
		LineEnd:     1,
		ColumnStart: 1,
		ColumnEnd:   1,
	}
}

func SpanNew(src *Source, offset int, lineStart, lineEnd, columnStart, columnEnd uint32) Span {
	return Span{
		Source:      src,
		Offset:      offset,
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		ColumnStart: columnStart,
		ColumnEnd:   columnEnd,
	}
}

// SpanFrom joins the outer bounds of two spans.
func SpanFrom(start, end Span) Span {
	return Span{
		Source:      start.Source,
		Offset:      start.Offset,
		LineStart:   start.LineStart,
		LineEnd:     end.LineEnd,
		ColumnStart: start.ColumnStart,
		ColumnEnd:   end.ColumnEnd,
	}
}
