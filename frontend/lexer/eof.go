package lexer

import "github.com/math4tots-misc/slumber/frontend/common"

type TokEOF struct {
	span common.Span
}

func (t TokEOF) isToken() {}

func (t TokEOF) Kind() Kind { return KindEOF }

func (t TokEOF) Span() common.Span {
	return t.span
}

func (t TokEOF) String() string {
	return "<EOF>"
}

func (t TokEOF) Is(_ string) bool {
	return false
}

func (t TokEOF) AsString() string {
	return ""
}

func NewTokEOF(span common.Span) TokEOF {
	return TokEOF{span: span}
}

func IsEOF(t Token) bool {
	_, ok := t.(TokEOF)
	return ok
}
