package lexer

import (
	"strings"
	"unicode"

	"github.com/math4tots-misc/slumber/frontend/common"
)

// TokNumber is an INT or FLOAT literal; Raw keeps the source text.
type TokNumber struct {
	Raw   string
	Float bool
	span  common.Span
}

func (t TokNumber) isToken() {}

func (t TokNumber) Kind() Kind {
	if t.Float {
		return KindFloat
	}
	return KindInt
}

func (t TokNumber) Span() common.Span {
	return t.span
}

func (t TokNumber) String() string {
	return t.Raw
}

func (t TokNumber) Is(_ string) bool {
	return false
}

func (t TokNumber) AsString() string {
	return ""
}

func newTokNumber(s string, float bool, span common.Span) TokNumber {
	return TokNumber{Raw: s, Float: float, span: span}
}

/* Lexing */

// number lexes a digit run optionally followed by '.' and another, possibly
// empty, digit run. "5." is a FLOAT.
func (lx *lexer) number() Token {
	if !isDigit(lx.curChr) {
		return nil
	}

	var sb strings.Builder
	lx.digits(&sb)

	float := false
	if isChr(lx.curChr, '.') {
		float = true
		sb.WriteByte('.')
		lx.advance()
		lx.digits(&sb)
	}
	return newTokNumber(sb.String(), float, lx.currentSpan())
}

func (lx *lexer) digits(sb *strings.Builder) {
	for isDigit(lx.curChr) {
		sb.WriteRune(*lx.curChr)
		lx.advance()
	}
}

func isDigit(c *rune) bool {
	return c != nil && unicode.IsDigit(*c)
}
