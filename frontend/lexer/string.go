package lexer

import (
	"strings"

	"github.com/math4tots-misc/slumber/frontend/common"
)

// TokString represents a string token. Value has escapes already applied.
type TokString struct {
	Value string
	Raw   bool
	span  common.Span
}

func (t TokString) isToken() {}

func (t TokString) Kind() Kind { return KindString }

func (t TokString) Span() common.Span {
	return t.span
}

func (t TokString) String() string {
	return t.Value
}

func (t TokString) Is(_ string) bool {
	return false
}

func (t TokString) AsString() string {
	return ""
}

func NewTokString(s string, span common.Span) TokString {
	return TokString{Value: s, span: span}
}

var escapeTable = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

/* Lexing */

func isQuote(c *rune) bool {
	return isChr(c, '"') || isChr(c, '\'')
}

// string lexes `"..."`, `'...'`, `"""..."""` and `'''...'''`, each with an
// optional `r` prefix that disables escapes.
func (lx *lexer) string() (Token, error) {
	raw := false
	switch {
	case isQuote(lx.curChr):
	case isChr(lx.curChr, 'r') && isQuote(lx.peek()):
		raw = true
		lx.advance() // skip r
	default:
		return nil, nil
	}

	delim := *lx.curChr
	width := 1
	if isChr(lx.peek(), delim) && isChr(lx.chars.PeekN(2), delim) {
		width = 3
	}
	for range width {
		lx.advance()
	}

	var sb strings.Builder
	for !lx.atQuote(delim, width) {
		if lx.curChr == nil {
			return nil, lx.error("unterminated string literal")
		}

		if !raw && *lx.curChr == '\\' {
			lx.advance() // skip '\'
			if lx.curChr == nil {
				return nil, lx.error("unterminated string literal")
			}
			esc, ok := escapeTable[*lx.curChr]
			if !ok {
				return nil, lx.errorHere("invalid escape: " + string(*lx.curChr))
			}
			sb.WriteRune(esc)
			lx.advance()
			continue
		}

		sb.WriteRune(*lx.curChr)
		lx.advance()
	}

	for range width {
		lx.advance()
	}
	return TokString{Value: sb.String(), Raw: raw, span: lx.currentSpan()}, nil
}

func (lx *lexer) atQuote(delim rune, width int) bool {
	if !isChr(lx.curChr, delim) {
		return false
	}
	for i := 1; i < width; i++ {
		if !isChr(lx.chars.PeekN(i), delim) {
			return false
		}
	}
	return true
}
