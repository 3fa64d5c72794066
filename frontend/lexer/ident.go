package lexer

import (
	"strings"
	"unicode"

	"github.com/math4tots-misc/slumber/frontend/common"
)

// Primitive typenames are never package-qualified.
var primitives = map[string]struct{}{
	"void":  {},
	"bool":  {},
	"int":   {},
	"float": {},
}

func IsPrimitive(s string) bool {
	_, ok := primitives[s]
	return ok
}

// TokName is an identifier naming a variable, member or method.
type TokName struct {
	Raw  string
	span common.Span
}

func (t TokName) isToken() {}

func (t TokName) Kind() Kind { return KindName }

func (t TokName) Span() common.Span {
	return t.span
}

func (t TokName) String() string {
	return t.Raw
}

func (t TokName) Is(_ string) bool {
	return false
}

func (t TokName) AsString() string {
	return ""
}

func NewTokName(s string, span common.Span) TokName {
	return TokName{Raw: s, span: span}
}

// TokTypename is an identifier naming a type.
type TokTypename struct {
	Raw  string
	span common.Span
}

func (t TokTypename) isToken() {}

func (t TokTypename) Kind() Kind { return KindTypename }

func (t TokTypename) Span() common.Span {
	return t.span
}

func (t TokTypename) String() string {
	return t.Raw
}

func (t TokTypename) Is(_ string) bool {
	return false
}

func (t TokTypename) AsString() string {
	return ""
}

func NewTokTypename(s string, span common.Span) TokTypename {
	return TokTypename{Raw: s, span: span}
}

/* Lexing */

func (lx *lexer) identifier() Token {
	if !isIdentStart(lx.curChr) {
		return nil
	}

	var sb strings.Builder
	for c := lx.curChr; isIdentContinue(c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}
	raw := sb.String()
	span := lx.currentSpan()

	if keyword, ok := lookupKeyword(raw); ok {
		return newTokKeyword(keyword, span)
	}
	if isTypename(raw) {
		return NewTokTypename(raw, span)
	}
	return NewTokName(raw, span)
}

// isTypename: primitives, and words starting with an uppercase letter unless
// the whole word is uppercase (constants like MAX_SIZE). A lone capital is a
// typename.
func isTypename(s string) bool {
	if IsPrimitive(s) {
		return true
	}
	runes := []rune(s)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	return len(runes) == 1 || !isAllUpper(runes)
}

// isAllUpper: at least one cased rune and no lowercase ones.
func isAllUpper(runes []rune) bool {
	cased := false
	for _, r := range runes {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func isIdentStart(c *rune) bool {
	return c != nil && (unicode.IsLetter(*c) || *c == '_')
}

func isIdentContinue(c *rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(&r) {
				return false
			}
		} else if !isIdentContinue(&r) {
			return false
		}
	}
	return true
}
