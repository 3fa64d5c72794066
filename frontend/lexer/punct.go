package lexer

import "github.com/math4tots-misc/slumber/frontend/common"

// Punct represents a punctuation token.
type Punct int

const (
	_ Punct = iota

	// PunctOpenParen is `(`
	PunctOpenParen
	// PunctCloseParen is `)`
	PunctCloseParen
	// PunctOpenBracket is `[`
	PunctOpenBracket
	// PunctCloseBracket is `]`
	PunctCloseBracket
	// PunctOpenBrace is `{`
	PunctOpenBrace
	// PunctCloseBrace is `}`
	PunctCloseBrace
	// PunctEqual is `=`
	PunctEqual
	// PunctPlusEqual is `+=`
	PunctPlusEqual
	// PunctMinusEqual is `-=`
	PunctMinusEqual
	// PunctPercentEqual is `%=`
	PunctPercentEqual
	// PunctAsteriskEqual is `*=`
	PunctAsteriskEqual
	// PunctSlashEqual is `/=`
	PunctSlashEqual
	// PunctPlus is `+`
	PunctPlus
	// PunctMinus is `-`
	PunctMinus
	// PunctAsterisk is `*`
	PunctAsterisk
	// PunctSlash is `/`
	PunctSlash
	// PunctPercent is `%`
	PunctPercent
	// PunctLessThan is `<`
	PunctLessThan
	// PunctGreaterThan is `>`
	PunctGreaterThan
	// PunctLessThanEqual is `<=`
	PunctLessThanEqual
	// PunctGreaterThanEqual is `>=`
	PunctGreaterThanEqual
	// PunctEqualEqual is `==`
	PunctEqualEqual
	// PunctNotEqual is `!=`
	PunctNotEqual
	// PunctQuestion is `?`
	PunctQuestion
	// PunctColon is `:`
	PunctColon
	// PunctSemicolon is `;`
	PunctSemicolon
	// PunctDot is `.`
	PunctDot
	// PunctComma is `,`
	PunctComma
)

var puncts = map[string]Punct{
	"(":  PunctOpenParen,
	")":  PunctCloseParen,
	"[":  PunctOpenBracket,
	"]":  PunctCloseBracket,
	"{":  PunctOpenBrace,
	"}":  PunctCloseBrace,
	"=":  PunctEqual,
	"+=": PunctPlusEqual,
	"-=": PunctMinusEqual,
	"%=": PunctPercentEqual,
	"*=": PunctAsteriskEqual,
	"/=": PunctSlashEqual,
	"+":  PunctPlus,
	"-":  PunctMinus,
	"*":  PunctAsterisk,
	"/":  PunctSlash,
	"%":  PunctPercent,
	"<":  PunctLessThan,
	">":  PunctGreaterThan,
	"<=": PunctLessThanEqual,
	">=": PunctGreaterThanEqual,
	"==": PunctEqualEqual,
	"!=": PunctNotEqual,
	"?":  PunctQuestion,
	":":  PunctColon,
	";":  PunctSemicolon,
	".":  PunctDot,
	",":  PunctComma,
}

var punctNames = func() []string {
	// find the largest enum value so the slice is the right length
	var max Punct
	for _, p := range puncts {
		if p > max {
			max = p
		}
	}
	names := make([]string, max+1)
	for lit, p := range puncts {
		names[p] = lit
	}
	return names
}()

type TokPunct struct {
	Punct Punct
	span  common.Span
}

func (t TokPunct) isToken() {}

func (t TokPunct) Kind() Kind { return KindPunct }

func (t TokPunct) Span() common.Span {
	return t.span
}

func (t TokPunct) String() string {
	return punctNames[t.Punct]
}

func (t TokPunct) Is(other string) bool {
	return puncts[other] == t.Punct
}

func (t TokPunct) AsString() string {
	return t.String()
}

func newTokPunct(p Punct, span common.Span) TokPunct {
	return TokPunct{Punct: p, span: span}
}

// punct matches the longest symbol starting at the current rune.
// Every symbol is at most two runes long.
func (lx *lexer) punct(c *rune) Token {
	if pC := lx.peek(); pC != nil {
		if p, ok := puncts[string([]rune{*c, *pC})]; ok {
			lx.advance()
			lx.advance()
			return newTokPunct(p, lx.currentSpan())
		}
	}
	if p, ok := puncts[string(*c)]; ok {
		lx.advance()
		return newTokPunct(p, lx.currentSpan())
	}
	return nil
}
