package lexer

import "github.com/math4tots-misc/slumber/frontend/common"

// Keyword represents a reserved keyword.
type Keyword int

const (
	_ Keyword = iota
	KwInterface
	KwClass
	KwPublic
	KwPrivate
	KwStatic
	KwExtends
	KwImplements
	KwPackage
	KwFrom
	KwImport
	KwAs
	KwWhile
	KwBreak
	KwContinue
	KwIf
	KwElse
	KwReturn
	KwNot
	KwAnd
	KwOr
	KwNull
	KwThis
	KwSuper
	KwTrue
	KwFalse
	KwNew
	KwNative
)

// table is populated at compile-time; no code runs in init().
var keywordTable = map[string]Keyword{
	"interface":  KwInterface,
	"class":      KwClass,
	"public":     KwPublic,
	"private":    KwPrivate,
	"static":     KwStatic,
	"extends":    KwExtends,
	"implements": KwImplements,
	"package":    KwPackage,
	"from":       KwFrom,
	"import":     KwImport,
	"as":         KwAs,
	"while":      KwWhile,
	"break":      KwBreak,
	"continue":   KwContinue,
	"if":         KwIf,
	"else":       KwElse,
	"return":     KwReturn,
	"not":        KwNot,
	"and":        KwAnd,
	"or":         KwOr,
	"null":       KwNull,
	"this":       KwThis,
	"super":      KwSuper,
	"true":       KwTrue,
	"false":      KwFalse,
	"new":        KwNew,
	"native":     KwNative,
}

var keywordNames = func() []string {
	// find the largest enum value so the slice is the right length
	var max Keyword
	for _, kw := range keywordTable {
		if kw > max {
			max = kw
		}
	}
	names := make([]string, max+1)
	for lit, kw := range keywordTable {
		names[kw] = lit
	}
	return names
}()

func lookupKeyword(lit string) (Keyword, bool) {
	kw, ok := keywordTable[lit]
	return kw, ok
}

// IsKeyword reports whether lit is reserved.
func IsKeyword(lit string) bool {
	_, ok := keywordTable[lit]
	return ok
}

type TokKeyword struct {
	Keyword Keyword
	span    common.Span
}

func (t TokKeyword) isToken() {}

func (t TokKeyword) Kind() Kind { return KindKeyword }

func (t TokKeyword) Span() common.Span {
	return t.span
}

func (t TokKeyword) String() string {
	return keywordNames[t.Keyword]
}

func (t TokKeyword) Is(other string) bool {
	return keywordTable[other] == t.Keyword
}

func (t TokKeyword) AsString() string {
	return t.String()
}

func newTokKeyword(k Keyword, span common.Span) TokKeyword {
	return TokKeyword{Keyword: k, span: span}
}
