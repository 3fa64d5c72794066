package lexer

import (
	"github.com/math4tots-misc/slumber/frontend/common"
)

// Kind classifies a token.
type Kind uint8

const (
	_ Kind = iota
	KindKeyword
	KindPunct
	KindName
	KindTypename
	KindInt
	KindFloat
	KindString
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindPunct:
		return "symbol"
	case KindName:
		return "NAME"
	case KindTypename:
		return "TYPENAME"
	case KindInt:
		return "INT"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	case KindEOF:
		return "EOF"
	default:
		panic("unreachable")
	}
}

type Token interface {
	isToken()
	Kind() Kind
	Span() common.Span
	String() string
	Is(string) bool
	// AsString used for keywords and punctuations, to make it easier to switch on tokens for them
	AsString() string
}
