// Package ast holds the syntax tree produced by the parser.
//
// Nodes are never mutated after parsing. Typenames inside the tree are
// already qualified: a primitive name, or package + "." + TYPENAME.
package ast

import (
	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

// ObjectType is the universal base class.
const ObjectType = "bb.lang.Object"

type Module struct {
	Tok     lexer.Token
	Doc     string // "" if absent
	Package string
	Imports []string
	Classes []*Class
}

func (m *Module) Span() common.Span {
	return m.Tok.Span()
}
