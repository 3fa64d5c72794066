package ast

import (
	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

type Class struct {
	Tok         lexer.Token
	IsInterface bool
	IsNative    bool
	Doc         string
	Package     string
	Name        string
	Base        string // "" means ObjectType
	Interfaces  []string
	Members     []*Member
	Methods     []*Method
}

func (c *Class) QualifiedTypename() string {
	return c.Package + "." + c.Name
}

// BaseTypename is the qualified base, defaulting to ObjectType.
func (c *Class) BaseTypename() string {
	if c.Base == "" {
		return ObjectType
	}
	return c.Base
}

func (c *Class) Span() common.Span {
	return c.Tok.Span()
}

type Member struct {
	Tok      lexer.Token
	Doc      string
	IsStatic bool
	Type     string
	Name     string
}

func (m *Member) Span() common.Span {
	return m.Tok.Span()
}

type Param struct {
	Type string
	Name string
}

type Method struct {
	Tok      lexer.Token
	Doc      string
	IsStatic bool
	Returns  string
	Name     string
	Params   []Param
	Body     *Block // nil for stubs
}

func (m *Method) Span() common.Span {
	return m.Tok.Span()
}

// ParamTypes returns the parameter types in declaration order.
func (m *Method) ParamTypes() []string {
	types := make([]string, len(m.Params))
	for i, p := range m.Params {
		types[i] = p.Type
	}
	return types
}
