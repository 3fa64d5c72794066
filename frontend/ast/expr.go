package ast

import (
	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

type ExprKind uint8

const (
	_ ExprKind = iota
	ExprKindAssign
	ExprKindName
	ExprKindThis
	ExprKindNull
	ExprKindBool
	ExprKindInt
	ExprKindFloat
	ExprKindString
	ExprKindList
	ExprKindNew
	ExprKindSuperMethodCall
	ExprKindMethodCall
	ExprKindGetAttribute
	ExprKindSetAttribute
	ExprKindStaticMethodCall
	ExprKindGetStaticAttribute
	ExprKindSetStaticAttribute
)

func (k ExprKind) String() string {
	switch k {
	case ExprKindAssign:
		return "assign"
	case ExprKindName:
		return "name"
	case ExprKindThis:
		return "this"
	case ExprKindNull:
		return "null"
	case ExprKindBool:
		return "bool"
	case ExprKindInt:
		return "int"
	case ExprKindFloat:
		return "float"
	case ExprKindString:
		return "string"
	case ExprKindList:
		return "list display"
	case ExprKindNew:
		return "new"
	case ExprKindSuperMethodCall:
		return "super method call"
	case ExprKindMethodCall:
		return "method call"
	case ExprKindGetAttribute:
		return "get attribute"
	case ExprKindSetAttribute:
		return "set attribute"
	case ExprKindStaticMethodCall:
		return "static method call"
	case ExprKindGetStaticAttribute:
		return "get static attribute"
	case ExprKindSetStaticAttribute:
		return "set static attribute"
	default:
		panic("unreachable")
	}
}

// Expr is implemented by pointer types only, so an Expr is usable as a map
// key identifying one node.
type Expr interface {
	ExprKind() ExprKind
	Span() common.Span
	isExpr()
}

/* Assign */

type Assign struct {
	Tok   lexer.Token
	Name  string
	Value Expr
}

func (e *Assign) ExprKind() ExprKind { return ExprKindAssign }
func (e *Assign) Span() common.Span  { return e.Tok.Span() }
func (e *Assign) isExpr()            {}

/* Name */

type Name struct {
	Tok  lexer.Token
	Name string
}

func (e *Name) ExprKind() ExprKind { return ExprKindName }
func (e *Name) Span() common.Span  { return e.Tok.Span() }
func (e *Name) isExpr()            {}

/* This */

type This struct {
	Tok lexer.Token
}

func (e *This) ExprKind() ExprKind { return ExprKindThis }
func (e *This) Span() common.Span  { return e.Tok.Span() }
func (e *This) isExpr()            {}

/* Null */

type Null struct {
	Tok lexer.Token
}

func (e *Null) ExprKind() ExprKind { return ExprKindNull }
func (e *Null) Span() common.Span  { return e.Tok.Span() }
func (e *Null) isExpr()            {}

/* Literals */

type Bool struct {
	Tok   lexer.Token
	Value bool
}

func (e *Bool) ExprKind() ExprKind { return ExprKindBool }
func (e *Bool) Span() common.Span  { return e.Tok.Span() }
func (e *Bool) isExpr()            {}

// Int keeps the literal's source text.
type Int struct {
	Tok   lexer.Token
	Value string
}

func (e *Int) ExprKind() ExprKind { return ExprKindInt }
func (e *Int) Span() common.Span  { return e.Tok.Span() }
func (e *Int) isExpr()            {}

type Float struct {
	Tok   lexer.Token
	Value string
}

func (e *Float) ExprKind() ExprKind { return ExprKindFloat }
func (e *Float) Span() common.Span  { return e.Tok.Span() }
func (e *Float) isExpr()            {}

type String struct {
	Tok   lexer.Token
	Value string
}

func (e *String) ExprKind() ExprKind { return ExprKindString }
func (e *String) Span() common.Span  { return e.Tok.Span() }
func (e *String) isExpr()            {}

/* List display */

type List struct {
	Tok   lexer.Token
	Items []Expr
}

func (e *List) ExprKind() ExprKind { return ExprKindList }
func (e *List) Span() common.Span  { return e.Tok.Span() }
func (e *List) isExpr()            {}

/* New */

// New is `Type(args)`.
type New struct {
	Tok  lexer.Token
	Type string
	Args []Expr
}

func (e *New) ExprKind() ExprKind { return ExprKindNew }
func (e *New) Span() common.Span  { return e.Tok.Span() }
func (e *New) isExpr()            {}

/* Calls */

// SuperMethodCall is `super.name(args)`.
type SuperMethodCall struct {
	Tok  lexer.Token
	Name string
	Args []Expr
}

func (e *SuperMethodCall) ExprKind() ExprKind { return ExprKindSuperMethodCall }
func (e *SuperMethodCall) Span() common.Span  { return e.Tok.Span() }
func (e *SuperMethodCall) isExpr()            {}

type MethodCall struct {
	Tok   lexer.Token // the "."
	Owner Expr
	Name  string
	Args  []Expr
}

func (e *MethodCall) ExprKind() ExprKind { return ExprKindMethodCall }
func (e *MethodCall) Span() common.Span  { return e.Tok.Span() }
func (e *MethodCall) isExpr()            {}

type StaticMethodCall struct {
	Tok  lexer.Token
	Type string
	Name string
	Args []Expr
}

func (e *StaticMethodCall) ExprKind() ExprKind { return ExprKindStaticMethodCall }
func (e *StaticMethodCall) Span() common.Span  { return e.Tok.Span() }
func (e *StaticMethodCall) isExpr()            {}

/* Attributes */

type GetAttribute struct {
	Tok   lexer.Token // the "."
	Owner Expr
	Name  string
}

func (e *GetAttribute) ExprKind() ExprKind { return ExprKindGetAttribute }
func (e *GetAttribute) Span() common.Span  { return e.Tok.Span() }
func (e *GetAttribute) isExpr()            {}

type SetAttribute struct {
	Tok   lexer.Token // the "."
	Owner Expr
	Name  string
	Value Expr
}

func (e *SetAttribute) ExprKind() ExprKind { return ExprKindSetAttribute }
func (e *SetAttribute) Span() common.Span  { return e.Tok.Span() }
func (e *SetAttribute) isExpr()            {}

type GetStaticAttribute struct {
	Tok  lexer.Token
	Type string
	Name string
}

func (e *GetStaticAttribute) ExprKind() ExprKind { return ExprKindGetStaticAttribute }
func (e *GetStaticAttribute) Span() common.Span  { return e.Tok.Span() }
func (e *GetStaticAttribute) isExpr()            {}

type SetStaticAttribute struct {
	Tok   lexer.Token
	Type  string
	Name  string
	Value Expr
}

func (e *SetStaticAttribute) ExprKind() ExprKind { return ExprKindSetStaticAttribute }
func (e *SetStaticAttribute) Span() common.Span  { return e.Tok.Span() }
func (e *SetStaticAttribute) isExpr()            {}
