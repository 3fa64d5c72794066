package ast

import (
	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

type Stmt interface {
	isStmt()
	Span() common.Span
}

/* Block */

type Block struct {
	Tok   lexer.Token
	Stmts []Stmt
}

func (b *Block) isStmt() {}

func (b *Block) Span() common.Span {
	return b.Tok.Span()
}

/* Declaration */

// Declaration is `Type name [= value];`.
type Declaration struct {
	Tok   lexer.Token
	Type  string
	Name  string
	Value Expr // nil if absent
}

func (d *Declaration) isStmt() {}

func (d *Declaration) Span() common.Span {
	return d.Tok.Span()
}

/* If */

type If struct {
	Tok       lexer.Token
	Condition Expr
	Body      *Block
	Else      Stmt // nil, *Block or *If
}

func (i *If) isStmt() {}

func (i *If) Span() common.Span {
	return i.Tok.Span()
}

/* While */

type While struct {
	Tok       lexer.Token
	Condition Expr
	Body      *Block
}

func (w *While) isStmt() {}

func (w *While) Span() common.Span {
	return w.Tok.Span()
}

/* Break / Continue */

type Break struct {
	Tok lexer.Token
}

func (b *Break) isStmt() {}

func (b *Break) Span() common.Span {
	return b.Tok.Span()
}

type Continue struct {
	Tok lexer.Token
}

func (c *Continue) isStmt() {}

func (c *Continue) Span() common.Span {
	return c.Tok.Span()
}

/* Return */

type Return struct {
	Tok   lexer.Token
	Value Expr // nil for a bare return
}

func (r *Return) isStmt() {}

func (r *Return) Span() common.Span {
	return r.Tok.Span()
}

/* Expression statement */

type ExprStmt struct {
	Tok  lexer.Token
	Expr Expr
}

func (e *ExprStmt) isStmt() {}

func (e *ExprStmt) Span() common.Span {
	return e.Tok.Span()
}
