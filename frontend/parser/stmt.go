package parser

import (
	"github.com/math4tots-misc/slumber/frontend/ast"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

func (p *parser) parseStmt(ctx Context) ast.Stmt {
	tok := p.tok
	switch tok.AsString() {
	case "{":
		return p.parseBlock(ctx)
	case "if":
		return p.parseIf(ctx)
	case "while":
		p.advance()
		cond := p.parseCondition(ctx)
		return &ast.While{Tok: tok, Condition: cond, Body: p.parseBlock(ctx)}
	case "break":
		p.advance()
		p.expect(";")
		return &ast.Break{Tok: tok}
	case "continue":
		p.advance()
		p.expect(";")
		return &ast.Continue{Tok: tok}
	case "return":
		p.advance()
		ret := &ast.Return{Tok: tok}
		if !p.tryConsume(";") {
			ret.Value = p.parseExpr(ctx)
			p.expect(";")
		}
		return ret
	}

	if _, ok := tok.(lexer.TokTypename); ok {
		if _, ok := p.peek().(lexer.TokName); ok {
			return p.parseDeclaration(ctx)
		}
	}

	expr := p.parseExpr(ctx)
	p.expect(";")
	return &ast.ExprStmt{Tok: tok, Expr: expr}
}

// parseDeclaration parses `Type name [= value];`.
func (p *parser) parseDeclaration(ctx Context) *ast.Declaration {
	decl := &ast.Declaration{Tok: p.tok}
	decl.Type = p.parseTypename(ctx)
	decl.Name = p.expectName().Raw
	if p.tryConsume("=") {
		decl.Value = p.parseExpr(ctx)
	}
	p.expect(";")
	return decl
}

func (p *parser) parseIf(ctx Context) *ast.If {
	stmt := &ast.If{Tok: p.expect("if")}
	stmt.Condition = p.parseCondition(ctx)
	stmt.Body = p.parseBlock(ctx)
	if p.tryConsume("else") {
		if p.tok.Is("if") {
			stmt.Else = p.parseIf(ctx)
		} else {
			stmt.Else = p.parseBlock(ctx)
		}
	}
	return stmt
}

// parseCondition parses `( expr )`.
func (p *parser) parseCondition(ctx Context) ast.Expr {
	p.expect("(")
	cond := p.parseExpr(ctx)
	p.expect(")")
	return cond
}
