package parser

import (
	"github.com/math4tots-misc/slumber/frontend/ast"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

// All expressions share a single precedence tier.
func (p *parser) parseExpr(ctx Context) ast.Expr {
	return p.parsePostfixExpr(ctx)
}

func (p *parser) parseArgs(ctx Context, open, close string) []ast.Expr {
	var args []ast.Expr
	p.parseDelimited(open, close, func() {
		args = append(args, p.parseExpr(ctx))
	})
	return args
}

func (p *parser) parsePrimaryExpr(ctx Context) ast.Expr {
	tok := p.tok

	switch tok.AsString() {
	case "(":
		p.advance()
		expr := p.parseExpr(ctx)
		p.expect(")")
		return expr
	case "this":
		p.advance()
		return &ast.This{Tok: tok}
	case "null":
		p.advance()
		return &ast.Null{Tok: tok}
	case "true", "false":
		p.advance()
		return &ast.Bool{Tok: tok, Value: tok.Is("true")}
	case "[":
		return &ast.List{Tok: tok, Items: p.parseArgs(ctx, "[", "]")}
	case "super":
		p.advance()
		p.expect(".")
		name := p.expectName().Raw
		return &ast.SuperMethodCall{Tok: tok, Name: name, Args: p.parseArgs(ctx, "(", ")")}
	}

	switch t := tok.(type) {
	case lexer.TokName:
		p.advance()
		if p.tryConsume("=") {
			return &ast.Assign{Tok: tok, Name: t.Raw, Value: p.parseExpr(ctx)}
		}
		return &ast.Name{Tok: tok, Name: t.Raw}
	case lexer.TokNumber:
		p.advance()
		if t.Float {
			return &ast.Float{Tok: tok, Value: t.Raw}
		}
		return &ast.Int{Tok: tok, Value: t.Raw}
	case lexer.TokString:
		p.advance()
		return &ast.String{Tok: tok, Value: t.Value}
	case lexer.TokTypename:
		return p.parseTypenameExpr(ctx)
	}

	p.errorf(tok, "expected expression but found %s", describe(tok))
	panic("unreachable")
}

// parseTypenameExpr parses `Type(args)`, `Type.name`, `Type.name(args)` or
// `Type.name = value`.
func (p *parser) parseTypenameExpr(ctx Context) ast.Expr {
	tok := p.tok
	typ := p.parseTypename(ctx)
	if p.tok.Is("(") {
		return &ast.New{Tok: tok, Type: typ, Args: p.parseArgs(ctx, "(", ")")}
	}

	p.expect(".")
	name := p.expectName().Raw
	switch {
	case p.tok.Is("("):
		return &ast.StaticMethodCall{Tok: tok, Type: typ, Name: name, Args: p.parseArgs(ctx, "(", ")")}
	case p.tryConsume("="):
		return &ast.SetStaticAttribute{Tok: tok, Type: typ, Name: name, Value: p.parseExpr(ctx)}
	default:
		return &ast.GetStaticAttribute{Tok: tok, Type: typ, Name: name}
	}
}
