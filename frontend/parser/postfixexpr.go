package parser

import "github.com/math4tots-misc/slumber/frontend/ast"

// parsePostfixExpr parses a primary followed by `.name`, `.name(args)` or
// `.name = value` links.
func (p *parser) parsePostfixExpr(ctx Context) ast.Expr {
	expr := p.parsePrimaryExpr(ctx)
	for p.tok.Is(".") {
		tok := p.tok
		p.advance()
		name := p.expectName().Raw
		switch {
		case p.tok.Is("("):
			expr = &ast.MethodCall{Tok: tok, Owner: expr, Name: name, Args: p.parseArgs(ctx, "(", ")")}
		case p.tryConsume("="):
			return &ast.SetAttribute{Tok: tok, Owner: expr, Name: name, Value: p.parseExpr(ctx)}
		default:
			expr = &ast.GetAttribute{Tok: tok, Owner: expr, Name: name}
		}
	}
	return expr
}
