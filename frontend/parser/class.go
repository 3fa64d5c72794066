package parser

import (
	"github.com/math4tots-misc/slumber/frontend/ast"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

// parseClass parses `[native] class Name ...` or `interface Name ...`.
func (p *parser) parseClass(ctx Context) *ast.Class {
	cls := &ast.Class{Tok: p.tok, Package: ctx.Package}

	switch {
	case p.tryConsume("interface"):
		cls.IsInterface = true
	case p.tryConsume("native"):
		cls.IsNative = true
		p.expect("class")
	default:
		p.expect("class")
	}

	cls.Name = p.expectTypename().Raw

	if p.tryConsume("extends") {
		cls.Base = p.parseTypename(ctx)
	}
	if p.tryConsume("implements") {
		cls.Interfaces = append(cls.Interfaces, p.parseTypename(ctx))
		for p.tryConsume(",") {
			cls.Interfaces = append(cls.Interfaces, p.parseTypename(ctx))
		}
	}

	p.expect("{")
	cls.Doc = p.optDoc()
	for !p.tryConsume("}") {
		p.parseClassEntry(ctx, cls)
	}
	return cls
}

// parseClassEntry parses one member, stub or method and appends it to cls.
func (p *parser) parseClassEntry(ctx Context, cls *ast.Class) {
	tok := p.tok
	isStatic := p.tryConsume("static")
	typ := p.parseTypename(ctx)
	name := p.expectName().Raw

	if p.tryConsume(";") {
		if cls.IsInterface {
			p.errorf(tok, "member declarations are not allowed inside interfaces")
		}
		cls.Members = append(cls.Members, &ast.Member{
			Tok:      tok,
			IsStatic: isStatic,
			Type:     typ,
			Name:     name,
			Doc:      p.optDoc(),
		})
		return
	}

	method := &ast.Method{
		Tok:      tok,
		IsStatic: isStatic,
		Returns:  typ,
		Name:     name,
		Params:   p.parseParams(ctx),
	}

	if p.tryConsume(";") {
		if !cls.IsInterface && !cls.IsNative {
			p.errorf(tok, "abstract methods are not supported")
		}
		method.Doc = p.optDoc()
	} else {
		switch {
		case cls.IsInterface:
			p.errorf(tok, "interface method implementations are not supported")
		case cls.IsNative:
			p.errorf(tok, "native method implementations are not supported")
		}
		method.Body, method.Doc = p.parseMethodBody(ctx)
	}
	cls.Methods = append(cls.Methods, method)
}

func (p *parser) parseParams(ctx Context) []ast.Param {
	var params []ast.Param
	p.parseDelimited("(", ")", func() {
		typ := p.parseTypename(ctx)
		params = append(params, ast.Param{Type: typ, Name: p.expectName().Raw})
	})
	return params
}

// parseMethodBody parses a block whose first statement may be a `"doc";`.
func (p *parser) parseMethodBody(ctx Context) (*ast.Block, string) {
	if !p.tok.Is("{") {
		p.errorf(p.tok, "expected \"{\" or \";\" but found %s", describe(p.tok))
	}
	_, isDoc := p.peek().(lexer.TokString)
	if !isDoc || !p.peekN(2).Is(";") {
		return p.parseBlock(ctx), ""
	}

	block := &ast.Block{Tok: p.expect("{")}
	doc := p.optDoc()
	p.expect(";")
	for !p.tryConsume("}") {
		block.Stmts = append(block.Stmts, p.parseStmt(ctx))
	}
	return block, doc
}

// parseTypename parses a TYPENAME and qualifies it in ctx.
func (p *parser) parseTypename(ctx Context) string {
	return ctx.Resolve(p.expectTypename().Raw)
}
