package parser

import (
	"strings"

	"github.com/math4tots-misc/slumber/frontend/ast"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

func (p *parser) parseModule() (*ast.Module, Context) {
	mod := &ast.Module{Tok: p.tok}
	mod.Doc = p.optDoc()

	p.expect("package")
	ctx := NewContext(p.parsePackageName())
	mod.Package = ctx.Package

	for p.tok.Is("import") {
		var qualified string
		qualified, ctx = p.parseImport(ctx)
		mod.Imports = append(mod.Imports, qualified)
	}

	for !lexer.IsEOF(p.tok) {
		mod.Classes = append(mod.Classes, p.parseClass(ctx))
	}
	return mod, ctx
}

// parsePackageName parses `a.b.c;`.
func (p *parser) parsePackageName() string {
	parts := []string{p.expectName().Raw}
	for p.tryConsume(".") {
		parts = append(parts, p.expectName().Raw)
	}
	p.expect(";")
	return strings.Join(parts, ".")
}

// parseImport parses `import a.b.Type [as Alias];` and registers the alias.
func (p *parser) parseImport(ctx Context) (string, Context) {
	p.expect("import")
	var parts []string
	for {
		if _, ok := p.tok.(lexer.TokTypename); ok {
			break
		}
		parts = append(parts, p.expectName().Raw)
		p.expect(".")
	}
	name := p.expectTypename().Raw

	alias := name
	if p.tryConsume("as") {
		alias = p.expectTypename().Raw
	}
	p.expect(";")

	qualified := strings.Join(parts, ".") + "." + name
	return qualified, ctx.WithAlias(alias, qualified)
}
