package parser

import "github.com/math4tots-misc/slumber/frontend/ast"

func (p *parser) parseBlock(ctx Context) *ast.Block {
	block := &ast.Block{Tok: p.expect("{")}
	for !p.tryConsume("}") {
		block.Stmts = append(block.Stmts, p.parseStmt(ctx))
	}
	return block
}
