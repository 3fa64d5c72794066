package sema

import "github.com/math4tots-misc/slumber/frontend/ast"

func (a *Annotator) visitStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		a.visitBlock(s, true)
	case *ast.Declaration:
		if s.Value != nil {
			a.visitExpr(s.Value)
		}
		a.scopes.declare(s.Name, s.Type)
	case *ast.If:
		a.visitExpr(s.Condition)
		a.visitBlock(s.Body, true)
		if s.Else != nil {
			a.visitStmt(s.Else)
		}
	case *ast.While:
		a.visitExpr(s.Condition)
		a.visitBlock(s.Body, true)
	case *ast.Return:
		if s.Value != nil {
			a.visitExpr(s.Value)
		}
	case *ast.ExprStmt:
		a.visitExpr(s.Expr)
	case *ast.Break, *ast.Continue:
	default:
		panic("unreachable")
	}
}
