package sema

import (
	"github.com/math4tots-misc/slumber/frontend/ast"
)

const (
	stringType = "bb.lang.String"
	listType   = "bb.lang.List"
)

func (a *Annotator) visitExprs(exprs []ast.Expr) {
	for _, e := range exprs {
		a.visitExpr(e)
	}
}

func (a *Annotator) visitExpr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Int:
		return a.deduce(e, "int")
	case *ast.Float:
		return a.deduce(e, "float")
	case *ast.String:
		return a.deduce(e, stringType)
	case *ast.Bool:
		return a.deduce(e, "bool")
	case *ast.Null:
		return a.deduce(e, ast.ObjectType)
	case *ast.This:
		return a.deduce(e, a.enclosing(e, "this").QualifiedTypename())
	case *ast.List:
		a.visitExprs(e.Items)
		return a.deduce(e, listType)
	case *ast.Name:
		return a.deduce(e, a.lookupVar(e.Name, e))
	case *ast.Assign:
		a.visitExpr(e.Value)
		return a.deduce(e, a.lookupVar(e.Name, e))
	case *ast.New:
		a.visitExprs(e.Args)
		return a.deduce(e, e.Type)

	case *ast.MethodCall:
		owner := a.visitExpr(e.Owner)
		a.visitExprs(e.Args)
		return a.deduce(e, a.method(e, owner, e.Name).Returns)
	case *ast.StaticMethodCall:
		a.visitExprs(e.Args)
		return a.deduce(e, a.method(e, e.Type, e.Name).Returns)
	case *ast.SuperMethodCall:
		base := a.enclosing(e, "super").BaseTypename()
		a.visitExprs(e.Args)
		return a.deduce(e, a.method(e, base, e.Name).Returns)

	case *ast.GetAttribute:
		owner := a.visitExpr(e.Owner)
		return a.deduce(e, a.attr(e, owner, e.Name, "an attribute"))
	case *ast.SetAttribute:
		owner := a.visitExpr(e.Owner)
		a.visitExpr(e.Value)
		return a.deduce(e, a.attr(e, owner, e.Name, "an attribute"))
	case *ast.GetStaticAttribute:
		return a.deduce(e, a.attr(e, e.Type, e.Name, "a static attribute"))
	case *ast.SetStaticAttribute:
		a.visitExpr(e.Value)
		return a.deduce(e, a.attr(e, e.Type, e.Name, "a static attribute"))

	default:
		panic("unreachable")
	}
}

func (a *Annotator) enclosing(e ast.Expr, what string) *ast.Class {
	if a.class == nil {
		panicf(e.Span(), "'%s' used outside of a class", what)
	}
	return a.class
}

func (a *Annotator) lookupAttr(e ast.Expr, typ, name string) TypeInfo {
	attrs, ok := a.data[typ]
	if !ok {
		panicf(e.Span(), "no such type: %s", typ)
	}
	info, ok := attrs[name]
	if !ok {
		panicf(e.Span(), "no such attribute %s for type %s", name, typ)
	}
	return info
}

// method argument types are visited but not checked against the parameters.
func (a *Annotator) method(e ast.Expr, typ, name string) MethodType {
	if m, ok := a.lookupAttr(e, typ, name).(MethodType); ok {
		return m
	}
	panicf(e.Span(), "tried to call attribute like a method: %s.%s", typ, name)
	panic("unreachable")
}

func (a *Annotator) attr(e ast.Expr, typ, name, what string) string {
	if t, ok := a.lookupAttr(e, typ, name).(AttrType); ok {
		return string(t)
	}
	panicf(e.Span(), "tried to use method like %s: %s.%s", what, typ, name)
	panic("unreachable")
}
