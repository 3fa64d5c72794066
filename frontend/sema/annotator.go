package sema

import (
	"github.com/math4tots-misc/slumber/frontend/ast"
)

// Annotator deduces expression types against a flattened TypeData and
// records them in a Types table. It is not safe for concurrent use; the
// TypeData is only read and may be shared.
type Annotator struct {
	data   TypeData
	types  *Types
	opts   Options
	scopes scopes
	class  *ast.Class // enclosing class, nil outside of one
}

// NewAnnotator returns an annotator writing into types, or into a fresh
// table when types is nil. It starts with one empty root scope.
func NewAnnotator(data TypeData, types *Types, opts Options) *Annotator {
	if types == nil {
		types = NewTypes()
	}
	a := &Annotator{data: data, types: types, opts: opts}
	a.scopes.push(nil)
	return a
}

func (a *Annotator) Types() *Types {
	return a.types
}

// Declare adds a variable to the innermost scope.
func (a *Annotator) Declare(name, typ string) {
	a.scopes.declare(name, typ)
}

// VisitClass annotates every method body of cls. Native classes and
// interfaces have no bodies and are skipped.
func (a *Annotator) VisitClass(cls *ast.Class) (err error) {
	defer catch(&err)
	a.visitClass(cls)
	return nil
}

// VisitStmt annotates a statement in the current scope.
func (a *Annotator) VisitStmt(s ast.Stmt) (err error) {
	defer catch(&err)
	a.visitStmt(s)
	return nil
}

// VisitExpr annotates e and returns its deduced type.
func (a *Annotator) VisitExpr(e ast.Expr) (typ string, err error) {
	defer catch(&err)
	return a.visitExpr(e), nil
}

func (a *Annotator) visitClass(cls *ast.Class) {
	if cls.IsNative || cls.IsInterface {
		return
	}
	outer := a.class
	a.class = cls
	defer func() { a.class = outer }()

	for _, method := range cls.Methods {
		a.visitMethod(method)
	}
}

func (a *Annotator) visitMethod(method *ast.Method) {
	if method.Body == nil {
		return
	}
	params := make(Scope, len(method.Params))
	for _, p := range method.Params {
		params[p.Name] = p.Type
	}
	a.scopes.push(params)
	defer a.scopes.pop()

	a.visitBlock(method.Body, false)
}

// visitBlock walks b; nested blocks get their own scope with BlockScopes.
func (a *Annotator) visitBlock(b *ast.Block, nested bool) {
	if nested && a.opts.BlockScopes {
		a.scopes.push(nil)
		defer a.scopes.pop()
	}
	for _, s := range b.Stmts {
		a.visitStmt(s)
	}
}

func (a *Annotator) lookupVar(name string, e ast.Expr) string {
	typ, ok := a.scopes.lookup(name)
	if !ok {
		panicf(e.Span(), "no such variable named '%s' at this scope", name)
	}
	return typ
}

// deduce records typ for e and returns the type e ends up with, which is an
// earlier entry if there was one.
func (a *Annotator) deduce(e ast.Expr, typ string) string {
	a.types.Set(e, typ)
	typ, _ = a.types.Of(e)
	return typ
}
