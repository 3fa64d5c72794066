package ast

// WalkExprs calls fn for every expression reachable from the statement,
// parents before children.
func WalkExprs(s Stmt, fn func(Expr)) {
	switch s := s.(type) {
	case *Block:
		for _, st := range s.Stmts {
			WalkExprs(st, fn)
		}
	case *Declaration:
		if s.Value != nil {
			walkExpr(s.Value, fn)
		}
	case *If:
		walkExpr(s.Condition, fn)
		WalkExprs(s.Body, fn)
		if s.Else != nil {
			WalkExprs(s.Else, fn)
		}
	case *While:
		walkExpr(s.Condition, fn)
		WalkExprs(s.Body, fn)
	case *Return:
		if s.Value != nil {
			walkExpr(s.Value, fn)
		}
	case *ExprStmt:
		walkExpr(s.Expr, fn)
	case *Break, *Continue:
	default:
		panic("unreachable")
	}
}

func walkExpr(e Expr, fn func(Expr)) {
	fn(e)
	for _, child := range Children(e) {
		walkExpr(child, fn)
	}
}

// Children returns the direct sub-expressions of e in source order.
func Children(e Expr) []Expr {
	switch e := e.(type) {
	case *Assign:
		return []Expr{e.Value}
	case *List:
		return e.Items
	case *New:
		return e.Args
	case *SuperMethodCall:
		return e.Args
	case *MethodCall:
		return append([]Expr{e.Owner}, e.Args...)
	case *StaticMethodCall:
		return e.Args
	case *GetAttribute:
		return []Expr{e.Owner}
	case *SetAttribute:
		return []Expr{e.Owner, e.Value}
	case *SetStaticAttribute:
		return []Expr{e.Value}
	case *Name, *This, *Null, *Bool, *Int, *Float, *String, *GetStaticAttribute:
		return nil
	default:
		panic("unreachable")
	}
}
