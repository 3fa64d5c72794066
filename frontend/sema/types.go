package sema

import (
	"iter"
	"maps"

	"github.com/math4tots-misc/slumber/frontend/ast"
)

// Types is the side table of deduced expression types. An entry is written
// at most once: later writes for the same node are ignored.
// A Types is not safe for concurrent writes; parallel annotation gives every
// worker its own table and merges them afterwards.
type Types struct {
	types map[ast.Expr]string
}

func NewTypes() *Types {
	return &Types{types: make(map[ast.Expr]string)}
}

// Of returns the deduced type of e.
func (t *Types) Of(e ast.Expr) (string, bool) {
	typ, ok := t.types[e]
	return typ, ok
}

// Set records typ for e unless e already has a type. It reports whether the
// entry was written.
func (t *Types) Set(e ast.Expr, typ string) bool {
	if _, ok := t.types[e]; ok {
		return false
	}
	t.types[e] = typ
	return true
}

func (t *Types) Len() int {
	return len(t.types)
}

// Merge copies the entries of other that t does not have yet.
func (t *Types) Merge(other *Types) {
	for e, typ := range other.types {
		t.Set(e, typ)
	}
}

func (t *Types) All() iter.Seq2[ast.Expr, string] {
	return maps.All(t.types)
}
