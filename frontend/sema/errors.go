package sema

import (
	"github.com/math4tots-misc/slumber/frontend/common"
)

func panicf(span common.Span, format string, args ...any) {
	panic(common.Errorf(common.Semantic, span, format, args...))
}

// catch turns an annotation panic back into an error.
func catch(err *error) {
	if r := recover(); r != nil {
		ce, ok := r.(*common.CompileError)
		if !ok {
			panic(r)
		}
		*err = ce
	}
}
