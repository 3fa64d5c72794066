package sema

import (
	"github.com/math4tots-misc/slumber/common"
)

// Scope maps variable names to their qualified types.
type Scope map[string]string

// scopes is the variable scope chain, innermost on top.
type scopes struct {
	stack common.Stack[Scope]
}

func (s *scopes) push(seed Scope) {
	if seed == nil {
		seed = Scope{}
	}
	s.stack.Push(seed)
}

func (s *scopes) pop() {
	if _, ok := s.stack.Pop(); !ok {
		panic("scope stack underflow")
	}
}

func (s *scopes) declare(name, typ string) {
	top, ok := s.stack.Peek()
	if !ok {
		panic("declare without a scope")
	}
	top[name] = typ
}

// lookup searches innermost first.
func (s *scopes) lookup(name string) (string, bool) {
	for scope := range s.stack.Backward() {
		if typ, ok := scope[name]; ok {
			return typ, true
		}
	}
	return "", false
}
