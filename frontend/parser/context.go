package parser

import (
	"maps"

	"github.com/math4tots-misc/slumber/frontend/lexer"
)

// builtins resolve into bb.lang regardless of the current package.
var builtins = map[string]struct{}{
	"String": {},
	"List":   {},
}

// Context is the typename resolution state of one module. It is immutable;
// the With methods return modified copies.
type Context struct {
	Package string
	aliases map[string]string
}

func NewContext(pkg string) Context {
	return Context{Package: pkg}
}

func (c Context) WithPackage(pkg string) Context {
	c.Package = pkg
	return c
}

// WithAlias returns a context where alias resolves to qualified.
func (c Context) WithAlias(alias, qualified string) Context {
	aliases := make(map[string]string, len(c.aliases)+1)
	maps.Copy(aliases, c.aliases)
	aliases[alias] = qualified
	c.aliases = aliases
	return c
}

// Aliases returns a copy of the alias table.
func (c Context) Aliases() map[string]string {
	return maps.Clone(c.aliases)
}

// Resolve qualifies a TYPENAME. Primitives stay as they are, builtins go to
// bb.lang, aliases are substituted, anything else is in the current package.
func (c Context) Resolve(name string) string {
	if lexer.IsPrimitive(name) {
		return name
	}
	if _, ok := builtins[name]; ok {
		return "bb.lang." + name
	}
	if q, ok := c.aliases[name]; ok {
		return q
	}
	return c.Package + "." + name
}
