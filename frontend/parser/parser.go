// Package parser turns bb source into an ast.Module.
package parser

import (
	"fmt"
	"strconv"

	"github.com/math4tots-misc/slumber/frontend/ast"
	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

type parser struct {
	tokens []lexer.Token
	tok    lexer.Token
	pos    int
}

func newParser(tokens []lexer.Token) *parser {
	return &parser{tokens: tokens, tok: tokens[0]}
}

// catch turns a parse panic back into an error; anything else keeps panicking.
func catch(err *error) {
	if r := recover(); r != nil {
		ce, ok := r.(*common.CompileError)
		if !ok {
			panic(r)
		}
		*err = ce
	}
}

// Parse parses a whole module.
func Parse(src *common.Source) (*ast.Module, error) {
	mod, _, err := ParseFile(src)
	return mod, err
}

// ParseFile is Parse that also returns the context in effect at the end of
// the module header, i.e. its package and import aliases.
func ParseFile(src *common.Source) (mod *ast.Module, ctx Context, err error) {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, Context{}, err
	}
	p := newParser(tokens)
	defer catch(&err)
	mod, ctx = p.parseModule()
	return mod, ctx, nil
}

// ParseExpr parses src as exactly one expression, resolving typenames in ctx.
func ParseExpr(src *common.Source, ctx Context) (expr ast.Expr, err error) {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	p := newParser(tokens)
	defer catch(&err)
	expr = p.parseExpr(ctx)
	if !lexer.IsEOF(p.tok) {
		p.errorf(p.tok, "expected EOF but found %s", describe(p.tok))
	}
	return expr, nil
}

// advance moves the parser forward by one token, stopping at EOF.
func (p *parser) advance() {
	p.pos = min(p.pos+1, len(p.tokens)-1)
	p.tok = p.tokens[p.pos]
}

// peekN returns the token n positions ahead, clamped to EOF.
func (p *parser) peekN(n int) lexer.Token {
	return p.tokens[min(p.pos+n, len(p.tokens)-1)]
}

func (p *parser) peek() lexer.Token {
	return p.peekN(1)
}

func (p *parser) tryConsume(s string) bool {
	if p.tok.Is(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(s string) lexer.Token {
	tok := p.tok
	if !p.tryConsume(s) {
		p.errorf(tok, "expected %q but found %s", s, describe(tok))
	}
	return tok
}

func (p *parser) expectName() lexer.TokName {
	if n, ok := p.tok.(lexer.TokName); ok {
		p.advance()
		return n
	}
	p.errorf(p.tok, "expected NAME but found %s", describe(p.tok))
	panic("unreachable")
}

func (p *parser) expectTypename() lexer.TokTypename {
	if t, ok := p.tok.(lexer.TokTypename); ok {
		p.advance()
		return t
	}
	p.errorf(p.tok, "expected TYPENAME but found %s", describe(p.tok))
	panic("unreachable")
}

// optDoc consumes a string literal if one is next.
func (p *parser) optDoc() string {
	if s, ok := p.tok.(lexer.TokString); ok {
		p.advance()
		return s.Value
	}
	return ""
}

func (p *parser) errorf(tok lexer.Token, format string, args ...any) {
	common.PanicErr(common.Syntactic, fmt.Sprintf(format, args...), tok.Span())
}

func describe(tok lexer.Token) string {
	switch tok.(type) {
	case lexer.TokEOF:
		return "EOF"
	case lexer.TokKeyword, lexer.TokPunct:
		return strconv.Quote(tok.String())
	default:
		return fmt.Sprintf("%s %q", tok.Kind(), tok.String())
	}
}

// parseDelimited parses `open item, item, ... close`; a trailing comma is
// allowed.
func (p *parser) parseDelimited(open, close string, parse func()) {
	p.expect(open)
	for !p.tryConsume(close) {
		parse()
		if !p.tok.Is(close) {
			p.expect(",")
		}
	}
}
