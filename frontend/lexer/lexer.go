package lexer

import (
	"strings"
	"unicode"

	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/lexer/peekable"
)

// lexer is a hand-rolled, rune-based scanner.
type lexer struct {
	src                    *common.Source // source is the file being scanned
	chars                  *peekable.Chars
	curChr                 *rune
	offset                 int // byte offset of curChr
	line, column           uint32
	savedOffset            int
	savedLine, savedColumn uint32
}

// Lex scans the whole source. The last token is always a TokEOF; lexing stops
// at the first error, which is a *common.CompileError of kind Lexical.
func Lex(src *common.Source) ([]Token, error) {
	var tokens []Token
	lx := newLexer(src)
	for {
		tok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if _, ok := tok.(TokEOF); ok {
			break
		}
	}
	return tokens, nil
}

// newLexer returns a fresh lexer initialised with src.
func newLexer(src *common.Source) *lexer {
	chars := peekable.NewPeekableChars(src.Text)
	lx := &lexer{
		src:    src,
		chars:  chars,
		curChr: chars.Next(),
		line:   1, column: 1,
		savedLine: 1, savedColumn: 1,
	}
	lx.offset = chars.Offset()
	return lx
}

func (lx *lexer) currentSpan() common.Span {
	return common.SpanNew(lx.src, lx.savedOffset, lx.savedLine, lx.line, lx.savedColumn, max(lx.column-1, 1))
}

func (lx *lexer) advance() {
	c := lx.curChr
	if c != nil {
		if *c == '\n' {
			lx.line++
			lx.column = 1
		} else {
			lx.column++
		}
	}
	lx.curChr = lx.chars.Next()
	lx.offset = lx.chars.Offset()
}

func (lx *lexer) peek() *rune {
	return lx.chars.Peek()
}

func (lx *lexer) here() common.Span {
	return common.SpanNew(lx.src, lx.offset, lx.line, lx.line, lx.column, lx.column)
}

// error reports msg from the start of the token being scanned up to the
// current rune.
func (lx *lexer) error(msg string) error {
	start := common.SpanNew(lx.src, lx.savedOffset, lx.savedLine, lx.savedLine, lx.savedColumn, lx.savedColumn)
	return common.NewError(common.Lexical, msg, common.SpanFrom(start, lx.here()))
}

// errorHere reports msg at the current rune.
func (lx *lexer) errorHere(msg string) error {
	return common.NewError(common.Lexical, msg, lx.here())
}

// skipWs skips whitespaces and comments to the next significant character.
func (lx *lexer) skipWs() {
	for {
		c := lx.curChr
		if isChr(c, '#') {
			lx.comment()
			continue
		}
		if !isWsChr(c) {
			break
		}
		lx.advance() // skip
	}
	lx.savedOffset = lx.offset
	lx.savedLine = lx.line
	lx.savedColumn = lx.column
}

// comment skips a `#` comment up to, not including, the newline.
func (lx *lexer) comment() {
	for lx.curChr != nil && *lx.curChr != '\n' {
		lx.advance()
	}
}

func (lx *lexer) nextToken() (Token, error) {
	lx.skipWs() // skip whitespaces

	c := lx.curChr

	// EOF
	if c == nil {
		span := common.SpanNew(lx.src, lx.offset, lx.line, lx.line, lx.column, lx.column)
		return NewTokEOF(span), nil
	}

	// Number
	if token := lx.number(); token != nil {
		return token, nil
	}

	// String, checked before identifiers for the raw `r` prefix
	if token, err := lx.string(); err != nil {
		return nil, err
	} else if token != nil {
		return token, nil
	}

	// Identifier, typename or keyword
	if token := lx.identifier(); token != nil {
		return token, nil
	}

	// Punctuation
	if token := lx.punct(c); token != nil {
		return token, nil
	}

	var sb strings.Builder
	for c := lx.curChr; c != nil && !isWsChr(c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}
	return nil, lx.error("invalid token: " + sb.String())
}

func isChr(c *rune, e rune) bool {
	return c != nil && *c == e
}

func isWsChr(c *rune) bool {
	return c != nil && unicode.IsSpace(*c)
}
