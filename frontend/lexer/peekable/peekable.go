// Package peekable provides a peekable iterator over a string
package peekable

import (
	"unicode/utf8"
)

// Chars is a peekable iterator over a string that remembers the byte offset
// of every rune.
// It normalises Windows line endings ("\r\n") into a single '\n'.
// Stand-alone '\r' or '\n' runes are returned unchanged.
type Chars struct {
	runes   []rune
	offsets []int
	end     int
	pos     int // index of the next rune Next returns
}

// NewPeekableChars creates a new Chars iterator.
func NewPeekableChars(s string) *Chars {
	p := &Chars{end: len(s)}
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		// Normalise Windows line endings: "\r\n" -> '\n'
		if r == '\r' && i+w < len(s) && s[i+w] == '\n' {
			p.runes = append(p.runes, '\n')
			p.offsets = append(p.offsets, i)
			i += w + 1
			continue
		}
		p.runes = append(p.runes, r)
		p.offsets = append(p.offsets, i)
		i += w
	}
	return p
}

// Next consumes and returns a copy of the next rune.
// It returns nil if there is no next rune.
func (p *Chars) Next() *rune {
	if p.pos >= len(p.runes) {
		p.pos = len(p.runes) + 1
		return nil
	}
	r := p.runes[p.pos]
	p.pos++
	return &r
}

// Peek returns a copy of the rune after the one last returned by Next,
// without consuming it. It returns nil at the end of the input.
func (p *Chars) Peek() *rune {
	return p.PeekN(1)
}

// PeekN looks n runes past the one last returned by Next.
func (p *Chars) PeekN(n int) *rune {
	idx := p.pos - 1 + n
	if n < 1 || idx >= len(p.runes) {
		return nil
	}
	r := p.runes[idx]
	return &r
}

// Offset is the byte offset of the rune last returned by Next, or the input
// length once the iterator is exhausted.
func (p *Chars) Offset() int {
	idx := p.pos - 1
	if idx < 0 {
		return 0
	}
	if idx >= len(p.runes) {
		return p.end
	}
	return p.offsets[idx]
}
