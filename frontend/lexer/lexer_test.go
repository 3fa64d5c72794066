package lexer_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/lexer"
)

// tokenCase is a single expected token in a table-driven test.
type tokenCase struct {
	Kind lexer.Kind
	Text string
}

func lex(t *testing.T, text string) []lexer.Token {
	t.Helper()
	toks, err := lexer.Lex(common.NewSource("<test>", text))
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	require.True(t, lexer.IsEOF(toks[len(toks)-1]), "last token must be EOF")
	return toks
}

func pairs(toks []lexer.Token) []tokenCase {
	out := make([]tokenCase, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tokenCase{tok.Kind(), tok.String()})
	}
	return out
}

func lexError(t *testing.T, text string) *common.CompileError {
	t.Helper()
	_, err := lexer.Lex(common.NewSource("<test>", text))
	require.Error(t, err)
	var ce *common.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, common.Lexical, ce.Kind)
	return ce
}

func TestEmpty(t *testing.T) {
	toks := lex(t, "")
	assert.Len(t, toks, 1)

	toks = lex(t, "  # only a comment\n\t ")
	assert.Len(t, toks, 1)
}

func TestSimpleExample(t *testing.T) {
	toks := lex(t, "\n# Some comments\nclass TypeName Type methodName 12 1.3 x.y () 'hoi'\n")
	want := []tokenCase{
		{lexer.KindKeyword, "class"},
		{lexer.KindTypename, "TypeName"},
		{lexer.KindTypename, "Type"},
		{lexer.KindName, "methodName"},
		{lexer.KindInt, "12"},
		{lexer.KindFloat, "1.3"},
		{lexer.KindName, "x"},
		{lexer.KindPunct, "."},
		{lexer.KindName, "y"},
		{lexer.KindPunct, "("},
		{lexer.KindPunct, ")"},
		{lexer.KindString, "hoi"},
		{lexer.KindEOF, "<EOF>"},
	}
	if diff := cmp.Diff(want, pairs(toks)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []tokenCase
	}{
		{"int at eof", " 2342", []tokenCase{{lexer.KindInt, "2342"}}},
		{"float at eof", " 2342.5", []tokenCase{{lexer.KindFloat, "2342.5"}}},
		{"trailing dot", "5.", []tokenCase{{lexer.KindFloat, "5."}}},
		{"two dots", "1.3.4", []tokenCase{
			{lexer.KindFloat, "1.3"},
			{lexer.KindPunct, "."},
			{lexer.KindInt, "4"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks := lex(t, tc.input)
			got := pairs(toks[:len(toks)-1])
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIdentifierClasses(t *testing.T) {
	cases := []struct {
		input string
		kind  lexer.Kind
	}{
		{"X", lexer.KindTypename},
		{"int", lexer.KindTypename},
		{"void", lexer.KindTypename},
		{"name", lexer.KindName},
		{"_private", lexer.KindName},
		{"MAX_SIZE", lexer.KindName},
		{"AB", lexer.KindName},
		{"Foo_BAR", lexer.KindTypename},
		{"List2", lexer.KindTypename},
		{"native", lexer.KindKeyword},
		{"super", lexer.KindKeyword},
		{"é", lexer.KindName},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			toks := lex(t, tc.input)
			require.Len(t, toks, 2)
			assert.Equal(t, tc.kind, toks[0].Kind())
			assert.Equal(t, tc.input, toks[0].String())
		})
	}
}

func TestSymbolsLongestFirst(t *testing.T) {
	toks := lex(t, "a+=b<=c==d!=e=f<g-=1")
	want := []tokenCase{
		{lexer.KindName, "a"},
		{lexer.KindPunct, "+="},
		{lexer.KindName, "b"},
		{lexer.KindPunct, "<="},
		{lexer.KindName, "c"},
		{lexer.KindPunct, "=="},
		{lexer.KindName, "d"},
		{lexer.KindPunct, "!="},
		{lexer.KindName, "e"},
		{lexer.KindPunct, "="},
		{lexer.KindName, "f"},
		{lexer.KindPunct, "<"},
		{lexer.KindName, "g"},
		{lexer.KindPunct, "-="},
		{lexer.KindInt, "1"},
	}
	if diff := cmp.Diff(want, pairs(toks[:len(toks)-1])); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, toks[1].Is("+="))
	assert.Equal(t, "+=", toks[1].AsString())
}

func TestStrings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		raw   bool
	}{
		{"double", `"hoi"`, "hoi", false},
		{"single", `'hoi'`, "hoi", false},
		{"empty", `''`, "", false},
		{"escapes", `"a\n\t\\\"\'b"`, "a\n\t\\\"'b", false},
		{"triple", `"""a"b"""`, `a"b`, false},
		{"triple single", "'''line\nbreak'''", "line\nbreak", false},
		{"raw", `r"a\nb"`, `a\nb`, true},
		{"raw triple", `r'''x\y'''`, `x\y`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks := lex(t, tc.input)
			require.Len(t, toks, 2)
			str, ok := toks[0].(lexer.TokString)
			require.True(t, ok, "want TokString, got %T", toks[0])
			assert.Equal(t, tc.want, str.Value)
			assert.Equal(t, tc.raw, str.Raw)
		})
	}
}

func TestRPrefixWithoutQuoteIsName(t *testing.T) {
	toks := lex(t, "r rx")
	assert.Equal(t, []tokenCase{
		{lexer.KindName, "r"},
		{lexer.KindName, "rx"},
		{lexer.KindEOF, "<EOF>"},
	}, pairs(toks))
}

func TestSpans(t *testing.T) {
	toks := lex(t, "  foo\r\n é x")
	require.Len(t, toks, 4)

	foo := toks[0].Span()
	assert.Equal(t, 2, foo.Offset)
	assert.Equal(t, uint32(1), foo.LineStart)
	assert.Equal(t, uint32(3), foo.ColumnStart)
	assert.Equal(t, uint32(5), foo.ColumnEnd)

	e := toks[1].Span()
	assert.Equal(t, 8, e.Offset)
	assert.Equal(t, uint32(2), e.LineStart)
	assert.Equal(t, uint32(2), e.ColumnStart)

	x := toks[2].Span()
	assert.Equal(t, 11, x.Offset)
	assert.Equal(t, uint32(4), x.ColumnStart)

	eof := toks[3].Span()
	assert.Equal(t, 12, eof.Offset)
	assert.Equal(t, "<test>", eof.URI())
}

func TestErrors(t *testing.T) {
	t.Run("unterminated at literal start", func(t *testing.T) {
		ce := lexError(t, `x = "abc`)
		assert.Equal(t, "unterminated string literal", ce.Msg)
		assert.Equal(t, 4, ce.Span.Offset)
		assert.Equal(t, uint32(5), ce.Span.ColumnStart)
		assert.Equal(t, uint32(1), ce.Span.LineEnd)
		assert.Equal(t, uint32(9), ce.Span.ColumnEnd)
	})
	t.Run("unterminated triple", func(t *testing.T) {
		ce := lexError(t, `"""abc""`)
		assert.Equal(t, "unterminated string literal", ce.Msg)
		assert.Equal(t, 0, ce.Span.Offset)
	})
	t.Run("unterminated span reaches end of input", func(t *testing.T) {
		ce := lexError(t, "\"\"\"ab\ncd")
		assert.Equal(t, uint32(1), ce.Span.LineStart)
		assert.Equal(t, uint32(1), ce.Span.ColumnStart)
		assert.Equal(t, uint32(2), ce.Span.LineEnd)
		assert.Equal(t, uint32(3), ce.Span.ColumnEnd)
	})
	t.Run("invalid escape at escape", func(t *testing.T) {
		ce := lexError(t, `"a\qb"`)
		assert.Equal(t, "invalid escape: q", ce.Msg)
		assert.Equal(t, 3, ce.Span.Offset)
		assert.Equal(t, uint32(4), ce.Span.ColumnStart)
	})
	t.Run("invalid token runs to whitespace", func(t *testing.T) {
		ce := lexError(t, "a @foo bar")
		assert.Equal(t, "invalid token: @foo", ce.Msg)
		assert.Equal(t, 2, ce.Span.Offset)
		assert.Equal(t, "<test>:1:3: invalid token: @foo", ce.Error())
	})
	t.Run("bang alone", func(t *testing.T) {
		ce := lexError(t, "!x")
		assert.Equal(t, "invalid token: !x", ce.Msg)
	})
}

func TestIsValidIdent(t *testing.T) {
	assert.True(t, lexer.IsValidIdent("foo_1"))
	assert.True(t, lexer.IsValidIdent("_"))
	assert.False(t, lexer.IsValidIdent("1foo"))
	assert.False(t, lexer.IsValidIdent(""))
	assert.False(t, lexer.IsValidIdent("a-b"))
}
