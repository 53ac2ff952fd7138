// Copyright (c) 2024, The brace Authors
// See LICENSE for licensing information

package syntax

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

func lit(s string) *Lit           { return &Lit{Value: s} }
func word(ps ...WordPart) *Word   { return &Word{Parts: ps} }
func litWord(s string) *Word      { return word(lit(s)) }
func group(elems ...*Word) *Group { return &Group{Elems: elems} }

func seq(from, to string, step int) *Range {
	return &Range{From: from, To: to, Step: step}
}

func chars(r *Range) *Range         { r.Chars = true; return r }
func padded(r *Range, w int) *Range { r.Width = w; return r }

// positions are checked separately in TestParseOffsets
var cmpOpt = cmp.FilterValues(func(p1, p2 Pos) bool { return true }, cmp.Ignore())

var parseTests = []struct {
	in   string
	want *Word
}{
	{"", word()},
	{"foo", litWord("foo")},
	{"a,b", word(lit("a"), lit(","), lit("b"))},
	{"x,{a,b}", word(lit("x"), lit(","), group(litWord("a"), litWord("b")))},
	{"a..b", word(lit("a"), lit(".."), lit("b"))},
	{"a{b,c}d", word(lit("a"), group(litWord("b"), litWord("c")), lit("d"))},
	{"{a,b{1,2}}", word(group(
		litWord("a"),
		word(lit("b"), group(litWord("1"), litWord("2"))),
	))},
	{"{,}", word(group(word(), word()))},
	{"{,,a}", word(group(word(), word(), litWord("a")))},
	{"{1..3}", word(seq("1", "3", 1))},
	{"{3..1}", word(seq("3", "1", 1))},
	{"{1..5..2}", word(seq("1", "5", 2))},
	{"{-2..2}", word(seq("-2", "2", 1))},
	{"{01..03}", word(padded(seq("01", "03", 1), 2))},
	{"{-05..05}", word(padded(seq("-05", "05", 1), 2))},
	{"{1..10}", word(seq("1", "10", 1))}, // no leading zero, no padding
	{"{a..e..2}", word(chars(seq("a", "e", 2)))},
	{"{X..C}", word(chars(seq("X", "C", 1)))},

	// single comma-free bodies are not expansions
	{"{single}", word(lit("{"), lit("single"), lit("}"))},
	{"{}", word(lit("{"), lit("}"))},
	{"{..}", word(lit("{"), lit(".."), lit("}"))},
	{"{a{1,2}}", word(lit("{"),
		lit("a"), group(litWord("1"), litWord("2")),
		lit("}"))},

	// broken sequence shapes fall back to literal text
	{"{1..2..3..4}", word(lit("{"),
		lit("1"), lit(".."), lit("2"), lit(".."), lit("3"), lit(".."), lit("4"),
		lit("}"))},
	{"{1..abc}", word(lit("{"), lit("1"), lit(".."), lit("abc"), lit("}"))},
	{"{a..k..n}", word(lit("{"), lit("a"), lit(".."), lit("k"), lit(".."), lit("n"), lit("}"))},
	{"{1.4}", word(lit("{"), lit("1.4"), lit("}"))},
	{"{1..{2}}", word(lit("{"),
		lit("1"), lit(".."), lit("{"), lit("2"), lit("}"),
		lit("}"))},

	// escapes strip structural meaning
	{`\{a,b\}`, word(lit("{a"), lit(","), lit("b}"))},
	{`{a\,b,c}`, word(group(litWord("a,b"), litWord("c")))},

	// a comma group wins over dots
	{"{a..b,c}", word(group(
		word(lit("a"), lit(".."), lit("b")),
		litWord("c"),
	))},
}

func TestParse(t *testing.T) {
	t.Parallel()
	p := NewParser()
	for _, tc := range parseTests {
		tc := tc
		t.Run("", func(t *testing.T) {
			t.Logf("input: %q", tc.in)
			got, err := p.Parse(tc.in)
			qt.Assert(t, err, qt.IsNil)
			qt.Assert(t, got, qt.CmpEquals(cmpOpt), tc.want)
		})
	}
}

var parseErrTests = []struct {
	in   string
	want *ParseError
}{
	{"{1..3", &ParseError{
		Kind: UnbalancedBraces, Offset: 0,
		Text: "{ without a matching }",
	}},
	{"ab}", &ParseError{
		Kind: UnbalancedBraces, Offset: 2,
		Text: "} without a matching {",
	}},
	{"a{b,c{d,e}", &ParseError{
		Kind: UnbalancedBraces, Offset: 1,
		Text: "{ without a matching }",
	}},
	{"{1..a}", &ParseError{
		Kind: InvalidRange, Offset: 1,
		Text: `mixed number and letter range endpoints "1" and "a"`,
	}},
	{"{a..1}", &ParseError{
		Kind: InvalidRange, Offset: 1,
		Text: `mixed number and letter range endpoints "a" and "1"`,
	}},
	{"{a..Z}", &ParseError{
		Kind: InvalidRange, Offset: 1,
		Text: `mixed-case letter range endpoints "a" and "Z"`,
	}},
	{"{1..5..0}", &ParseError{
		Kind: InvalidRange, Offset: 7,
		Text: "range step must be a positive integer, not 0",
	}},
	{"xy{1..5..-2}", &ParseError{
		Kind: InvalidRange, Offset: 9,
		Text: "range step must be a positive integer, not -2",
	}},
	{"{a,{1..z}}", &ParseError{
		Kind: InvalidRange, Offset: 4,
		Text: `mixed number and letter range endpoints "1" and "z"`,
	}},
}

func TestParseErr(t *testing.T) {
	t.Parallel()
	p := NewParser()
	for _, tc := range parseErrTests {
		tc := tc
		t.Run("", func(t *testing.T) {
			t.Logf("input: %q", tc.in)
			w, err := p.Parse(tc.in)
			qt.Assert(t, w, qt.IsNil)
			qt.Assert(t, err, qt.DeepEquals, tc.want)
		})
	}
}

func TestParseOffsets(t *testing.T) {
	t.Parallel()
	p := NewParser()

	w, err := p.Parse("ab{c,d{1..2}}")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, w.Pos(), qt.Equals, Pos(0))
	qt.Assert(t, w.End(), qt.Equals, Pos(13))

	g := w.Parts[1].(*Group)
	qt.Assert(t, g.Pos(), qt.Equals, Pos(2))
	qt.Assert(t, g.End(), qt.Equals, Pos(13))

	r := g.Elems[1].Parts[1].(*Range)
	qt.Assert(t, r.Pos(), qt.Equals, Pos(6))
	qt.Assert(t, r.End(), qt.Equals, Pos(12))
}

func TestParseEscapeOption(t *testing.T) {
	t.Parallel()
	p := NewParser(Escape('%'))

	w, err := p.Parse(`%{a,b}`)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, w, qt.CmpEquals(cmpOpt), word(lit("{a"), lit(","), lit("b}")))

	// backslash is plain text under a custom escape byte
	w, err = p.Parse(`{a,\b}`)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, w, qt.CmpEquals(cmpOpt), word(group(litWord("a"), litWord(`\b`))))
}

func TestWordLit(t *testing.T) {
	t.Parallel()
	p := NewParser()

	w, err := p.Parse("foo.bar")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, w.Lit(), qt.Equals, "foo.bar")

	w, err = p.Parse("foo{a,b}")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, w.Lit(), qt.Equals, "")
}
