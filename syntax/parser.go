// Copyright (c) 2024, The brace Authors
// See LICENSE for licensing information

// Package syntax turns brace patterns into syntax trees.
//
// A brace pattern is literal text interleaved with `{...}` groups holding
// comma-separated alternatives or numeric and letter ranges, as expanded by
// shells like Bash. The package performs lexing, recursive-descent parsing,
// and range validation; expanding the resulting tree into concrete strings
// is done by the expand package.
package syntax

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies the ways parsing a brace pattern can fail.
type ErrorKind int

const (
	// UnbalancedBraces means an unescaped `{` was never closed, or an
	// unescaped `}` had nothing to close.
	UnbalancedBraces ErrorKind = iota
	// InvalidRange means a `{...}` body unambiguously attempted a
	// sequence expression but failed validation: endpoints mixing
	// numbers and letters, letters of mixed case, or a step that is not
	// strictly positive.
	InvalidRange
)

func (k ErrorKind) String() string {
	switch k {
	case UnbalancedBraces:
		return "unbalanced braces"
	case InvalidRange:
		return "invalid range"
	}
	return "unknown error"
}

// ParseError represents an error found when parsing a brace pattern.
// Offset points at the offending byte of the source.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Text   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Text)
}

// ParserOption is a function which can be passed to NewParser
// to alter its behaviour. To apply option to a parser programmatically,
// use p.Apply.
type ParserOption func(*Parser)

// Escape overrides the escape byte, backslash by default. The byte
// following an escape loses any structural meaning and joins the
// surrounding literal text.
func Escape(b byte) ParserOption {
	return func(p *Parser) { p.escape = b }
}

// Parser holds the internal state of the parsing mechanism of a program.
type Parser struct {
	escape byte

	src  string
	toks []token
	pos  int

	err error
}

// NewParser allocates a new Parser and applies any number of options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{escape: '\\'}
	p.Apply(opts...)
	return p
}

// Apply applies a number of options to the parser. The returned parser is
// the same one given as a receiver, to allow chaining.
func (p *Parser) Apply(opts ...ParserOption) *Parser {
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a full brace pattern and returns its syntax tree. The empty
// string parses to a Word with no parts.
//
// Parsing is where all errors surface; a Word returned without an error can
// always be expanded. On failure the returned error is a *ParseError.
func (p *Parser) Parse(src string) (*Word, error) {
	p.src = src
	p.toks = tokenize(src, p.escape)
	p.pos = 0
	p.err = nil
	w := p.word()
	// a leftover token at the top level can only be a stray close brace
	if t := p.peek(); p.err == nil && t.kind != _EOF {
		p.posErr(t.off, UnbalancedBraces, "%s without a matching {", t.kind)
	}
	if p.err != nil {
		return nil, p.err
	}
	return w, nil
}

func (p *Parser) peek() token { return p.toks[p.pos] }

func (p *Parser) next() token {
	t := p.toks[p.pos]
	if t.kind != _EOF {
		p.pos++
	}
	return t
}

func (p *Parser) errPass(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Parser) posErr(off int, kind ErrorKind, format string, a ...interface{}) {
	p.errPass(&ParseError{
		Kind:   kind,
		Offset: off,
		Text:   fmt.Sprintf(format, a...),
	})
}

// word parses the top-level sequence of parts. It stops at the end of input
// or at a stray close brace, which is left for Parse to report. Brace bodies
// are parsed by alternative instead, which gives commas and dots their
// structural meaning.
func (p *Parser) word() *Word {
	w := &Word{}
	for p.err == nil {
		t := p.peek()
		switch t.kind {
		case _EOF, rightBrace:
			return w
		case _Lit:
			p.next()
			w.Parts = append(w.Parts, &Lit{ValuePos: Pos(t.off), Value: t.val})
		case dblDots:
			// dots have no meaning outside a brace body
			p.next()
			w.Parts = append(w.Parts, &Lit{ValuePos: Pos(t.off), Value: ".."})
		case comma:
			// neither do commas
			p.next()
			w.Parts = append(w.Parts, &Lit{ValuePos: Pos(t.off), Value: ","})
		case leftBrace:
			p.next()
			w.Parts = append(w.Parts, p.brace(t.off)...)
		}
	}
	return w
}

// alt is one comma-separated alternative of a brace body. dots records the
// indexes of word parts that hold a top-level `..`, which is what the range
// interpretation later splits on.
type alt struct {
	word *Word
	dots []int
}

func (p *Parser) alternative() alt {
	a := alt{word: &Word{}}
	for p.err == nil {
		t := p.peek()
		switch t.kind {
		case _EOF, comma, rightBrace:
			return a
		case _Lit:
			p.next()
			a.word.Parts = append(a.word.Parts, &Lit{ValuePos: Pos(t.off), Value: t.val})
		case dblDots:
			p.next()
			a.dots = append(a.dots, len(a.word.Parts))
			a.word.Parts = append(a.word.Parts, &Lit{ValuePos: Pos(t.off), Value: ".."})
		case leftBrace:
			p.next()
			a.word.Parts = append(a.word.Parts, p.brace(t.off)...)
		}
	}
	return a
}

// brace parses a `{...}` body whose open brace at lbrace was just consumed.
// It returns the parts the braces amount to: a single Group or Range when
// the body forms one, or the body downgraded to literal text between
// literal braces otherwise.
func (p *Parser) brace(lbrace int) []WordPart {
	alts := []alt{p.alternative()}
	for p.err == nil && p.peek().kind == comma {
		p.next()
		alts = append(alts, p.alternative())
	}
	if p.err != nil {
		return nil
	}
	t := p.peek()
	if t.kind != rightBrace {
		p.posErr(lbrace, UnbalancedBraces, "{ without a matching }")
		return nil
	}
	p.next()
	rbrace := t.off
	if len(alts) >= 2 {
		g := &Group{Lbrace: Pos(lbrace), Rbrace: Pos(rbrace)}
		for _, a := range alts {
			g.Elems = append(g.Elems, a.word)
		}
		return []WordPart{g}
	}
	a := alts[0]
	if len(a.dots) > 0 {
		if r, ok := p.sequence(a, lbrace, rbrace); !ok {
			return nil // validation error
		} else if r != nil {
			return []WordPart{r}
		}
		// not a well-formed sequence shape; fall through to a literal
	}
	// a single comma-free alternative is not an expansion
	parts := []WordPart{&Lit{ValuePos: Pos(lbrace), Value: "{"}}
	parts = append(parts, a.word.Parts...)
	return append(parts, &Lit{ValuePos: Pos(rbrace), Value: "}"})
}

// sequence attempts to interpret a single-alternative brace body as a
// range. It returns nil, true when the body does not have range shape at
// all, in which case the caller falls back to literal text. A body that
// does have range shape but fails validation sets a ParseError and returns
// nil, false: `{1..a}` is an error rather than a literal.
func (p *Parser) sequence(a alt, lbrace, rbrace int) (*Range, bool) {
	if len(a.dots) > 2 {
		return nil, true
	}
	// split the alternative on its top-level dots; every segment must be
	// a single literal run
	var segs []*Lit
	start := 0
	for _, idx := range append(a.dots, len(a.word.Parts)) {
		seg := a.word.Parts[start:idx]
		if len(seg) != 1 {
			return nil, true
		}
		lit, ok := seg[0].(*Lit)
		if !ok {
			return nil, true
		}
		segs = append(segs, lit)
		start = idx + 1
	}
	from, to := segs[0], segs[1]
	fromNum, fromOK := parseEndpoint(from.Value)
	toNum, toOK := parseEndpoint(to.Value)
	if !fromOK || !toOK {
		return nil, true
	}
	step := 1
	if len(segs) == 3 {
		n, err := strconv.Atoi(segs[2].Value)
		if err != nil {
			return nil, true
		}
		if n <= 0 {
			p.posErr(int(segs[2].ValuePos), InvalidRange,
				"range step must be a positive integer, not %d", n)
			return nil, false
		}
		step = n
	}
	if fromNum != toNum {
		p.posErr(int(from.ValuePos), InvalidRange,
			"mixed number and letter range endpoints %q and %q", from.Value, to.Value)
		return nil, false
	}
	if !fromNum && isLower(from.Value[0]) != isLower(to.Value[0]) {
		p.posErr(int(from.ValuePos), InvalidRange,
			"mixed-case letter range endpoints %q and %q", from.Value, to.Value)
		return nil, false
	}
	r := &Range{
		Lbrace: Pos(lbrace),
		Rbrace: Pos(rbrace),
		From:   from.Value,
		To:     to.Value,
		Step:   step,
		Chars:  !fromNum,
	}
	if fromNum {
		r.Width = padWidth(from.Value, to.Value)
	}
	return r, true
}

// parseEndpoint reports whether s is a valid range endpoint, and if so,
// whether it is numeric rather than a single letter.
func parseEndpoint(s string) (num, ok bool) {
	if _, err := strconv.Atoi(s); err == nil {
		return true, true
	}
	if len(s) == 1 && isLetter(s[0]) {
		return false, true
	}
	return false, false
}

// padWidth detects zero-padding from the literal endpoint text of a numeric
// range: both endpoints must be written with equal-length digit runs, at
// least one of them with a leading zero. The sign of a negative endpoint
// does not count towards the width.
func padWidth(from, to string) int {
	fd, td := digits(from), digits(to)
	if len(fd) != len(td) || len(fd) < 2 {
		return 0
	}
	if fd[0] != '0' && td[0] != '0' {
		return 0
	}
	return len(fd)
}

func digits(s string) string {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		return s[1:]
	}
	return s
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isLower(b byte) bool { return 'a' <= b && b <= 'z' }
