// Copyright (c) 2024, The brace Authors
// See LICENSE for licensing information

package syntax

// Pos is a byte offset into the source pattern.
type Pos int

// Node represents an AST node.
type Node interface {
	// Pos returns the first byte of the node
	Pos() Pos
	// End returns the byte immediately after the node
	End() Pos
}

// Word represents a list of nodes that are contiguous to each other. A full
// pattern parses to a single Word; each alternative within a Group is a Word
// of its own.
type Word struct {
	Parts []WordPart
}

func (w *Word) Pos() Pos { return partsFirstPos(w.Parts) }
func (w *Word) End() Pos { return partsLastEnd(w.Parts) }

// Lit returns the word as a literal string, if the word consists of *Lit
// nodes only. An empty string is returned otherwise.
func (w *Word) Lit() string {
	var s string
	for _, part := range w.Parts {
		lit, ok := part.(*Lit)
		if !ok {
			return ""
		}
		s += lit.Value
	}
	return s
}

// WordPart represents all nodes that can form a word.
type WordPart interface {
	Node
	wordPartNode()
}

func (*Lit) wordPartNode()   {}
func (*Group) wordPartNode() {}
func (*Range) wordPartNode() {}

// Lit represents a fixed substring, copied verbatim to every expansion.
type Lit struct {
	ValuePos Pos
	Value    string
}

func (l *Lit) Pos() Pos { return l.ValuePos }
func (l *Lit) End() Pos { return l.ValuePos + Pos(len(l.Value)) }

// Group represents a braced list of two or more comma-separated
// alternatives, such as `{a,b}`. Each alternative is itself a Word, which
// allows arbitrary nesting.
type Group struct {
	Lbrace, Rbrace Pos
	Elems          []*Word
}

func (g *Group) Pos() Pos { return g.Lbrace }
func (g *Group) End() Pos { return g.Rbrace + 1 }

// Range represents a braced sequence expression, such as `{1..10..2}`,
// `{a..z}`, or `{01..05}`.
//
// From and To hold the endpoints as written. Step is always at least 1; the
// direction of the walk is derived from comparing the endpoints, never from
// a sign on the step. Chars reports whether the endpoints are single letters
// rather than integers. Width is the zero-padding width of a padded numeric
// range, or zero; letter ranges never carry padding.
type Range struct {
	Lbrace, Rbrace Pos
	From, To       string
	Step           int
	Chars          bool
	Width          int
}

func (r *Range) Pos() Pos { return r.Lbrace }
func (r *Range) End() Pos { return r.Rbrace + 1 }

func partsFirstPos(ps []WordPart) Pos {
	if len(ps) == 0 {
		return 0
	}
	return ps[0].Pos()
}

func partsLastEnd(ps []WordPart) Pos {
	if len(ps) == 0 {
		return 0
	}
	return ps[len(ps)-1].End()
}
