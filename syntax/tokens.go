// Copyright (c) 2024, The brace Authors
// See LICENSE for licensing information

package syntax

// tokKind is the set of lexical tokens a brace pattern can contain.
type tokKind int

const (
	illegalTok tokKind = iota
	_EOF
	_Lit // literal run

	leftBrace  // {
	rightBrace // }
	comma      // ,
	dblDots    // ..
)

func (k tokKind) String() string {
	switch k {
	case _EOF:
		return "EOF"
	case _Lit:
		return "literal"
	case leftBrace:
		return "{"
	case rightBrace:
		return "}"
	case comma:
		return ","
	case dblDots:
		return ".."
	}
	return "illegal"
}

// token is a single lexed token. off is its byte offset in the source
// pattern; val holds the accumulated text of a literal run.
type token struct {
	kind tokKind
	off  int
	val  string
}
