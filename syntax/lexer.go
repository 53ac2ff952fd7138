// Copyright (c) 2024, The brace Authors
// See LICENSE for licensing information

package syntax

import "strings"

// tokenize scans src into a flat token sequence. It cannot fail: any byte
// without structural meaning simply extends the current literal run. The
// escape byte folds the byte that follows it into the literal run, so that
// `\{a,b\}` lexes as the single literal `{a,b}`. A trailing escape byte is
// kept as a literal.
func tokenize(src string, escape byte) []token {
	var toks []token
	var sb strings.Builder
	litStart := 0
	flushLit := func() {
		if sb.Len() == 0 {
			return
		}
		toks = append(toks, token{kind: _Lit, off: litStart, val: sb.String()})
		sb.Reset()
	}
	// extend records a literal byte, remembering where the run began.
	extend := func(i int, b byte) {
		if sb.Len() == 0 {
			litStart = i
		}
		sb.WriteByte(b)
	}
	for i := 0; i < len(src); i++ {
		b := src[i]
		switch b {
		case escape:
			if i+1 >= len(src) {
				extend(i, b)
				break
			}
			if sb.Len() == 0 {
				litStart = i
			}
			i++
			sb.WriteByte(src[i])
		case '{':
			flushLit()
			toks = append(toks, token{kind: leftBrace, off: i})
		case '}':
			flushLit()
			toks = append(toks, token{kind: rightBrace, off: i})
		case ',':
			flushLit()
			toks = append(toks, token{kind: comma, off: i})
		case '.':
			if i+1 >= len(src) || src[i+1] != '.' {
				extend(i, b)
				break
			}
			flushLit()
			toks = append(toks, token{kind: dblDots, off: i})
			i++
		default:
			extend(i, b)
		}
	}
	flushLit()
	toks = append(toks, token{kind: _EOF, off: len(src)})
	return toks
}
