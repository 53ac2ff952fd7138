// Copyright (c) 2024, The brace Authors
// See LICENSE for licensing information

// Package expand turns brace pattern syntax trees into the ordered list of
// strings they denote.
package expand

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oxpand/brace/syntax"
)

// DefaultMaxResults bounds how many strings a single expansion may produce
// when Config.MaxResults is left unset. The result count of a pattern is
// the product of the sizes of all its groups and ranges, so even short
// inputs like `{1..1000}{1..1000}{1..1000}` can get out of hand quickly.
const DefaultMaxResults = 1 << 16

// Config configures an expansion. A nil *Config behaves like the zero
// value.
type Config struct {
	// MaxResults caps the number of strings a single pattern may expand
	// to. Zero means DefaultMaxResults.
	MaxResults uint64

	// Escape is the escape byte given to the parser by Pattern, backslash
	// when zero.
	Escape byte
}

func (cfg *Config) maxResults() uint64 {
	if cfg == nil || cfg.MaxResults == 0 {
		return DefaultMaxResults
	}
	return cfg.MaxResults
}

func (cfg *Config) escape() byte {
	if cfg == nil || cfg.Escape == 0 {
		return '\\'
	}
	return cfg.Escape
}

// LimitError is returned when a pattern would expand to more results than
// the configured maximum. It is reported before any result is built.
type LimitError struct {
	Cardinality uint64
	Max         uint64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("expansion of %d results exceeds the limit of %d", e.Cardinality, e.Max)
}

// Pattern expands a raw brace pattern into the full ordered list of strings
// it denotes. It is the composition of syntax.Parser.Parse, the result
// count guard, and Braces. The empty pattern expands to a single empty
// string.
//
// Errors are either a *syntax.ParseError or a *LimitError.
func Pattern(cfg *Config, pattern string) ([]string, error) {
	p := syntax.NewParser(syntax.Escape(cfg.escape()))
	w, err := p.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Braces(cfg, w)
}

// Braces expands a parsed word. The only possible error is a *LimitError;
// expansion itself cannot fail, as every malformed input was rejected at
// parse time.
//
// Results are ordered deterministically: groups contribute their
// alternatives in source order, ranges walk from their first endpoint to
// their second, and across the parts of a word the rightmost part varies
// fastest, like the innermost of nested loops.
func Braces(cfg *Config, w *syntax.Word) ([]string, error) {
	if n := Cardinality(w); n > cfg.maxResults() {
		return nil, &LimitError{Cardinality: n, Max: cfg.maxResults()}
	}
	return expandRec(w.Parts), nil
}

// Cardinality returns the number of strings w expands to: the product of
// the element counts of all its groups and ranges. It saturates at the
// maximum uint64 rather than overflowing.
func Cardinality(w *syntax.Word) uint64 {
	return partsCardinality(w.Parts)
}

func partsCardinality(parts []syntax.WordPart) uint64 {
	n := uint64(1)
	for _, wp := range parts {
		switch x := wp.(type) {
		case *syntax.Group:
			sum := uint64(0)
			for _, elem := range x.Elems {
				sum = addSat(sum, partsCardinality(elem.Parts))
			}
			n = mulSat(n, sum)
		case *syntax.Range:
			n = mulSat(n, rangeCount(x))
		}
	}
	return n
}

func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func mulSat(a, b uint64) uint64 {
	if a != 0 && b > math.MaxUint64/a {
		return math.MaxUint64
	}
	return a * b
}

func expandRec(parts []syntax.WordPart) []string {
	var sb strings.Builder
	for i, wp := range parts {
		var vals []string
		switch x := wp.(type) {
		case *syntax.Lit:
			sb.WriteString(x.Value)
			continue
		case *syntax.Group:
			for _, elem := range x.Elems {
				vals = append(vals, expandRec(elem.Parts)...)
			}
		case *syntax.Range:
			vals = rangeValues(x)
		}
		prefix := sb.String()
		tails := expandRec(parts[i+1:])
		all := make([]string, 0, len(vals)*len(tails))
		for _, val := range vals {
			for _, tail := range tails {
				all = append(all, prefix+val+tail)
			}
		}
		return all
	}
	return []string{sb.String()}
}

func rangeEnds(r *syntax.Range) (from, to int) {
	if r.Chars {
		return int(r.From[0]), int(r.To[0])
	}
	// endpoints were validated as integers at parse time
	from, _ = strconv.Atoi(r.From)
	to, _ = strconv.Atoi(r.To)
	return from, to
}

func rangeCount(r *syntax.Range) uint64 {
	from, to := rangeEnds(r)
	// the span of a range can be as wide as the whole int domain, so it
	// only fits in a uint64; under two's complement the widened
	// subtraction gives the exact distance
	var span uint64
	if to >= from {
		span = uint64(to) - uint64(from)
	} else {
		span = uint64(from) - uint64(to)
	}
	return addSat(span/uint64(r.Step), 1)
}

func rangeValues(r *syntax.Range) []string {
	from, to := rangeEnds(r)
	incr := r.Step
	if from > to {
		incr = -incr
	}
	// walk by element count rather than comparing against the endpoint:
	// a range ending at the edge of the int domain would wrap before the
	// comparison could stop the loop
	count := rangeCount(r)
	vals := make([]string, 0, count)
	n := from
	for i := uint64(0); i < count; i++ {
		if r.Chars {
			vals = append(vals, string(rune(n)))
		} else {
			vals = append(vals, formatInt(n, r.Width))
		}
		n += incr
	}
	return vals
}

// formatInt renders a range element, zero-padding its digits to width. The
// sign of a negative value stays in front of the padding.
func formatInt(n, width int) string {
	if width == 0 {
		return strconv.Itoa(n)
	}
	if n < 0 {
		// negate as uint64 so the smallest int keeps its magnitude
		return "-" + fmt.Sprintf("%0*d", width, -uint64(n))
	}
	return fmt.Sprintf("%0*d", width, n)
}
