// Copyright (c) 2024, The brace Authors
// See LICENSE for licensing information

package syntax

import "strings"

// QuoteMeta returns a string that escapes all brace metacharacters in the
// given text, assuming the default backslash escape. The returned pattern
// expands to the single literal text.
//
// For example, QuoteMeta(`{a,b}`) returns `\{a\,b\}`.
func QuoteMeta(s string) string {
	any := false
loop:
	for _, r := range s {
		switch r {
		case '{', '}', ',', '\\':
			any = true
			break loop
		}
	}
	if !any { // short-cut without a string copy
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '}', ',', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// HasBraces reports whether a string contains an unescaped brace, assuming
// the default backslash escape. When it returns false, the string expands
// to at most itself, so parsing can be skipped entirely.
//
// For example, HasBraces(`a\{b`) returns false, but HasBraces(`a{b`)
// returns true.
func HasBraces(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{', '}':
			return true
		}
	}
	return false
}
