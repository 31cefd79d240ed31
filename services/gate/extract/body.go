// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package extract

import "strings"

// stringState tracks quote and escape state while scanning text.
//
// Brace counting must ignore braces inside string literals; a quote opened
// with one delimiter is only closed by the same unescaped delimiter.
type stringState struct {
	// quote is the active string delimiter, or 0 when outside a string.
	quote byte

	// escaped is true when the previous byte was a backslash inside a
	// string.
	escaped bool
}

// step advances the state by one byte and reports whether the byte is
// inside (or delimits) a string literal.
func (s *stringState) step(c byte) bool {
	if s.quote != 0 {
		if s.escaped {
			s.escaped = false
			return true
		}
		switch c {
		case '\\':
			s.escaped = true
		case s.quote:
			s.quote = 0
		}
		return true
	}
	switch c {
	case '"', '\'', '`':
		s.quote = c
		return true
	}
	return false
}

// inString reports whether the scanner is currently inside a string.
func (s *stringState) inString() bool {
	return s.quote != 0
}

// recoverBlockBody returns the text between the first opening brace at or
// after start and its balancing close brace, plus the offset one past the
// close brace.
//
// Description:
//
//	Scans forward from start, balancing brace depth while respecting
//	string and escape state, so quotes containing braces do not skew the
//	count. Returns ok=false when no opening brace is found within the
//	lookahead window or the braces never balance (malformed input is
//	skipped, not reported).
//
// Inputs:
//
//	text - The full source text.
//	start - Offset to begin scanning from (typically the end of a
//	        signature match).
//
// Outputs:
//
//	body - The text inside the braces, without the braces themselves.
//	end - Offset one past the closing brace.
//	ok - False when no balanced block was found.
func recoverBlockBody(text string, start int) (body string, end int, ok bool) {
	const lookahead = 200

	open := -1
	var st stringState
	limit := min(len(text), start+lookahead)
	for i := start; i < limit; i++ {
		c := text[i]
		if st.step(c) {
			continue
		}
		if c == '{' {
			open = i
			break
		}
		// A statement boundary before any brace means there is no block.
		if c == ';' {
			return "", 0, false
		}
	}
	if open < 0 {
		return "", 0, false
	}

	depth := 0
	st = stringState{}
	for i := open; i < len(text); i++ {
		c := text[i]
		if st.step(c) {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[open+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}

// recoverExpressionBody returns the body of a block-less arrow function.
//
// The body ends at the first statement terminator or unmatched line break
// at zero paren/bracket depth, scanning with string awareness.
func recoverExpressionBody(text string, start int) (body string, end int) {
	depth := 0
	var st stringState
	i := start
	for ; i < len(text); i++ {
		c := text[i]
		if st.step(c) {
			continue
		}
		switch c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				return strings.TrimSpace(text[start:i]), i
			}
			depth--
		case ';':
			if depth == 0 {
				return strings.TrimSpace(text[start:i]), i
			}
		case '\n':
			if depth == 0 {
				return strings.TrimSpace(text[start:i]), i
			}
		}
	}
	return strings.TrimSpace(text[start:]), len(text)
}

// lineOfOffset returns the 1-based line number containing the offset.
func lineOfOffset(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n") + 1
}
