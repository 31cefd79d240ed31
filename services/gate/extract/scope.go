// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package extract

import "regexp"

// functionHeaderRe matches tokens that open a function-like body. Used to
// tell function scope from plain block scope when walking enclosing braces.
var functionHeaderRe = regexp.MustCompile(
	`(?m)(?:\bfunction\b|=>\s*$|=>\s*\{|\basync\b|\bconstructor\s*\(|^\s*[A-Za-z_$][\w$]*\s*\([^)]*\)\s*\{\s*$)`)

// scopeAt classifies the scope of the element at the given offset.
//
// Description:
//
//	Computes enclosing brace depth up to the offset with string-aware
//	scanning. Depth zero is global scope. For nested elements, the text
//	between the nearest unclosed open brace and the preceding line start
//	is checked for a function-like header: a hit means function scope,
//	otherwise block scope.
//
// Inputs:
//
//	text - The full source text.
//	offset - The element's byte offset.
//
// Outputs:
//
//	Scope - global, function, or block.
func scopeAt(text string, offset int) Scope {
	if offset > len(text) {
		offset = len(text)
	}

	// Track open braces in a small stack of offsets.
	var stack []int
	var st stringState
	for i := 0; i < offset; i++ {
		c := text[i]
		if st.step(c) {
			continue
		}
		switch c {
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return ScopeGlobal
	}

	// Inspect the header text leading up to the nearest enclosing brace.
	open := stack[len(stack)-1]
	headStart := open
	for headStart > 0 && text[headStart-1] != '\n' {
		headStart--
	}
	// Include up to two previous lines so multi-line signatures count.
	for lines := 0; headStart > 0 && lines < 2; lines++ {
		headStart--
		for headStart > 0 && text[headStart-1] != '\n' {
			headStart--
		}
	}
	header := text[headStart : open+1]
	if functionHeaderRe.MatchString(header) {
		return ScopeFunction
	}
	return ScopeBlock
}
