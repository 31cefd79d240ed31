// Copyright (C) 2026 Seawall AI (dev@seawall.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package extract

import (
	"regexp"
	"strings"
)

// Declaration forms recognized by the function matcher family. Each form is
// matched independently; overlapping captures are collapsed by dedup.
var (
	// function name(a, b) { ... }  /  async function name(...)
	funcDeclRe = regexp.MustCompile(
		`(?m)^[ \t]*(export\s+)?(default\s+)?(async\s+)?function\s*\*?\s*([A-Za-z_$][\w$]*)\s*\(([^)]*)\)`)

	// const name = function(...) { ... }
	funcExprRe = regexp.MustCompile(
		`(?m)^[ \t]*(export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(async\s+)?function\s*\*?\s*\(([^)]*)\)`)

	// const name = (a, b) => ...   /  const name = a => ...
	arrowRe = regexp.MustCompile(
		`(?m)^[ \t]*(export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(async\s+)?(?:\(([^)]*)\)|([A-Za-z_$][\w$]*))\s*=>`)

	// name: function(...) / name: (a) =>   (object-literal members)
	objMethodRe = regexp.MustCompile(
		`(?m)^[ \t]*([A-Za-z_$][\w$]*)\s*:\s*(async\s+)?(?:function\s*\(([^)]*)\)|\(([^)]*)\)\s*=>)`)
)

// sensitiveNameTokens flag functions whose identifier alone implies
// security- or business-sensitive logic.
var sensitiveNameTokens = []string{
	"auth", "login", "password", "secret", "token", "credential", "key",
	"encrypt", "decrypt", "hash", "sign", "verify", "payment", "price",
	"pricing", "billing", "charge", "license", "validate", "permission",
	"admin", "session",
}

// sensitiveBodyTokens flag bodies that touch credentials or crypto even
// when the name is neutral.
var sensitiveBodyTokens = []string{
	"password", "secret", "apikey", "api_key", "token", "credential",
	"private_key", "privatekey", "encrypt", "decrypt",
}

// Functions extracts function-like constructs from the text.
//
// Description:
//
//	Applies the declaration, expression, arrow, and object-member matcher
//	families, recovers each body by brace balancing (or line scanning for
//	block-less arrows), and computes scope and sensitivity flags.
//
// Inputs:
//
//	text - The raw source text.
//
// Outputs:
//
//	[]Function - Deduplicated, line-sorted functions. Never nil on
//	             malformed input, possibly empty.
func (e *Extractor) Functions(text string) []Function {
	var fns []Function

	for _, m := range funcDeclRe.FindAllStringSubmatchIndex(text, -1) {
		name := submatch(text, m, 4)
		if !validName(name) {
			continue
		}
		f := Function{
			Name:       name,
			StartLine:  lineOfOffset(text, m[0]),
			Parameters: splitParams(submatch(text, m, 5)),
			IsAsync:    submatch(text, m, 3) != "",
			IsExported: submatch(text, m, 1) != "",
			Scope:      scopeAt(text, m[0]),
		}
		attachBlockBody(text, m[1], &f)
		finishFunction(&f)
		fns = append(fns, f)
	}

	for _, m := range funcExprRe.FindAllStringSubmatchIndex(text, -1) {
		name := submatch(text, m, 2)
		if !validName(name) {
			continue
		}
		f := Function{
			Name:       name,
			StartLine:  lineOfOffset(text, m[0]),
			Parameters: splitParams(submatch(text, m, 4)),
			IsAsync:    submatch(text, m, 3) != "",
			IsExported: submatch(text, m, 1) != "",
			Scope:      scopeAt(text, m[0]),
		}
		attachBlockBody(text, m[1], &f)
		finishFunction(&f)
		fns = append(fns, f)
	}

	for _, m := range arrowRe.FindAllStringSubmatchIndex(text, -1) {
		name := submatch(text, m, 2)
		if !validName(name) {
			continue
		}
		params := submatch(text, m, 4)
		if params == "" {
			params = submatch(text, m, 5) // single bare parameter
		}
		f := Function{
			Name:       name,
			StartLine:  lineOfOffset(text, m[0]),
			Parameters: splitParams(params),
			IsAsync:    submatch(text, m, 3) != "",
			IsArrow:    true,
			IsExported: submatch(text, m, 1) != "",
			Scope:      scopeAt(text, m[0]),
		}
		attachArrowBody(text, m[1], &f)
		finishFunction(&f)
		fns = append(fns, f)
	}

	for _, m := range objMethodRe.FindAllStringSubmatchIndex(text, -1) {
		name := submatch(text, m, 1)
		if !validName(name) {
			continue
		}
		params := submatch(text, m, 3)
		if params == "" {
			params = submatch(text, m, 4)
		}
		f := Function{
			Name:       name,
			StartLine:  lineOfOffset(text, m[0]),
			Parameters: splitParams(params),
			IsAsync:    submatch(text, m, 2) != "",
			Scope:      scopeAt(text, m[0]),
		}
		attachBlockBody(text, m[1], &f)
		finishFunction(&f)
		fns = append(fns, f)
	}

	return sortFunctions(fns)
}

// attachBlockBody recovers a braced body starting after the signature.
func attachBlockBody(text string, sigEnd int, f *Function) {
	body, end, ok := recoverBlockBody(text, sigEnd)
	if !ok {
		f.EndLine = f.StartLine
		return
	}
	f.Body = body
	f.EndLine = lineOfOffset(text, end)
}

// attachArrowBody recovers either a braced body or an expression body.
func attachArrowBody(text string, sigEnd int, f *Function) {
	rest := text[sigEnd:]
	trimmed := strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(trimmed, "{") {
		attachBlockBody(text, sigEnd, f)
		return
	}
	body, end := recoverExpressionBody(text, sigEnd)
	f.Body = body
	f.EndLine = lineOfOffset(text, end)
}

// finishFunction derives the sensitivity flag once the body is known.
func finishFunction(f *Function) {
	lower := strings.ToLower(f.Name)
	for _, tok := range sensitiveNameTokens {
		if strings.Contains(lower, tok) {
			f.ContainsSensitiveLogic = true
			return
		}
	}
	body := strings.ToLower(f.Body)
	for _, tok := range sensitiveBodyTokens {
		if strings.Contains(body, tok) {
			f.ContainsSensitiveLogic = true
			return
		}
	}
}

// submatch returns the capture group text for FindAllStringSubmatchIndex
// results, or "" for an absent group.
func submatch(text string, m []int, group int) string {
	lo, hi := m[2*group], m[2*group+1]
	if lo < 0 || hi < 0 {
		return ""
	}
	return text[lo:hi]
}
